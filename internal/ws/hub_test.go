package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	failSend bool
}

func (c *fakeClient) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSend {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeClient) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.messages...)
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func TestHubBroadcastsToClients(t *testing.T) {
	hub := startHub(t)
	good := &fakeClient{}
	broken := &fakeClient{failSend: true}
	hub.Register(good)
	hub.Register(broken)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish(Event{Type: "inquiry_received", Message: "Jane Buyer sent an inquiry"})

	require.Eventually(t, func() bool { return len(good.received()) == 1 }, time.Second, 5*time.Millisecond)

	var ev Event
	require.NoError(t, json.Unmarshal(good.received()[0], &ev))
	assert.Equal(t, "inquiry_received", ev.Type)

	assert.Eventually(t, broken.isClosed, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestHubUnregisterClosesClient(t *testing.T) {
	hub := startHub(t)
	c := &fakeClient{}
	hub.Register(c)
	hub.Unregister(c)

	assert.Eventually(t, c.isClosed, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHubStop(t *testing.T) {
	hub := NewHub()
	finished := make(chan struct{})
	go func() {
		hub.Run()
		close(finished)
	}()

	c := &fakeClient{}
	hub.Register(c)
	hub.Stop()
	hub.Stop()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
	assert.True(t, c.isClosed())

	late := &fakeClient{}
	hub.Register(late)
	assert.True(t, late.isClosed())
	hub.Publish(Event{Type: "ignored"})
}
