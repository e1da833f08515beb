package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const rootMessage = "Seafood Exporter Backend Running"

// StoreInspector is the read-only view of the store used by /test.
type StoreInspector interface {
	Available() bool
	Collections(ctx context.Context, limit int) ([]string, error)
}

// DiagnosticsResponse mirrors the connectivity report served at /test.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	DatabaseBackend  string   `json:"database_backend"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
}

type SystemHandler struct {
	store        StoreInspector
	backend      string
	databaseName string
	urlSet       bool
	cachePing    func(ctx context.Context) error
}

// NewSystemHandler wires the liveness and diagnostics endpoints. cachePing
// may be nil when no Redis is configured.
func NewSystemHandler(store StoreInspector, backend, databaseName string, urlSet bool, cachePing func(ctx context.Context) error) *SystemHandler {
	return &SystemHandler{
		store:        store,
		backend:      backend,
		databaseName: databaseName,
		urlSet:       urlSet,
		cachePing:    cachePing,
	}
}

// Root is the liveness probe.
// GET /
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": rootMessage})
}

// Diagnostics reports store and cache connectivity. It always answers 200.
// GET /test
func (h *SystemHandler) Diagnostics(c *fiber.Ctx) error {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseBackend:  h.backend,
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		Cache:            "Not Configured",
	}

	if h.store != nil && h.store.Available() {
		urlStatus := "❌ Not Set"
		if h.urlSet {
			urlStatus = "✅ Set"
		}
		name := h.databaseName
		if name == "" {
			name = "✅ Connected"
		}
		resp.Database = "✅ Available"
		resp.DatabaseURL = &urlStatus
		resp.DatabaseName = &name
		resp.ConnectionStatus = "Connected"

		collections, err := h.store.Collections(c.UserContext(), 10)
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			resp.Collections = collections
			resp.Database = "✅ Connected & Working"
		}
	} else {
		resp.Database = "⚠️  Available but not initialized"
	}

	if h.cachePing != nil {
		if err := h.cachePing(c.UserContext()); err != nil {
			resp.Cache = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			resp.Cache = "✅ Connected"
		}
	}

	return c.JSON(resp)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
