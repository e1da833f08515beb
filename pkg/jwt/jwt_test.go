package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(secret, "ops@exporter.com", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "ops@exporter.com", claims.Subject)
}

func TestValidateRejects(t *testing.T) {
	expired, err := GenerateToken(secret, "ops", -time.Minute)
	require.NoError(t, err)

	otherKey, err := GenerateToken([]byte("other"), "ops", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not.a.jwt", ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"wrong key", otherKey, ErrInvalidToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateToken(secret, tc.token)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNoSecret(t *testing.T) {
	_, err := GenerateToken(nil, "ops", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = ValidateToken(nil, "abc")
	assert.ErrorIs(t, err, ErrNoSecret)
}
