//go:build unit

package auth_test

import (
	"testing"

	"bookmyvenue/internal/domain/auth"
	"bookmyvenue/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", email: "a@example.com", password: "anything"},
		{name: "short password still accepted at login", email: "a@example.com", password: "x"},
		{name: "bad email", email: "nope", password: "password123", wantErr: true},
		{name: "empty password", email: "a@example.com", password: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := auth.NewCredentials(tt.email, tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, c.Email().Value())
			assert.Equal(t, tt.password, c.Password())
		})
	}
}

func TestNewRegistration(t *testing.T) {
	t.Run("role defaults to customer", func(t *testing.T) {
		r, err := auth.NewRegistration("Alice", "Alice@Example.com", "password123", "", "")
		require.NoError(t, err)
		assert.Equal(t, user.RoleCustomer, r.Role())
		assert.Equal(t, "alice@example.com", r.Email().Value())
		assert.Equal(t, "", r.PhoneNumber().Value())
	})

	t.Run("business may self-register", func(t *testing.T) {
		r, err := auth.NewRegistration("Hall Co", "hall@example.com", "password123", "+91 98765 43210", "business")
		require.NoError(t, err)
		assert.Equal(t, user.RoleBusiness, r.Role())
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name                         string
			email, password, phone, role string
			errIs                           error
		}{
			{name: "admin is not self-assignable", email: "a@example.com", password: "password123", role: "admin", errIs: user.ErrInvalidRole},
			{name: "unknown role", email: "a@example.com", password: "password123", role: "owner", errIs: user.ErrInvalidRole},
			{name: "weak password", email: "a@example.com", password: "short", errIs: user.ErrPasswordTooWeak},
			{name: "bad email", email: "a-at-example", password: "password123", errIs: user.ErrInvalidEmail},
			{name: "bad phone", email: "a@example.com", password: "password123", phone: "abc", errIs: user.ErrInvalidPhone},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := auth.NewRegistration("Alice", tt.email, tt.password, tt.phone, tt.role)
				require.ErrorIs(t, err, tt.errIs)
			})
		}
	})
}
