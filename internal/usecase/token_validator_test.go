//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/jwt"
	"bookmyvenue/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour, clock.NewRealClock())
	v := usecase.NewTokenValidator(svc)

	t.Run("valid", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RoleAdmin)
		require.NoError(t, err)

		gotID, role, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.Role("superuser"))
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
