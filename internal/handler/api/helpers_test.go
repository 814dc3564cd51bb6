//go:build unit

package api_test

import (
	"bookmyvenue/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asActor stands in for the auth middleware: requests carrying an Authorization header
// are treated as authenticated by the given user.
func asActor(id func() uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", id())
			c.Set("user_role", role)
		}
		c.Next()
	}
}

func fixed(id uuid.UUID) func() uuid.UUID {
	return func() uuid.UUID { return id }
}
