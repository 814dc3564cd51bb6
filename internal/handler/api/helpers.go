package api

import (
	"net/http"

	"bookmyvenue/internal/domain/user"
	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/handler/middleware"
	"bookmyvenue/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated = errs.New("unauthenticated request")
	errInvalidID       = errs.New("invalid id")
)

// actor reads the authenticated caller set by the auth middleware.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWith(c, http.StatusInternalServerError, "Internal", "Internal server error", errUnauthenticated)
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return id, role, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWith(c, http.StatusBadRequest, "MalformedField", "Invalid id", errs.Mark(err, errInvalidID))
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	httperr.AbortWith(c, http.StatusBadRequest, "MalformedField", "Invalid request", err)
}

// committedWithoutView answers a write that already committed but could not be read back.
// The caller still gets the success status and the resource id; the read error is only logged.
func committedWithoutView(c *gin.Context, status int, id uuid.UUID, readErr error) {
	_ = c.Error(gin.Error{
		Err:  errs.Wrap(readErr, "read back committed write"),
		Type: gin.ErrorTypePrivate,
	})
	c.JSON(status, resdto.CreatedResponse{ID: id.String()})
}
