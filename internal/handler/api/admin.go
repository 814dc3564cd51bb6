package api

import (
	"net/http"
	"strconv"

	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookings queries.BookingQueries
	users    queries.UserQueries
}

func NewAdminHandler(bookings queries.BookingQueries, users queries.UserQueries) *AdminHandler {
	return &AdminHandler{bookings: bookings, users: users}
}

// @Summary List all bookings
// @Description Keyset paginated by creation time
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		limit = n
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	views, next, err := h.bookings.ListAll(c.Request.Context(), after, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res := resdto.BookingPageResponse{Bookings: resdto.FromBookingViews(views)}
	if next != nil {
		res.NextCursor = next.After
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UserView
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
