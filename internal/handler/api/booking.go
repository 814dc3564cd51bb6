package api

import (
	"net/http"

	"bookmyvenue/internal/domain/user"
	reqdto "bookmyvenue/internal/handler/dto/request"
	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/usecase/commands"
	"bookmyvenue/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Request booking
// @Description Book a venue for a date and time range. Overlapping requests for the same venue and day are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, role, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.cmds.RequestBooking(c.Request.Context(), customerID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondAfterWrite(c, http.StatusCreated, customerID, role, id)
}

// @Summary Get booking
// @Description Visible to the booking's customer, its business and admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithBooking(c, http.StatusOK, actorID, role, id)
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings/mine [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListByCustomer(c.Request.Context(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Booking history
// @Description Confirmed, cancelled and completed bookings ordered by event date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings/history [get]
func (h *BookingHandler) History(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListHistoryByCustomer(c.Request.Context(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List business bookings
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /api/business/bookings [get]
func (h *BookingHandler) ListForBusiness(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListByBusiness(c.Request.Context(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List pending business bookings
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /api/business/bookings/pending [get]
func (h *BookingHandler) ListPendingForBusiness(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	views, err := h.q.ListPendingByBusiness(c.Request.Context(), actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Venue availability
// @Description Non-cancelled slots of a venue on one day
// @Tags bookings
// @Produce json
// @Param id path string true "Venue ID"
// @Param date query string true "Event date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/venues/{id}/bookings [get]
func (h *BookingHandler) ListVenueSlots(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}
	slots, err := h.q.ListActiveForVenue(c.Request.Context(), venueID, c.Query("date"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}

// @Summary Change booking status
// @Description Confirm and complete are reserved to the business; either party may cancel
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	h.mutate(c, &req, func(c *gin.Context, actorID, id uuid.UUID) error {
		return h.cmds.ChangeStatus(c.Request.Context(), actorID, id, req.Status)
	})
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.mutate(c, nil, func(c *gin.Context, actorID, id uuid.UUID) error {
		return h.cmds.Cancel(c.Request.Context(), actorID, id)
	})
}

// @Summary Update payment status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdatePaymentRequest true "Payment status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/payment [patch]
func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	var req reqdto.UpdatePaymentRequest
	h.mutate(c, &req, func(c *gin.Context, actorID, id uuid.UUID) error {
		return h.cmds.UpdatePaymentStatus(c.Request.Context(), actorID, id, req.PaymentStatus)
	})
}

// @Summary Replace selections
// @Description Replace decor, catering and menu selections of a non-terminal booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReplaceSelectionsRequest true "Selections"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/{id}/selections [put]
func (h *BookingHandler) ReplaceSelections(c *gin.Context) {
	var req reqdto.ReplaceSelectionsRequest
	h.mutate(c, &req, func(c *gin.Context, actorID, id uuid.UUID) error {
		in, err := req.ToInput()
		if err != nil {
			return err
		}
		return h.cmds.ReplaceSelections(c.Request.Context(), actorID, id, in)
	})
}

// @Summary Delete booking
// @Description Business only
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actorID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// mutate binds the optional body, runs one lifecycle command and answers with the updated booking.
func (h *BookingHandler) mutate(c *gin.Context, body any, run func(c *gin.Context, actorID, id uuid.UUID) error) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if body != nil {
		if err := c.ShouldBindJSON(body); err != nil {
			badRequest(c, err)
			return
		}
	}
	if err := run(c, actorID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondAfterWrite(c, http.StatusOK, actorID, role, id)
}

func (h *BookingHandler) respondAfterWrite(c *gin.Context, status int, actorID uuid.UUID, role user.Role, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actorID, role, id)
	if err != nil {
		committedWithoutView(c, status, id, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, actorID uuid.UUID, role user.Role, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actorID, role, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}
