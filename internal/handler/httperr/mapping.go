package httperr

import (
	"net/http"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/commands"
	"bookmyvenue/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target  error
	status  int
	kind    string
	message string
}

// mappings is ordered; the first match wins.
var mappings = []mapping{
	{commands.ErrStoreUnavailable, http.StatusServiceUnavailable, "StoreUnavailable", "Service temporarily unavailable"},

	{booking.ErrMissingField, http.StatusBadRequest, "MissingField", "Missing required fields"},
	{booking.ErrMalformedField, http.StatusBadRequest, "MalformedField", "Invalid date or time format"},
	{queries.ErrInvalidEventDate, http.StatusBadRequest, "MalformedField", "Invalid date or time format"},
	{booking.ErrInvalidRange, http.StatusBadRequest, "InvalidRange", "Start time must be before end time"},
	{booking.ErrSlotConflict, http.StatusConflict, "SlotConflict", "Time slot already booked"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "NotFound", "Booking not found"},
	{queries.ErrVenueNotFound, http.StatusNotFound, "VenueNotFound", "Venue not found"},
	{commands.ErrInvalidSelection, http.StatusUnprocessableEntity, "InvalidSelection", "Selected services do not match the venue's business"},
	{booking.ErrNotAuthorized, http.StatusForbidden, "NotAuthorized", "Not authorized for this booking"},
	{queries.ErrBookingAccessDenied, http.StatusForbidden, "NotAuthorized", "Not authorized for this booking"},
	{booking.ErrInvalidTransition, http.StatusConflict, "InvalidTransition", "Invalid status transition"},

	{queries.ErrServiceNotFound, http.StatusNotFound, "ServiceNotFound", "Service not found"},
	{commands.ErrServiceNotOwned, http.StatusForbidden, "NotAuthorized", "Not authorized for this service"},
	{commands.ErrServiceInUse, http.StatusConflict, "ServiceInUse", "Service is referenced by bookings"},
	{catalog.ErrInvalidKind, http.StatusBadRequest, "ValidationFailed", "Invalid service type"},
	{catalog.ErrTitleRequired, http.StatusBadRequest, "ValidationFailed", "Title is required"},
	{catalog.ErrDescriptionRequired, http.StatusBadRequest, "ValidationFailed", "Description is required"},
	{catalog.ErrVenueRequired, http.StatusBadRequest, "ValidationFailed", "Venue id is required"},
	{catalog.ErrNegativePrice, http.StatusBadRequest, "ValidationFailed", "Price cannot be negative"},
	{catalog.ErrMissingOwner, http.StatusBadRequest, "ValidationFailed", "Owner is required"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password"},
	{commands.ErrEmailTaken, http.StatusConflict, "EmailTaken", "Email already registered"},
	{user.ErrInvalidEmail, http.StatusBadRequest, "ValidationFailed", "Invalid email"},
	{user.ErrInvalidRole, http.StatusBadRequest, "ValidationFailed", "Invalid role"},
	{user.ErrPasswordTooWeak, http.StatusBadRequest, "ValidationFailed", "Password must be at least 8 characters"},
	{user.ErrNameRequired, http.StatusBadRequest, "ValidationFailed", "Name is required"},
	{user.ErrInvalidPhone, http.StatusBadRequest, "ValidationFailed", "Invalid phone number"},
	{queries.ErrUserNotFound, http.StatusNotFound, "UserNotFound", "User not found"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "InvalidCursor", "Invalid cursor"},
}

// Classify resolves err to its HTTP status, error kind and client message.
func Classify(err error) (int, string, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.kind, m.message
		}
	}
	return http.StatusInternalServerError, "Internal", "Internal server error"
}

// Abort writes the mapped error body for err.
func Abort(c *gin.Context, err error) {
	status, kind, msg := Classify(err)
	AbortWith(c, status, kind, msg, err)
}
