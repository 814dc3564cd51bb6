package commands

import (
	"bookmyvenue/internal/domain/auth"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/queries"
	"bookmyvenue/internal/usecase/shared"
)

var (
	ErrBookingNotFound    = queries.ErrBookingNotFound
	ErrVenueNotFound      = queries.ErrVenueNotFound
	ErrServiceNotFound    = queries.ErrServiceNotFound
	ErrUserNotFound       = queries.ErrUserNotFound
	ErrInvalidSelection   = errs.New("selected services do not match the venue's business")
	ErrStoreUnavailable   = shared.ErrStoreUnavailable
	ErrEmailTaken         = errs.New("email already registered")
	ErrServiceInUse       = errs.New("service is referenced by bookings")
	ErrInvalidCredentials = auth.ErrInvalidCredentials
	ErrTokenGeneration    = errs.New("token generation failed")
)

func storeErr(err error) error { return shared.StoreErr(err) }
