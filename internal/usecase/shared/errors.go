package shared

import (
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/pkg/errs"
)

var ErrStoreUnavailable = errs.New("store unavailable")

// StoreErr marks persistence failures as ErrStoreUnavailable and passes every other error through.
// Commands and queries apply it to every error they return.
func StoreErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}
