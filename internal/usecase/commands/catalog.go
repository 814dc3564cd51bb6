package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

import (
	"context"
	"log/slog"

	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/queries"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrServiceNotOwned = errs.New("service not owned by user")

type ServiceInput struct {
	Kind       string
	Attributes catalog.Attributes
}

type CatalogCommands interface {
	CreateService(ctx context.Context, ownerID uuid.UUID, in ServiceInput) (uuid.UUID, error)
	CreateServices(ctx context.Context, ownerID uuid.UUID, in []ServiceInput) ([]uuid.UUID, error)
	UpdateService(ctx context.Context, ownerID, serviceID uuid.UUID, p catalog.Patch) error
	DeleteService(ctx context.Context, ownerID, serviceID uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.VenueDetailCache
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, cache queries.VenueDetailCache, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, ownerID uuid.UUID, in ServiceInput) (uuid.UUID, error) {
	ids, err := uc.CreateServices(ctx, ownerID, []ServiceInput{in})
	if err != nil {
		return uuid.Nil, err
	}
	return ids[0], nil
}

// CreateServices stores every entry or none of them.
func (uc *catalogUseCaseImpl) CreateServices(ctx context.Context, ownerID uuid.UUID, in []ServiceInput) ([]uuid.UUID, error) {
	now := uc.clock.Now()
	created := make([]*catalog.Service, 0, len(in))
	for _, item := range in {
		kind, err := catalog.NewKind(item.Kind)
		if err != nil {
			return nil, err
		}
		s, err := catalog.NewService(ownerID, kind, item.Attributes, now)
		if err != nil {
			return nil, err
		}
		created = append(created, s)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range created {
			if err := checkAnchor(ctx, tx.Reads(), s); err != nil {
				return err
			}
			if err := tx.Services().Create(ctx, tx.DB(), s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	uc.invalidate(ctx, ownerID)
	ids := make([]uuid.UUID, len(created))
	for i, s := range created {
		ids[i] = s.ID()
	}
	return ids, nil
}

func (uc *catalogUseCaseImpl) UpdateService(ctx context.Context, ownerID, serviceID uuid.UUID, p catalog.Patch) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := loadOwnedService(ctx, tx.Reads(), ownerID, serviceID)
		if err != nil {
			return err
		}
		if err := s.Apply(p, uc.clock.Now()); err != nil {
			return err
		}
		if err := checkAnchor(ctx, tx.Reads(), s); err != nil {
			return err
		}
		if err := tx.Services().Update(ctx, tx.DB(), s); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return storeErr(err)
	}
	uc.invalidate(ctx, ownerID)
	return nil
}

// DeleteService removes a service the owner holds. Venues that bookings still point at cannot be removed.
func (uc *catalogUseCaseImpl) DeleteService(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadOwnedService(ctx, tx.Reads(), ownerID, serviceID); err != nil {
			return err
		}
		if err := tx.Services().Delete(ctx, tx.DB(), serviceID, ownerID); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrServiceNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrServiceInUse)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return storeErr(err)
	}
	uc.invalidate(ctx, ownerID)
	return nil
}

func (uc *catalogUseCaseImpl) invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := uc.cache.InvalidateOwner(ctx, ownerID); err != nil {
		slog.Warn("venue cache invalidation failed", "ownerId", ownerID, "error", err)
	}
}

func loadOwnedService(ctx context.Context, reads shared.CommandReads, ownerID, serviceID uuid.UUID) (*catalog.Service, error) {
	s, err := reads.ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !s.OwnedBy(ownerID) {
		return nil, ErrServiceNotOwned
	}
	return s, nil
}

// checkAnchor requires decor, catering and menu items to hang off a venue of the same owner.
func checkAnchor(ctx context.Context, reads shared.CommandReads, s *catalog.Service) error {
	venueID := s.VenueID()
	if venueID == nil {
		return nil
	}
	venue, err := reads.ServiceByID(ctx, *venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueNotFound
		}
		return err
	}
	if !venue.IsVenue() {
		return ErrVenueNotFound
	}
	if !venue.OwnedBy(s.OwnerID()) {
		return ErrInvalidSelection
	}
	return nil
}
