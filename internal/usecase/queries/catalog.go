package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"
	"log/slog"
	"strings"

	"bookmyvenue/internal/domain/catalog"
	"bookmyvenue/internal/infra"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrVenueNotFound   = errs.New("venue not found")
)

type CatalogQueries interface {
	ListServices(ctx context.Context, kind string) ([]*ServiceView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	GetVenueDetail(ctx context.Context, venueID uuid.UUID) (*VenueDetailView, error)
	SearchVenues(ctx context.Context, keyword string) ([]*ServiceView, error)
}

type CatalogReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindAll(ctx context.Context, kind string) ([]*ServiceView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error)
	FindItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error)
	SearchVenues(ctx context.Context, pattern string) ([]*ServiceView, error)
}

// VenueDetailCache keeps assembled venue details keyed by venue id.
// A miss is reported as (nil, nil).
type VenueDetailCache interface {
	Get(ctx context.Context, venueID uuid.UUID) (*VenueDetailView, error)
	// Generation changes on every InvalidateOwner. Read it before loading from the store.
	Generation(ctx context.Context) (int64, error)
	// Set stores detail only if no invalidation happened since gen was read.
	Set(ctx context.Context, gen int64, ownerID uuid.UUID, detail *VenueDetailView) error
	InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
	cache     VenueDetailCache
}

func NewCatalogQueries(readStore CatalogReadStore, cache VenueDetailCache) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore, cache: cache}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, kind string) ([]*ServiceView, error) {
	if kind != "" {
		k, err := catalog.NewKind(kind)
		if err != nil {
			return nil, err
		}
		kind = k.String()
	}
	return list(q.readStore.FindAll(ctx, kind))
}

func (q *catalogQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error) {
	return list(q.readStore.FindByOwner(ctx, ownerID))
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, shared.StoreErr(err)
	}
	return view, nil
}

// GetVenueDetail serves from the cache when it can. Cache failures are logged
// and the detail is rebuilt from the store.
func (q *catalogQueriesImpl) GetVenueDetail(ctx context.Context, venueID uuid.UUID) (*VenueDetailView, error) {
	cached, err := q.cache.Get(ctx, venueID)
	if err != nil {
		slog.Warn("venue cache read failed", "venueId", venueID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	gen, genErr := q.cache.Generation(ctx)
	if genErr != nil {
		slog.Warn("venue cache generation read failed", "venueId", venueID, "error", genErr)
	}

	venue, err := q.readStore.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, shared.StoreErr(err)
	}
	if venue.Kind != catalog.KindVenue.String() {
		return nil, ErrVenueNotFound
	}

	items, err := q.readStore.FindItemsByOwner(ctx, venue.OwnerID)
	if err != nil {
		return nil, shared.StoreErr(err)
	}

	detail := &VenueDetailView{
		Venue:    *venue,
		Decor:    []ServiceView{},
		Catering: []ServiceView{},
		Menu:     []ServiceView{},
	}
	for _, item := range items {
		switch item.Kind {
		case catalog.KindDecor.String():
			detail.Decor = append(detail.Decor, *item)
		case catalog.KindCatering.String():
			detail.Catering = append(detail.Catering, *item)
		case catalog.KindMenu.String():
			detail.Menu = append(detail.Menu, *item)
		}
	}

	// without a generation the write could not be checked against invalidations
	if genErr == nil {
		if err := q.cache.Set(ctx, gen, venue.OwnerID, detail); err != nil {
			slog.Warn("venue cache write failed", "venueId", venueID, "error", err)
		}
	}
	return detail, nil
}

func (q *catalogQueriesImpl) SearchVenues(ctx context.Context, keyword string) ([]*ServiceView, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return list(q.readStore.FindAll(ctx, catalog.KindVenue.String()))
	}
	return list(q.readStore.SearchVenues(ctx, "%"+escapeLike(keyword)+"%"))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
