package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	venueKeyPrefix = "venue:detail:"
	ownerKeyPrefix = "venue:owner:"
	// GenerationKey is bumped by every owner invalidation.
	GenerationKey = "venue:generation"
)

// setIfCurrent stores the detail and records it in the owner set, but only while
// the generation still matches the one the caller read before loading from the store.
const setIfCurrent = `
if (redis.call('GET', KEYS[1]) or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
redis.call('SADD', KEYS[3], KEYS[2])
redis.call('PEXPIRE', KEYS[3], ARGV[3])
return 1`

// VenueCache stores assembled venue details in Redis. Each owner keeps a set of the
// venue keys cached on their behalf so a catalog change can drop all of them at once.
type VenueCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewVenueCache(client redis.Cmdable, ttl time.Duration) *VenueCache {
	return &VenueCache{client: client, ttl: ttl}
}

func VenueKey(venueID uuid.UUID) string {
	return venueKeyPrefix + venueID.String()
}

func OwnerKey(ownerID uuid.UUID) string {
	return ownerKeyPrefix + ownerID.String()
}

func (c *VenueCache) Get(ctx context.Context, venueID uuid.UUID) (*queries.VenueDetailView, error) {
	raw, err := c.client.Get(ctx, VenueKey(venueID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "redis get venue detail")
	}

	var detail queries.VenueDetailView
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, errs.Wrap(err, "decode cached venue detail")
	}
	return &detail, nil
}

func (c *VenueCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "redis get cache generation")
	}
	return gen, nil
}

// Set is a no-op when an invalidation happened after gen was read.
func (c *VenueCache) Set(ctx context.Context, gen int64, ownerID uuid.UUID, detail *queries.VenueDetailView) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return errs.Wrap(err, "encode venue detail")
	}

	keys := []string{GenerationKey, VenueKey(detail.Venue.ID), OwnerKey(ownerID)}
	err = c.client.Eval(ctx, setIfCurrent, keys,
		strconv.FormatInt(gen, 10), string(raw), strconv.FormatInt(c.ttl.Milliseconds(), 10)).Err()
	if err != nil {
		return errs.Wrap(err, "redis set venue detail")
	}
	return nil
}

// InvalidateOwner bumps the generation before collecting keys, so a concurrent Set either
// fails its generation check or lands in the owner set that is deleted here.
func (c *VenueCache) InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := c.client.Incr(ctx, GenerationKey).Err(); err != nil {
		return errs.Wrap(err, "redis bump cache generation")
	}

	ownerKey := OwnerKey(ownerID)
	keys, err := c.client.SMembers(ctx, ownerKey).Result()
	if err != nil {
		return errs.Wrap(err, "redis list owner venue keys")
	}
	keys = append(keys, ownerKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "redis delete venue details")
	}
	return nil
}

// NopCache is used when no Redis URL is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, uuid.UUID) (*queries.VenueDetailView, error) { return nil, nil }

func (NopCache) Generation(context.Context) (int64, error) { return 0, nil }

func (NopCache) Set(context.Context, int64, uuid.UUID, *queries.VenueDetailView) error { return nil }

func (NopCache) InvalidateOwner(context.Context, uuid.UUID) error { return nil }
