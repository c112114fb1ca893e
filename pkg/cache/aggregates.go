package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Aggregate is a user's rating summary as served to profile readers.
type Aggregate struct {
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

// AggregateStore caches rating aggregates keyed by user id. The cache is best
// effort: lookups that fail behave like misses and writes that fail are
// dropped, so callers never see a cache error.
type AggregateStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*Aggregate, bool)
	Set(ctx context.Context, userID uuid.UUID, agg Aggregate, ttl time.Duration)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

const aggregateKeyPrefix = "rating-aggregate:"

type redisAggregateStore struct {
	client *redis.Client
}

func NewRedisAggregateStore(client *redis.Client) AggregateStore {
	return &redisAggregateStore{client: client}
}

func (s *redisAggregateStore) Get(ctx context.Context, userID uuid.UUID) (*Aggregate, bool) {
	raw, err := s.client.Get(ctx, aggregateKeyPrefix+userID.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var agg Aggregate
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, false
	}
	return &agg, true
}

func (s *redisAggregateStore) Set(ctx context.Context, userID uuid.UUID, agg Aggregate, ttl time.Duration) {
	raw, err := json.Marshal(agg)
	if err != nil {
		return
	}
	s.client.Set(ctx, aggregateKeyPrefix+userID.String(), raw, ttl)
}

func (s *redisAggregateStore) Invalidate(ctx context.Context, userID uuid.UUID) {
	s.client.Del(ctx, aggregateKeyPrefix+userID.String())
}
