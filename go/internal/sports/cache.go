package sports

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/models"
)

// RedisCache is a read-through cache of sport documents. Failures are logged
// and treated as misses so Postgres stays the source of truth.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a sport cache backed by Redis
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, id uuid.UUID) (*models.Sport, bool) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("sport_id", id.String()).Msg("sport cache get failed")
		}
		return nil, false
	}

	var sport models.Sport
	if err := json.Unmarshal(data, &sport); err != nil {
		log.Warn().Err(err).Str("sport_id", id.String()).Msg("discarding undecodable cached sport")
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &sport, true
}

func (c *RedisCache) Set(ctx context.Context, sport *models.Sport) {
	data, err := json.Marshal(sport)
	if err != nil {
		log.Warn().Err(err).Str("sport_id", sport.ID.String()).Msg("failed to encode sport for cache")
		return
	}
	if err := c.client.Set(ctx, cacheKey(sport.ID), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("sport_id", sport.ID.String()).Msg("sport cache set failed")
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Str("sport_id", id.String()).Msg("sport cache invalidate failed")
	}
}

func cacheKey(id uuid.UUID) string {
	return "sport:" + id.String()
}

// NoopCache is used when no Redis is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, uuid.UUID) (*models.Sport, bool) { return nil, false }
func (NoopCache) Set(context.Context, *models.Sport)                   {}
func (NoopCache) Invalidate(context.Context, uuid.UUID)                {}
