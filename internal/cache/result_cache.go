package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
)

const resultCacheName = "result"

// ResultCache keeps evaluated engine results (readiness, cycle phase) in redis,
// keyed by subject, result name and evaluation day.
// Every key of a subject is tracked in a set, so a recompute can drop them all at once.
type ResultCache struct {
	redisClient    *redis.Client
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewResultCache(redisClient *redis.Client, ttl time.Duration, metricsManager *metrics.Manager) *ResultCache {
	return &ResultCache{
		redisClient:    redisClient,
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func resultKey(subjectID int, name string, day time.Time) string {
	return fmt.Sprintf("athlete-result::%d::%s::%s", subjectID, name, measurements.DayKey(day))
}

// Get decodes the cached value into dst. A miss is reported as (false, nil).
func (c *ResultCache) Get(ctx context.Context, subjectID int, name string, day time.Time, dst any) (bool, error) {
	payload, err := c.redisClient.Get(ctx, resultKey(subjectID, name, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		recordLookup(c.metricsManager, resultCacheName, lookupMiss)
		return false, nil
	}
	if err != nil {
		recordLookup(c.metricsManager, resultCacheName, lookupError)
		return false, fmt.Errorf("get cached %s: %w", name, err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		recordLookup(c.metricsManager, resultCacheName, lookupError)
		return false, fmt.Errorf("unmarshal cached %s: %w", name, err)
	}

	recordLookup(c.metricsManager, resultCacheName, lookupHit)
	return true, nil
}

func (c *ResultCache) Set(ctx context.Context, subjectID int, name string, day time.Time, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	key := resultKey(subjectID, name, day)
	if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached %s: %w", name, err)
	}

	indexKey := subjectIndexKey(subjectID)
	if err := c.redisClient.SAdd(ctx, indexKey, key).Err(); err != nil {
		return fmt.Errorf("index cached %s: %w", name, err)
	}
	if err := c.redisClient.Expire(ctx, indexKey, c.ttl).Err(); err != nil {
		return fmt.Errorf("expire result index: %w", err)
	}

	return nil
}

// Invalidate drops every cached result of the subject.
func (c *ResultCache) Invalidate(ctx context.Context, subjectID int) error {
	indexKey := subjectIndexKey(subjectID)
	keys, err := c.redisClient.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("list cached results: %w", err)
	}

	if err := c.redisClient.Del(ctx, append(keys, indexKey)...).Err(); err != nil {
		return fmt.Errorf("delete cached results: %w", err)
	}

	return nil
}
