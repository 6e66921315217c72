package cache

import (
	"context"
	"fmt"
	"net"

	"github.com/2beens/athletemonitor/internal/telemetry/metrics"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	lookupHit   = "hit"
	lookupMiss  = "miss"
	lookupError = "error"
)

type NewRedisClientParams struct {
	Host           string
	Port           string
	Password       string
	TracingEnabled bool
}

// NewRedisClient creates the redis client shared by the result cache and the rate limiter.
// A failing ping is only logged, the caches degrade to misses.
func NewRedisClient(ctx context.Context, params NewRedisClientParams) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Host, params.Port),
		Password: params.Password,
		DB:       0, // use default DB
	})
	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	if rdbStatus := rdb.Ping(ctx); rdbStatus.Err() != nil {
		log.Errorf("--> failed to ping redis: %s", rdbStatus.Err())
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	return rdb
}

func recordLookup(metricsManager *metrics.Manager, cacheName, result string) {
	if metricsManager == nil {
		return
	}
	metricsManager.CounterCacheLookups.WithLabelValues(cacheName, result).Inc()
}

func subjectIndexKey(subjectID int) string {
	return fmt.Sprintf("athlete-results::%d", subjectID)
}
