package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/athletemonitor/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	promcl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimiter struct {
	allowed int
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return nil, f.err
	}
	if f.allowed <= 0 {
		return &redis_rate.Result{Limit: limit, Allowed: 0, RetryAfter: 30 * time.Second}, nil
	}
	f.allowed--
	return &redis_rate.Result{Limit: limit, Allowed: 1, Remaining: f.allowed}, nil
}

func TestRateLimit(t *testing.T) {
	limiter := &fakeLimiter{allowed: 1}
	metricsManager := metrics.NewTestManager()

	r := mux.NewRouter()
	r.Use(RateLimit(limiter, metricsManager, "recompute", 1))
	r.HandleFunc("/athletes/{id}/recompute", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/athletes/7/recompute", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/athletes/7/recompute", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "retry after 30")

	require.Len(t, limiter.keys, 2)
	assert.Equal(t, "recompute:7", limiter.keys[0])
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
}

func TestRateLimit_LimiterError(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis down")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	rr := httptest.NewRecorder()
	RateLimit(limiter, nil, "api", 10)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, []string{"api"}, limiter.keys)
}

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.Use(RequestMetrics(metricsManager))
	r.HandleFunc("/athletes/{id}/readiness", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/athletes/3/readiness", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.GaugeRequests))
	assert.Equal(t, 1, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))

	gathered, err := reg.Gather()
	require.NoError(t, err)

	var foundDurationHistogram *promcl.MetricFamily
	for _, m := range gathered {
		if m.GetName() == "athlete_test_server_request_duration_seconds" {
			foundDurationHistogram = m
			break
		}
	}
	require.NotNil(t, foundDurationHistogram)
	require.Len(t, foundDurationHistogram.Metric, 1)

	labels := make(map[string]string)
	for _, l := range foundDurationHistogram.Metric[0].GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	assert.Equal(t, "/athletes/{id}/readiness", labels["route"])
	assert.Equal(t, "404", labels["status_code"])
	assert.Equal(t, uint64(1), foundDurationHistogram.Metric[0].GetHistogram().GetSampleCount())
}
