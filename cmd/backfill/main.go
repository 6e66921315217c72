package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/engine"
	"github.com/2beens/athletemonitor/internal/athlete/store"
	"github.com/2beens/athletemonitor/internal/cache"
	"github.com/2beens/athletemonitor/internal/config"
	"github.com/2beens/athletemonitor/internal/db"
	"github.com/2beens/athletemonitor/internal/logging"
	"github.com/2beens/athletemonitor/internal/telemetry/metrics"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting backfill ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	fromStr := flag.String("from", "", "first day to recompute, YYYY-MM-DD (required)")
	toStr := flag.String("to", "", "last day to recompute, YYYY-MM-DD (defaults to today)")
	subjectsStr := flag.String("subjects", "", "comma separated athlete ids (defaults to all active athletes)")
	workers := flag.Int("workers", 0, "number of concurrent workers (defaults to the config value)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      "",
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "athlete-backfill",
	})

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("load timezone %s: %s", cfg.Timezone, err)
	}

	from, to, err := parseRange(*fromStr, *toStr, location)
	if err != nil {
		log.Fatalf("invalid range: %s", err)
	}
	if *workers <= 0 {
		*workers = cfg.BackfillWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		receivedSig := <-chOsInterrupt
		log.Warnf("signal [%s] received, remaining units will be skipped ...", receivedSig)
		cancel()
	}()

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled, "athlete-backfill")
	if err != nil {
		log.Fatalf("honeycomb setup: %s", err)
	}
	defer otelShutdown()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("ATHLETE_POSTGRES_PASS"),
		MaxConns:       int32(*workers + 1),
		TracingEnabled: honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	rdb := cache.NewRedisClient(ctx, cache.NewRedisClientParams{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: os.Getenv("ATHLETE_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}()

	metricsManager := metrics.NewManager("athlete", "backfill", metrics.SetupPrometheus())
	subjectsRepo := store.NewSubjectsRepo(dbPool)
	measurementsRepo := store.NewMeasurementsRepo(dbPool, location)
	service := engine.NewService(engine.Params{
		Measurements:   measurementsRepo,
		Plans:          store.NewPlansRepo(dbPool, location),
		Subjects:       subjectsRepo,
		Calculated:     measurementsRepo,
		Cache:          cache.NewResultCache(rdb, cfg.ResultCacheTTL(), metricsManager),
		Location:       location,
		Readiness:      cfg.Readiness,
		Cycle:          cfg.Cycle,
		Alerts:         cfg.Alerts,
		MetricsManager: metricsManager,
	})

	subjectIDs, err := parseSubjectIDs(*subjectsStr)
	if err != nil {
		log.Fatalf("invalid subjects: %s", err)
	}
	if len(subjectIDs) == 0 {
		subjectIDs, err = subjectsRepo.ListActiveSubjectIDs(ctx)
		if err != nil {
			log.Fatalf("list active athletes: %s", err)
		}
	}

	log.Infof(
		"backfilling %d athletes from %s to %s with %d workers",
		len(subjectIDs), from.Format(time.DateOnly), to.Format(time.DateOnly), *workers,
	)

	report, err := service.Backfill(ctx, engine.BackfillParams{
		SubjectIDs: subjectIDs,
		From:       from,
		To:         to,
		Workers:    *workers,
	})
	if err != nil {
		log.Errorf("backfill finished with errors: %s", err)
	}

	reportJson, jsonErr := json.Marshal(report)
	if jsonErr != nil {
		log.Errorf("marshal backfill report: %s", jsonErr)
	} else {
		fmt.Println(string(reportJson))
	}

	if err != nil {
		os.Exit(1)
	}
}

func parseRange(fromStr, toStr string, location *time.Location) (time.Time, time.Time, error) {
	if fromStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("from date missing")
	}
	from, err := time.ParseInLocation(time.DateOnly, fromStr, location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse from: %w", err)
	}

	to := time.Now().In(location)
	if toStr != "" {
		to, err = time.ParseInLocation(time.DateOnly, toStr, location)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse to: %w", err)
		}
	}

	return from, to, nil
}

func parseSubjectIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("athlete id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
