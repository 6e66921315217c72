package athlete

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/alerts"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/engine"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/readiness"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
	"github.com/2beens/athletemonitor/internal/athlete/trends"
	"github.com/2beens/athletemonitor/internal/telemetry/tracing"
	"github.com/2beens/athletemonitor/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=athlete_test

type metricsEngine interface {
	ComputeDailyCalculatedMetrics(ctx context.Context, subjectID int, date time.Time) ([]measurements.CalculatedMetric, error)
	GetReadiness(ctx context.Context, subjectID int, asOf time.Time) (readiness.Result, error)
	GetReadinessStatus(ctx context.Context, subjectID int, asOf time.Time) (readiness.Status, error)
	GetCyclePhase(ctx context.Context, subjectID int, asOf time.Time) (engine.CyclePhase, error)
	GetAlerts(ctx context.Context, subjectID int, asOf time.Time, opts alerts.Options) ([]alerts.Alert, error)
	GetTrend(ctx context.Context, subjectID int, kind string, period trends.Period, asOf time.Time) (engine.TrendReport, error)
	PrepareChartSeries(ctx context.Context, subjectID int, kinds []string, from, to *time.Time) (trends.Chart, error)
}

type RecomputeResponse struct {
	Date       string                          `json:"date"`
	Calculated []measurements.CalculatedMetric `json:"calculated"`
}

type CatalogResponse struct {
	Metrics    []catalog.Descriptor `json:"metrics"`
	Calculated []catalog.Descriptor `json:"calculated"`
	Alerts     []alerts.Kind        `json:"alerts"`
}

type Handler struct {
	engine   metricsEngine
	location *time.Location
	now      func() time.Time
}

// NewHandler parses the date query params in loc; requests without a date are evaluated today.
func NewHandler(engine metricsEngine, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		engine:   engine,
		location: loc,
		now:      time.Now,
	}
}

// SetupRoutes registers the athlete routes; recompute goes through the extra middlewares.
func (handler *Handler) SetupRoutes(router *mux.Router, recomputeMiddlewares ...mux.MiddlewareFunc) {
	router.HandleFunc("/catalog", handler.HandleCatalog).Methods("GET")

	athleteRouter := router.PathPrefix("/athletes/{id:[0-9]+}").Subrouter()
	athleteRouter.HandleFunc("/readiness", handler.HandleReadiness).Methods("GET")
	athleteRouter.HandleFunc("/readiness/status", handler.HandleReadinessStatus).Methods("GET")
	athleteRouter.HandleFunc("/cycle", handler.HandleCyclePhase).Methods("GET")
	athleteRouter.HandleFunc("/alerts", handler.HandleAlerts).Methods("GET")
	athleteRouter.HandleFunc("/trends/{kind}", handler.HandleTrend).Methods("GET")
	athleteRouter.HandleFunc("/chart", handler.HandleChart).Methods("GET")

	recomputeRouter := athleteRouter.PathPrefix("/recompute").Subrouter()
	recomputeRouter.HandleFunc("", handler.HandleRecompute).Methods("POST", "OPTIONS")
	recomputeRouter.Use(recomputeMiddlewares...)
}

func (handler *Handler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	resp := CatalogResponse{
		Alerts: alerts.Kinds(),
	}
	for _, k := range catalog.MetricKinds() {
		d, _ := catalog.Lookup(k)
		resp.Metrics = append(resp.Metrics, d)
	}
	for _, k := range catalog.CalculatedKinds() {
		d, _ := catalog.LookupCalculated(k)
		resp.Calculated = append(resp.Calculated, d)
	}
	pkg.WriteJSONOK(w, resp)
}

func (handler *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.readiness")
	defer span.End()

	subjectID, asOf, ok := handler.subjectAndDate(w, r)
	if !ok {
		return
	}

	result, err := handler.engine.GetReadiness(ctx, subjectID, asOf)
	if err != nil {
		handler.writeError(w, "get readiness", subjectID, err)
		return
	}
	pkg.WriteJSONOK(w, result)
}

func (handler *Handler) HandleReadinessStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.readiness-status")
	defer span.End()

	subjectID, asOf, ok := handler.subjectAndDate(w, r)
	if !ok {
		return
	}

	status, err := handler.engine.GetReadinessStatus(ctx, subjectID, asOf)
	if err != nil {
		handler.writeError(w, "get readiness status", subjectID, err)
		return
	}
	pkg.WriteJSONOK(w, status)
}

func (handler *Handler) HandleCyclePhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.cycle")
	defer span.End()

	subjectID, asOf, ok := handler.subjectAndDate(w, r)
	if !ok {
		return
	}

	phase, err := handler.engine.GetCyclePhase(ctx, subjectID, asOf)
	if err != nil {
		handler.writeError(w, "get cycle phase", subjectID, err)
		return
	}
	pkg.WriteJSONOK(w, phase)
}

// HandleAlerts accepts the rule filter as include=a,b or repeated include params.
func (handler *Handler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.alerts")
	defer span.End()

	subjectID, asOf, ok := handler.subjectAndDate(w, r)
	if !ok {
		return
	}

	var include []string
	for _, v := range r.URL.Query()["include"] {
		include = append(include, strings.Split(v, ",")...)
	}
	kinds, err := alerts.ParseKinds(include)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	raised, err := handler.engine.GetAlerts(ctx, subjectID, asOf, alerts.Options{IncludeAlerts: kinds})
	if err != nil {
		handler.writeError(w, "get alerts", subjectID, err)
		return
	}
	pkg.WriteJSONOK(w, raised)
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.trend")
	defer span.End()

	subjectID, asOf, ok := handler.subjectAndDate(w, r)
	if !ok {
		return
	}

	period := trends.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = trends.PeriodLast30Days
	}

	report, err := handler.engine.GetTrend(ctx, subjectID, mux.Vars(r)["kind"], period, asOf)
	if err != nil {
		handler.writeError(w, "get trend", subjectID, err)
		return
	}
	pkg.WriteJSONOK(w, report)
}

// HandleChart expects kinds=A,B and optional from/to dates.
func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.chart")
	defer span.End()

	subjectID, ok := handler.subjectID(w, r)
	if !ok {
		return
	}

	var kinds []string
	for _, k := range strings.Split(r.URL.Query().Get("kinds"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		pkg.WriteJSONError(w, "kinds empty", http.StatusBadRequest)
		return
	}

	from, err := handler.optionalDate(r, "from")
	if err != nil {
		pkg.WriteJSONError(w, "invalid from date", http.StatusBadRequest)
		return
	}
	to, err := handler.optionalDate(r, "to")
	if err != nil {
		pkg.WriteJSONError(w, "invalid to date", http.StatusBadRequest)
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		pkg.WriteJSONError(w, "to before from", http.StatusBadRequest)
		return
	}

	chart, err := handler.engine.PrepareChartSeries(ctx, subjectID, kinds, from, to)
	if err != nil {
		handler.writeError(w, "prepare chart series", subjectID, err)
		return
	}
	pkg.WriteJSONOK(w, chart)
}

func (handler *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.recompute")
	defer span.End()

	subjectID, date, ok := handler.subjectAndDate(w, r)
	if !ok {
		return
	}

	calculated, err := handler.engine.ComputeDailyCalculatedMetrics(ctx, subjectID, date)
	if err != nil {
		handler.writeError(w, "recompute calculated metrics", subjectID, err)
		return
	}

	log.Debugf("subject %d, %s: %d calculated metrics recomputed", subjectID, measurements.DayKey(date), len(calculated))
	pkg.WriteJSONOK(w, RecomputeResponse{
		Date:       measurements.DayKey(date),
		Calculated: calculated,
	})
}

func (handler *Handler) subjectID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid athlete id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// subjectAndDate reads the {id} var and the optional date=YYYY-MM-DD param.
func (handler *Handler) subjectAndDate(w http.ResponseWriter, r *http.Request) (int, time.Time, bool) {
	id, ok := handler.subjectID(w, r)
	if !ok {
		return 0, time.Time{}, false
	}

	raw := r.URL.Query().Get("date")
	if raw == "" {
		return id, handler.now().In(handler.location), true
	}
	date, err := time.ParseInLocation(time.DateOnly, raw, handler.location)
	if err != nil {
		pkg.WriteJSONError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return 0, time.Time{}, false
	}
	return id, date, true
}

func (handler *Handler) optionalDate(r *http.Request, param string) (*time.Time, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, raw, handler.location)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (handler *Handler) writeError(w http.ResponseWriter, action string, subjectID int, err error) {
	switch {
	case errors.Is(err, subjects.ErrSubjectNotFound):
		pkg.WriteJSONError(w, "athlete not found", http.StatusNotFound)
	case errors.Is(err, engine.ErrCycleNotApplicable):
		pkg.WriteJSONError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, catalog.ErrUnknownKind),
		errors.Is(err, trends.ErrUnknownPeriod),
		errors.Is(err, alerts.ErrUnknownAlertKind):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s, subject %d: %s", action, subjectID, err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
	}
}
