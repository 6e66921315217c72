package alerts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/cycle"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/readiness"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
)

var ErrUnknownAlertKind = errors.New("unknown alert kind")

type Type string

const (
	TypeDanger  Type = "danger"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
)

// Kind names the rule an alert comes from; callers filter on it.
type Kind string

const (
	KindSleepDuration      Kind = "sleep_duration"
	KindSleepDurationTrend Kind = "sleep_duration_trend"
	KindACWR               Kind = "acwr"
	KindPlannedLoad        Kind = "planned_load"
	KindMenstrualAnomaly   Kind = "menstrual_anomaly"
	KindCyclePhaseFatigue  Kind = "cycle_phase_fatigue"
	KindPain               Kind = "pain"
	KindHRVDrop            Kind = "hrv_drop"
	KindWellbeing          Kind = "wellbeing"
	KindReadiness          Kind = "readiness"
	KindMissingData        Kind = "missing_data"
)

type Alert struct {
	Type    Type   `json:"type"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Input is everything the rules may read for one subject on one day.
// Readiness and Cycle are optional, rules depending on them stay silent when nil.
type Input struct {
	Subject   subjects.Subject
	AsOf      time.Time
	Snapshot  measurements.Snapshot
	Readiness *readiness.Result
	Cycle     *cycle.Result
}

type Options struct {
	// IncludeAlerts restricts the evaluation to these rule kinds; empty means all rules.
	IncludeAlerts []Kind
}

type rule struct {
	kind Kind
	// sex specific rules only run for subjects with cycle tracking
	cycleOnly bool
	eval      func(cfg Config, in Input) []Alert
}

type Evaluator struct {
	cfg   Config
	rules []rule
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{
		cfg: cfg,
		rules: []rule{
			{kind: KindSleepDuration, eval: sleepDurationRule},
			{kind: KindSleepDurationTrend, eval: sleepDurationTrendRule},
			{kind: KindACWR, eval: acwrRule},
			{kind: KindPlannedLoad, eval: plannedLoadRule},
			{kind: KindMenstrualAnomaly, cycleOnly: true, eval: menstrualAnomalyRule},
			{kind: KindCyclePhaseFatigue, cycleOnly: true, eval: cyclePhaseFatigueRule},
			{kind: KindPain, eval: painRule},
			{kind: KindHRVDrop, eval: hrvDropRule},
			{kind: KindWellbeing, eval: wellbeingRule},
			{kind: KindReadiness, eval: readinessRule},
			{kind: KindMissingData, eval: missingDataRule},
		},
	}
}

// Evaluate runs the selected rules in registration order and returns their alerts.
func (e *Evaluator) Evaluate(in Input, opts Options) []Alert {
	var include map[Kind]bool
	if len(opts.IncludeAlerts) > 0 {
		include = make(map[Kind]bool, len(opts.IncludeAlerts))
		for _, k := range opts.IncludeAlerts {
			include[k] = true
		}
	}

	cycleTracked := cycle.Applicable(in.Subject)
	alerts := []Alert{}
	for _, r := range e.rules {
		if include != nil && !include[r.kind] {
			continue
		}
		if r.cycleOnly && !cycleTracked {
			continue
		}
		for _, a := range r.eval(e.cfg, in) {
			a.Kind = r.kind
			alerts = append(alerts, a)
		}
	}
	return alerts
}

// Kinds lists the rule kinds in evaluation order.
func Kinds() []Kind {
	return []Kind{
		KindSleepDuration,
		KindSleepDurationTrend,
		KindACWR,
		KindPlannedLoad,
		KindMenstrualAnomaly,
		KindCyclePhaseFatigue,
		KindPain,
		KindHRVDrop,
		KindWellbeing,
		KindReadiness,
		KindMissingData,
	}
}

// ParseKinds validates a caller supplied rule filter.
func ParseKinds(values []string) ([]Kind, error) {
	known := make(map[Kind]bool)
	for _, k := range Kinds() {
		known[k] = true
	}

	var kinds []Kind
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := Kind(v)
		if !known[k] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlertKind, v)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
