package readiness

import (
	"math"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
)

type PillarName string

const (
	PillarWellbeing     PillarName = "subjective_wellbeing"
	PillarPreSession    PillarName = "pre_session_state"
	PillarPhysiological PillarName = "physiological"
)

// EssentialKind is one of the inputs counted by the confidence index.
// SBM is calculated, the others are raw kinds.
type EssentialKind string

const (
	EssentialSBM EssentialKind = EssentialKind(catalog.SBM)
)

func raw(kind catalog.MetricKind) EssentialKind {
	return EssentialKind(kind)
}

// Essentials are the tracked inputs the confidence index is computed over.
var Essentials = []EssentialKind{
	EssentialSBM,
	raw(catalog.MorningSleepDuration),
	raw(catalog.MorningGeneralFatigue),
	raw(catalog.MorningPain),
	raw(catalog.PreSessionEnergy),
	raw(catalog.PreSessionLegFeel),
	raw(catalog.MorningHRV),
	raw(catalog.MorningRestingHR),
}

type Config struct {
	WeightWellbeing     float64 `toml:"weight_wellbeing"`
	WeightPreSession    float64 `toml:"weight_pre_session"`
	WeightPhysiological float64 `toml:"weight_physiological"`

	// HRV baseline window, today excluded
	HRVBaselineDays int `toml:"hrv_baseline_days"`

	// points lost per percent of HRV deviation
	HRVPointsPerPercent float64 `toml:"hrv_points_per_percent"`

	SafetyCapPainThreshold float64 `toml:"safety_cap_pain_threshold"`
	SafetyCapCeiling       int     `toml:"safety_cap_ceiling"`

	// status is neutral when more essentials than this are missing
	MaxMissingEssentials int `toml:"max_missing_essentials"`
}

func DefaultConfig() Config {
	return Config{
		WeightWellbeing:        0.35,
		WeightPreSession:       0.40,
		WeightPhysiological:    0.25,
		HRVBaselineDays:        7,
		HRVPointsPerPercent:    5,
		SafetyCapPainThreshold: 9,
		SafetyCapCeiling:       40,
		MaxMissingEssentials:   3,
	}
}

type Pillar struct {
	Name     PillarName      `json:"name"`
	Weight   float64         `json:"weight"`
	Score    *float64        `json:"score"`
	Inputs   []EssentialKind `json:"inputs"`
	Included bool            `json:"included"`
}

type Result struct {
	Score           *int            `json:"score"`
	ConfidenceIndex int             `json:"confidenceIndex"`
	Pillars         []Pillar        `json:"pillars"`
	Present         []EssentialKind `json:"present"`
	Missing         []EssentialKind `json:"missing"`
	SafetyCapped    bool            `json:"safetyCapped"`
	Date            time.Time       `json:"date"`
}

// Inputs are the values of the evaluated day. The HRV baseline is the list of
// daily HRV values preceding the day.
type Inputs struct {
	SBM         *float64
	SleepHours  *float64
	Fatigue     *float64
	Pain        *float64
	Energy      *float64
	LegFeel     *float64
	HRV         *float64
	RestingHR   *float64
	HRVBaseline []float64
}

// InputsFromSnapshot collects the inputs of the given day. The stored SBM is used when
// present, otherwise it is derived from the day's morning answers.
func InputsFromSnapshot(s measurements.Snapshot, day time.Time, cfg Config) Inputs {
	in := Inputs{
		SleepHours: s.ValueOn(catalog.MorningSleepDuration, day),
		Fatigue:    s.ValueOn(catalog.MorningGeneralFatigue, day),
		Pain:       s.ValueOn(catalog.MorningPain, day),
		Energy:     s.ValueOn(catalog.PreSessionEnergy, day),
		LegFeel:    s.ValueOn(catalog.PreSessionLegFeel, day),
		HRV:        s.ValueOn(catalog.MorningHRV, day),
		RestingHR:  s.ValueOn(catalog.MorningRestingHR, day),
	}

	in.SBM = s.CalculatedOn(catalog.SBM, day)
	if in.SBM == nil {
		in.SBM = calc.SBMWeighted(calc.SBMInputs{
			SleepQuality:       s.ValueOn(catalog.MorningSleepQuality, day),
			GeneralFatigue:     in.Fatigue,
			Pain:               in.Pain,
			MoodWellbeing:      s.ValueOn(catalog.MorningMoodWellbeing, day),
			SleepDurationHours: in.SleepHours,
		})
	}

	for _, p := range s.Window(catalog.MorningHRV, day, cfg.HRVBaselineDays, false) {
		in.HRVBaseline = append(in.HRVBaseline, p.Value)
	}

	return in
}

func (in Inputs) present() map[EssentialKind]bool {
	values := map[EssentialKind]*float64{
		EssentialSBM:                       in.SBM,
		raw(catalog.MorningSleepDuration):  in.SleepHours,
		raw(catalog.MorningGeneralFatigue): in.Fatigue,
		raw(catalog.MorningPain):           in.Pain,
		raw(catalog.PreSessionEnergy):      in.Energy,
		raw(catalog.PreSessionLegFeel):     in.LegFeel,
		raw(catalog.MorningHRV):            in.HRV,
		raw(catalog.MorningRestingHR):      in.RestingHR,
	}
	present := make(map[EssentialKind]bool)
	for k, v := range values {
		if v != nil {
			present[k] = true
		}
	}
	return present
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Evaluate computes the readiness of the day described by in.
func (e *Engine) Evaluate(in Inputs) Result {
	pillars := []Pillar{
		e.wellbeingPillar(in),
		e.preSessionPillar(in),
		e.physiologicalPillar(in),
	}

	var weighted, totalWeight float64
	for i := range pillars {
		if pillars[i].Score == nil {
			continue
		}
		pillars[i].Included = true
		weighted += *pillars[i].Score * pillars[i].Weight
		totalWeight += pillars[i].Weight
	}

	result := Result{
		Pillars: pillars,
	}

	present := in.present()
	for _, k := range Essentials {
		if present[k] {
			result.Present = append(result.Present, k)
		} else {
			result.Missing = append(result.Missing, k)
		}
	}
	result.ConfidenceIndex = int(math.Round(100 * float64(len(result.Present)) / float64(len(Essentials))))

	if totalWeight == 0 {
		return result
	}

	score := int(math.Round(weighted / totalWeight))
	if in.Pain != nil && *in.Pain >= e.cfg.SafetyCapPainThreshold && score > e.cfg.SafetyCapCeiling {
		score = e.cfg.SafetyCapCeiling
		result.SafetyCapped = true
	}
	result.Score = &score

	return result
}

// EvaluateSnapshot collects the day's inputs from the snapshot and evaluates them.
func (e *Engine) EvaluateSnapshot(s measurements.Snapshot, day time.Time) Result {
	result := e.Evaluate(InputsFromSnapshot(s, day, e.cfg))
	result.Date = measurements.Day(day)
	return result
}

func (e *Engine) wellbeingPillar(in Inputs) Pillar {
	p := Pillar{
		Name:   PillarWellbeing,
		Weight: e.cfg.WeightWellbeing,
		Inputs: []EssentialKind{EssentialSBM},
	}
	if in.SBM != nil {
		p.Score = calc.Float(calc.Clamp(*in.SBM*10, 0, 100))
	}
	return p
}

func (e *Engine) preSessionPillar(in Inputs) Pillar {
	p := Pillar{
		Name:   PillarPreSession,
		Weight: e.cfg.WeightPreSession,
		Inputs: []EssentialKind{raw(catalog.PreSessionEnergy), raw(catalog.PreSessionLegFeel)},
	}
	var values []float64
	if in.Energy != nil {
		values = append(values, *in.Energy)
	}
	if in.LegFeel != nil {
		values = append(values, *in.LegFeel)
	}
	if mean := calc.Mean(values); mean != nil {
		p.Score = calc.Float(*mean * 10)
	}
	return p
}

func (e *Engine) physiologicalPillar(in Inputs) Pillar {
	p := Pillar{
		Name:   PillarPhysiological,
		Weight: e.cfg.WeightPhysiological,
		Inputs: []EssentialKind{raw(catalog.MorningHRV)},
	}
	if in.HRV == nil {
		return p
	}
	deviation := HRVDeviationPercent(*in.HRV, in.HRVBaseline)
	if deviation == nil {
		return p
	}
	p.Score = calc.Float(calc.Clamp(100+*deviation*e.cfg.HRVPointsPerPercent, 0, 100))
	return p
}

// HRVDeviationPercent is today's HRV deviation from the baseline mean, in percent.
// Nil without a usable baseline.
func HRVDeviationPercent(today float64, baseline []float64) *float64 {
	mean := calc.Mean(baseline)
	if mean == nil || *mean == 0 {
		return nil
	}
	return calc.Float((today - *mean) / *mean * 100)
}
