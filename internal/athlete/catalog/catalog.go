package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownKind = errors.New("unknown metric kind")

// MetricKind identifies a raw, self-reported measurement.
type MetricKind string

const (
	MorningSleepQuality   MetricKind = "MORNING_SLEEP_QUALITY"
	MorningSleepDuration  MetricKind = "MORNING_SLEEP_DURATION"
	MorningGeneralFatigue MetricKind = "MORNING_GENERAL_FATIGUE"
	MorningPain           MetricKind = "MORNING_PAIN"
	MorningPainLocation   MetricKind = "MORNING_PAIN_LOCATION"
	MorningMoodWellbeing  MetricKind = "MORNING_MOOD_WELLBEING"
	MorningHRV            MetricKind = "MORNING_HRV"
	MorningRestingHR      MetricKind = "MORNING_RESTING_HR"

	PreSessionEnergy  MetricKind = "PRE_SESSION_ENERGY"
	PreSessionLegFeel MetricKind = "PRE_SESSION_LEG_FEEL"

	PostSessionRPE         MetricKind = "POST_SESSION_SESSION_RPE"
	PostSessionPerformance MetricKind = "POST_SESSION_PERFORMANCE_FEELING"

	MonthlyWeight      MetricKind = "MONTHLY_WEIGHT"
	MonthlyMenstrualJ1 MetricKind = "MONTHLY_MENSTRUAL_CYCLE_J1"
	InjuryNote         MetricKind = "INJURY_NOTE"
)

func (k MetricKind) String() string {
	return string(k)
}

// TrendDirection tells whether an increase of the metric is good news.
type TrendDirection string

const (
	TrendGood    TrendDirection = "good"
	TrendBad     TrendDirection = "bad"
	TrendNeutral TrendDirection = "neutral"
)

// ValueColumn is the storage column a measurement value lives in.
type ValueColumn string

const (
	ValueNumeric ValueColumn = "numeric"
	ValueText    ValueColumn = "text"
)

type Descriptor struct {
	Kind         string         `json:"kind"`
	Label        string         `json:"label"`
	ShortLabel   string         `json:"shortLabel"`
	Description  string         `json:"description"`
	Unit         string         `json:"unit,omitempty"`
	ScaleMax     *float64       `json:"scaleMax"`
	ValueColumn  ValueColumn    `json:"valueColumn"`
	OptimalTrend TrendDirection `json:"optimalTrend"`

	// SessionScoped kinds may be recorded several times on the same day.
	SessionScoped bool `json:"sessionScoped"`

	// Decimals is the rounding precision applied before storage or output.
	Decimals int `json:"decimals"`
}

// InScale reports whether v lies within the declared 0..ScaleMax range.
// Unscaled descriptors accept any non-negative value.
func (d Descriptor) InScale(v float64) bool {
	if v < 0 {
		return false
	}
	if d.ScaleMax == nil {
		return true
	}
	return v <= *d.ScaleMax
}

func (d Descriptor) IsNumeric() bool {
	return d.ValueColumn == ValueNumeric
}

func scale(max float64) *float64 {
	return &max
}

var metrics = map[MetricKind]Descriptor{
	MorningSleepQuality: {
		Label:        "Qualité du sommeil",
		ShortLabel:   "Sommeil",
		Description:  "Qualité perçue de la nuit (0 = très mauvaise, 10 = excellente)",
		ScaleMax:     scale(10),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendGood,
		Decimals:     1,
	},
	MorningSleepDuration: {
		Label:        "Durée du sommeil",
		ShortLabel:   "Durée",
		Description:  "Nombre d'heures dormies",
		Unit:         "h",
		ScaleMax:     scale(24),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendGood,
		Decimals:     1,
	},
	MorningGeneralFatigue: {
		Label:        "Fatigue générale",
		ShortLabel:   "Fatigue",
		Description:  "Fatigue ressentie au réveil (0 = aucune, 10 = extrême)",
		ScaleMax:     scale(10),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendBad,
		Decimals:     1,
	},
	MorningPain: {
		Label:        "Douleur",
		ShortLabel:   "Douleur",
		Description:  "Intensité de la douleur (0 = aucune, 10 = insupportable)",
		ScaleMax:     scale(10),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendBad,
		Decimals:     1,
	},
	MorningPainLocation: {
		Label:        "Localisation de la douleur",
		ShortLabel:   "Zone",
		Description:  "Zone douloureuse, texte libre",
		ValueColumn:  ValueText,
		OptimalTrend: TrendNeutral,
	},
	MorningMoodWellbeing: {
		Label:        "Humeur / bien-être",
		ShortLabel:   "Humeur",
		Description:  "État d'esprit général (0 = très bas, 10 = excellent)",
		ScaleMax:     scale(10),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendGood,
		Decimals:     1,
	},
	MorningHRV: {
		Label:        "Variabilité de la fréquence cardiaque",
		ShortLabel:   "VFC",
		Description:  "RMSSD mesurée au réveil",
		Unit:         "ms",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendGood,
		Decimals:     0,
	},
	MorningRestingHR: {
		Label:        "Fréquence cardiaque de repos",
		ShortLabel:   "FC repos",
		Description:  "Fréquence cardiaque au réveil",
		Unit:         "bpm",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendBad,
		Decimals:     0,
	},
	PreSessionEnergy: {
		Label:         "Niveau d'énergie",
		ShortLabel:    "Énergie",
		Description:   "Énergie avant la séance (0 = vide, 10 = pleine forme)",
		ScaleMax:      scale(10),
		ValueColumn:   ValueNumeric,
		OptimalTrend:  TrendGood,
		SessionScoped: true,
		Decimals:      1,
	},
	PreSessionLegFeel: {
		Label:         "Sensations jambes",
		ShortLabel:    "Jambes",
		Description:   "Sensations dans les jambes avant la séance (0 = lourdes, 10 = légères)",
		ScaleMax:      scale(10),
		ValueColumn:   ValueNumeric,
		OptimalTrend:  TrendGood,
		SessionScoped: true,
		Decimals:      1,
	},
	PostSessionRPE: {
		Label:         "RPE de séance",
		ShortLabel:    "RPE",
		Description:   "Charge interne perçue de la séance",
		ScaleMax:      scale(10),
		ValueColumn:   ValueNumeric,
		OptimalTrend:  TrendNeutral,
		SessionScoped: true,
		Decimals:      1,
	},
	PostSessionPerformance: {
		Label:         "Sensation de performance",
		ShortLabel:    "Perf",
		Description:   "Qualité perçue de la performance réalisée",
		ScaleMax:      scale(10),
		ValueColumn:   ValueNumeric,
		OptimalTrend:  TrendGood,
		SessionScoped: true,
		Decimals:      1,
	},
	MonthlyWeight: {
		Label:        "Poids",
		ShortLabel:   "Poids",
		Description:  "Poids de corps",
		Unit:         "kg",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendNeutral,
		Decimals:     1,
	},
	MonthlyMenstrualJ1: {
		Label:        "Premier jour des règles (J1)",
		ShortLabel:   "J1",
		Description:  "Date du premier jour des dernières règles",
		ValueColumn:  ValueText,
		OptimalTrend: TrendNeutral,
	},
	InjuryNote: {
		Label:        "Blessure",
		ShortLabel:   "Blessure",
		Description:  "Description libre d'une blessure",
		ValueColumn:  ValueText,
		OptimalTrend: TrendNeutral,
	},
}

// Lookup returns the descriptor of a raw metric kind.
func Lookup(kind MetricKind) (Descriptor, error) {
	d, ok := metrics[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	d.Kind = string(kind)
	return d, nil
}

func ParseMetricKind(s string) (MetricKind, error) {
	kind := MetricKind(s)
	if _, ok := metrics[kind]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
	return kind, nil
}

// MetricKinds returns all raw kinds, sorted by identifier.
func MetricKinds() []MetricKind {
	kinds := make([]MetricKind, 0, len(metrics))
	for k := range metrics {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})
	return kinds
}
