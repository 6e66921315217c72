package catalog

import (
	"fmt"
	"sort"
)

// CalculatedKind identifies a metric derived by the calculation engine.
type CalculatedKind string

const (
	SBM                   CalculatedKind = "SBM"
	SBMProportional       CalculatedKind = "SBM_PROPORTIONAL"
	CIH                   CalculatedKind = "CIH"
	CIHNormalized         CalculatedKind = "CIH_NORMALIZED"
	CPH                   CalculatedKind = "CPH"
	RatioCIHCPH           CalculatedKind = "RATIO_CIH_CPH"
	RatioCIHNormalizedCPH CalculatedKind = "RATIO_CIH_NORMALIZED_CPH"
)

func (k CalculatedKind) String() string {
	return string(k)
}

// Weekly reports whether the kind is keyed on the first day of its ISO week.
func (k CalculatedKind) Weekly() bool {
	switch k {
	case CIH, CIHNormalized, CPH, RatioCIHCPH, RatioCIHNormalizedCPH:
		return true
	default:
		return false
	}
}

var calculated = map[CalculatedKind]Descriptor{
	SBM: {
		Label:        "Score de bien-être matinal",
		ShortLabel:   "SBM",
		Description:  "Synthèse pondérée sommeil, fatigue, douleur, humeur et durée de sommeil",
		ScaleMax:     scale(10),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendGood,
		Decimals:     1,
	},
	SBMProportional: {
		Label:        "Score de bien-être matinal (0-40)",
		ShortLabel:   "SBM/40",
		Description:  "Somme des quatre indicateurs du matin ramenée sur 40",
		ScaleMax:     scale(40),
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendGood,
		Decimals:     2,
	},
	CIH: {
		Label:        "Charge interne hebdomadaire",
		ShortLabel:   "CIH",
		Description:  "Somme des RPE de séance de la semaine",
		Unit:         "UA",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendNeutral,
		Decimals:     1,
	},
	CIHNormalized: {
		Label:        "Charge interne hebdomadaire normalisée",
		ShortLabel:   "CIH norm.",
		Description:  "CIH divisée par le nombre de jours d'entraînement",
		Unit:         "UA",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendNeutral,
		Decimals:     2,
	},
	CPH: {
		Label:        "Charge planifiée hebdomadaire",
		ShortLabel:   "CPH",
		Description:  "Volume planifié x intensité planifiée / 10",
		Unit:         "UA",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendNeutral,
		Decimals:     1,
	},
	RatioCIHCPH: {
		Label:        "Ratio CIH / CPH",
		ShortLabel:   "CIH/CPH",
		Description:  "Charge réalisée rapportée à la charge planifiée",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendNeutral,
		Decimals:     2,
	},
	RatioCIHNormalizedCPH: {
		Label:        "Ratio CIH normalisée / CPH",
		ShortLabel:   "CIHn/CPH",
		Description:  "Charge réalisée normalisée rapportée à la charge planifiée",
		ValueColumn:  ValueNumeric,
		OptimalTrend: TrendNeutral,
		Decimals:     2,
	},
}

func LookupCalculated(kind CalculatedKind) (Descriptor, error) {
	d, ok := calculated[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	d.Kind = string(kind)
	return d, nil
}

func ParseCalculatedKind(s string) (CalculatedKind, error) {
	kind := CalculatedKind(s)
	if _, ok := calculated[kind]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
	return kind, nil
}

func CalculatedKinds() []CalculatedKind {
	kinds := make([]CalculatedKind, 0, len(calculated))
	for k := range calculated {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})
	return kinds
}

// Describe resolves an identifier that may name either a raw or a calculated kind.
func Describe(id string) (Descriptor, error) {
	if d, err := Lookup(MetricKind(id)); err == nil {
		return d, nil
	}
	if d, err := LookupCalculated(CalculatedKind(id)); err == nil {
		return d, nil
	}
	return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownKind, id)
}
