package cycle

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
	"github.com/2beens/athletemonitor/internal/athlete/subjects"
)

type Phase string

const (
	PhaseMenstrual      Phase = "Menstruelle"
	PhaseFollicular     Phase = "Folliculaire"
	PhaseOvulatory      Phase = "Ovulatoire"
	PhaseLuteal         Phase = "Lutéale"
	PhaseOligomenorrhea Phase = "Oligoménorrhée"
	PhaseAmenorrhea     Phase = "Aménorrhée"
	PhaseDelayed        Phase = "Potentiel retard ou cycle long"
	PhaseUnknown        Phase = "Inconnue"
)

// Anomaly reports whether the phase is an irregularity rather than a normal cycle phase.
func (p Phase) Anomaly() bool {
	return p == PhaseOligomenorrhea || p == PhaseAmenorrhea || p == PhaseDelayed
}

type Config struct {
	// average above this many days is oligomenorrhea
	OligomenorrheaDays float64 `toml:"oligomenorrhea_days"`

	// amenorrhea when the cycle day exceeds max(avg * factor, floor)
	AmenorrheaFactor    float64 `toml:"amenorrhea_factor"`
	AmenorrheaFloorDays int     `toml:"amenorrhea_floor_days"`

	// delay once the cycle day exceeds avg + tolerance
	DelayToleranceDays float64 `toml:"delay_tolerance_days"`

	MenstrualDays       int `toml:"menstrual_days"`
	OvulationWindowDays int `toml:"ovulation_window_days"`
	MaxCyclesForAverage int `toml:"max_cycles_for_average"`
}

func DefaultConfig() Config {
	return Config{
		OligomenorrheaDays:  35,
		AmenorrheaFactor:    2.5,
		AmenorrheaFloorDays: 90,
		DelayToleranceDays:  3,
		MenstrualDays:       5,
		OvulationWindowDays: 3,
		MaxCyclesForAverage: 6,
	}
}

type Result struct {
	Phase           Phase      `json:"phase"`
	DaysInPhase     int        `json:"daysInPhase"`
	CycleLengthAvg  *float64   `json:"cycleLengthAvg"`
	LastPeriodStart *time.Time `json:"lastPeriodStart"`
	Reason          string     `json:"reason,omitempty"`
}

// Applicable reports whether cycle tracking applies to the subject.
// Every menstrual computation and alert is gated on it.
func Applicable(s subjects.Subject) bool {
	return s.Gender == subjects.GenderFemale
}

// Infer derives the cycle phase on asOf from the subject's J1 history.
// Dates may come in any order; events after asOf are ignored.
func Infer(j1Dates []time.Time, asOf time.Time, cfg Config) Result {
	today := measurements.Day(asOf)
	starts := distinctDays(j1Dates, today)

	if len(starts) == 0 {
		return Result{
			Phase:  PhaseUnknown,
			Reason: "aucun premier jour de règles (J1) enregistré",
		}
	}

	last := starts[0]
	result := Result{
		Phase:           PhaseUnknown,
		DaysInPhase:     measurements.DaysBetween(last, today) + 1,
		LastPeriodStart: &last,
	}

	if len(starts) < 2 {
		result.Reason = "au moins deux J1 sont nécessaires pour estimer la durée du cycle"
		return result
	}

	avg := averageGap(starts, cfg.MaxCyclesForAverage)
	result.CycleLengthAvg = calc.Float(calc.Round(avg, 1))
	day := float64(result.DaysInPhase)

	amenorrheaDays := math.Max(avg*cfg.AmenorrheaFactor, float64(cfg.AmenorrheaFloorDays))
	switch {
	case avg > cfg.OligomenorrheaDays:
		result.Phase = PhaseOligomenorrhea
		result.Reason = fmt.Sprintf("durée moyenne du cycle de %.1f jours, hors de la plage normale", avg)
	case day > amenorrheaDays:
		result.Phase = PhaseAmenorrhea
		result.Reason = fmt.Sprintf("absence de règles depuis %d jours", result.DaysInPhase-1)
	case day > avg+cfg.DelayToleranceDays:
		result.Phase = PhaseDelayed
		result.Reason = fmt.Sprintf("jour %d du cycle pour une durée moyenne de %.1f jours", result.DaysInPhase, avg)
	default:
		result.Phase = cfg.phaseOfDay(result.DaysInPhase, avg)
	}

	return result
}

func (cfg Config) phaseOfDay(day int, cycleLength float64) Phase {
	ovulationStart := int(math.Floor(cycleLength / 2))
	switch {
	case day <= cfg.MenstrualDays:
		return PhaseMenstrual
	case day < ovulationStart:
		return PhaseFollicular
	case day < ovulationStart+cfg.OvulationWindowDays:
		return PhaseOvulatory
	default:
		return PhaseLuteal
	}
}

// distinctDays returns the J1 days on or before today, most recent first.
func distinctDays(dates []time.Time, today time.Time) []time.Time {
	seen := make(map[string]bool)
	var days []time.Time
	for _, d := range dates {
		day := measurements.Day(d)
		if day.After(today) {
			continue
		}
		key := measurements.DayKey(day)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}

// averageGap is the mean of the most recent gaps between consecutive starts.
func averageGap(starts []time.Time, maxCycles int) float64 {
	gaps := make([]int, 0, len(starts)-1)
	for i := 0; i+1 < len(starts); i++ {
		if maxCycles > 0 && len(gaps) == maxCycles {
			break
		}
		gaps = append(gaps, measurements.DaysBetween(starts[i+1], starts[i]))
	}

	var total int
	for _, g := range gaps {
		total += g
	}
	return float64(total) / float64(len(gaps))
}
