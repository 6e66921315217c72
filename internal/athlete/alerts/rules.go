package alerts

import (
	"fmt"

	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/cycle"
	"github.com/2beens/athletemonitor/internal/athlete/readiness"
	"github.com/2beens/athletemonitor/internal/athlete/trends"
)

type Config struct {
	CriticalSleepHours float64 `toml:"critical_sleep_hours"`
	LowSleepHours      float64 `toml:"low_sleep_hours"`

	SleepTrendDays         int     `toml:"sleep_trend_days"`
	SleepTrendMinPoints    int     `toml:"sleep_trend_min_points"`
	SleepTrendWarningHours float64 `toml:"sleep_trend_warning_hours"`
	SleepTrendDangerHours  float64 `toml:"sleep_trend_danger_hours"`

	ACWRWarning float64 `toml:"acwr_warning"`
	ACWRDanger  float64 `toml:"acwr_danger"`

	PlannedLoadHighRatio float64 `toml:"planned_load_high_ratio"`
	PlannedLoadLowRatio  float64 `toml:"planned_load_low_ratio"`

	PhaseFatigueThreshold float64 `toml:"phase_fatigue_threshold"`

	PainWarning float64 `toml:"pain_warning"`
	PainDanger  float64 `toml:"pain_danger"`

	HRVBaselineDays   int     `toml:"hrv_baseline_days"`
	HRVWarningPercent float64 `toml:"hrv_warning_percent"`
	HRVDangerPercent  float64 `toml:"hrv_danger_percent"`

	LowWellbeingSBM float64 `toml:"low_wellbeing_sbm"`

	ReadinessHigh int `toml:"readiness_high"`
	ReadinessLow  int `toml:"readiness_low"`

	MissingDataDays int `toml:"missing_data_days"`
}

func DefaultConfig() Config {
	return Config{
		CriticalSleepHours:     5,
		LowSleepHours:          6,
		SleepTrendDays:         7,
		SleepTrendMinPoints:    3,
		SleepTrendWarningHours: 7,
		SleepTrendDangerHours:  6,
		ACWRWarning:            1.3,
		ACWRDanger:             1.5,
		PlannedLoadHighRatio:   1.2,
		PlannedLoadLowRatio:    0.8,
		PhaseFatigueThreshold:  7,
		PainWarning:            5,
		PainDanger:             7,
		HRVBaselineDays:        7,
		HRVWarningPercent:      -10,
		HRVDangerPercent:       -20,
		LowWellbeingSBM:        5,
		ReadinessHigh:          80,
		ReadinessLow:           40,
		MissingDataDays:        3,
	}
}

var morningKinds = []catalog.MetricKind{
	catalog.MorningSleepQuality,
	catalog.MorningSleepDuration,
	catalog.MorningGeneralFatigue,
	catalog.MorningPain,
	catalog.MorningMoodWellbeing,
	catalog.MorningHRV,
	catalog.MorningRestingHR,
}

func sleepDurationRule(cfg Config, in Input) []Alert {
	hours := in.Snapshot.ValueOn(catalog.MorningSleepDuration, in.AsOf)
	if hours == nil {
		return nil
	}
	switch {
	case *hours < cfg.CriticalSleepHours:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("Nuit très courte (%.1f h) : récupération compromise, alléger la séance", *hours),
		}}
	case *hours < cfg.LowSleepHours:
		return []Alert{{
			Type:    TypeWarning,
			Message: fmt.Sprintf("Nuit courte (%.1f h) : surveiller la fatigue", *hours),
		}}
	}
	return nil
}

func sleepDurationTrendRule(cfg Config, in Input) []Alert {
	points := in.Snapshot.Window(catalog.MorningSleepDuration, in.AsOf, cfg.SleepTrendDays, true)
	if len(points) < cfg.SleepTrendMinPoints {
		return nil
	}
	avg := trends.RollingAverage(points, in.AsOf, cfg.SleepTrendDays)
	if avg == nil {
		return nil
	}
	switch {
	case *avg < cfg.SleepTrendDangerHours:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("Dette de sommeil : %.1f h en moyenne sur %d jours", *avg, cfg.SleepTrendDays),
		}}
	case *avg < cfg.SleepTrendWarningHours:
		return []Alert{{
			Type:    TypeWarning,
			Message: fmt.Sprintf("Sommeil insuffisant : %.1f h en moyenne sur %d jours", *avg, cfg.SleepTrendDays),
		}}
	}
	return nil
}

func acwrRule(cfg Config, in Input) []Alert {
	var sessions []calc.Session
	for _, m := range in.Snapshot.Measurements {
		if m.Kind != catalog.PostSessionRPE || m.Value == nil {
			continue
		}
		sessions = append(sessions, calc.Session{Date: m.Date, RPE: *m.Value})
	}
	acwr := calc.ACWR(sessions, in.AsOf)
	if acwr == nil {
		return nil
	}
	switch {
	case *acwr > cfg.ACWRDanger:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("Ratio charge aiguë / chronique de %.2f : risque de blessure élevé", *acwr),
		}}
	case *acwr > cfg.ACWRWarning:
		return []Alert{{
			Type:    TypeWarning,
			Message: fmt.Sprintf("Ratio charge aiguë / chronique de %.2f : hausse rapide de la charge", *acwr),
		}}
	}
	return nil
}

func plannedLoadRule(cfg Config, in Input) []Alert {
	monday, _ := calc.WeekBounds(in.AsOf)
	ratio := in.Snapshot.CalculatedOn(catalog.RatioCIHCPH, monday)
	if ratio == nil {
		return nil
	}
	switch {
	case *ratio > cfg.PlannedLoadHighRatio:
		return []Alert{{
			Type:    TypeWarning,
			Message: fmt.Sprintf("Charge réalisée supérieure à la charge prévue (ratio %.2f)", *ratio),
		}}
	case *ratio < cfg.PlannedLoadLowRatio:
		return []Alert{{
			Type:    TypeInfo,
			Message: fmt.Sprintf("Charge réalisée inférieure à la charge prévue (ratio %.2f)", *ratio),
		}}
	}
	return nil
}

func menstrualAnomalyRule(_ Config, in Input) []Alert {
	if in.Cycle == nil {
		return nil
	}
	switch in.Cycle.Phase {
	case cycle.PhaseAmenorrhea:
		return []Alert{{
			Type:    TypeDanger,
			Message: "Aménorrhée suspectée : consultation médicale recommandée (" + in.Cycle.Reason + ")",
		}}
	case cycle.PhaseOligomenorrhea:
		return []Alert{{
			Type:    TypeDanger,
			Message: "Cycle irrégulier ou long : à signaler au staff médical (" + in.Cycle.Reason + ")",
		}}
	case cycle.PhaseDelayed:
		return []Alert{{
			Type:    TypeWarning,
			Message: "Retard de règles ou cycle long : " + in.Cycle.Reason,
		}}
	}
	return nil
}

func cyclePhaseFatigueRule(cfg Config, in Input) []Alert {
	if in.Cycle == nil || in.Cycle.Phase != cycle.PhaseMenstrual {
		return nil
	}
	fatigue := in.Snapshot.ValueOn(catalog.MorningGeneralFatigue, in.AsOf)
	if fatigue == nil || *fatigue < cfg.PhaseFatigueThreshold {
		return nil
	}
	return []Alert{{
		Type:    TypeInfo,
		Message: fmt.Sprintf("Fatigue élevée (%.0f/10) pendant les règles : adapter l'intensité si besoin", *fatigue),
	}}
}

func painRule(cfg Config, in Input) []Alert {
	pain := in.Snapshot.ValueOn(catalog.MorningPain, in.AsOf)
	if pain == nil {
		return nil
	}
	where := ""
	if location := in.Snapshot.NoteOn(catalog.MorningPainLocation, in.AsOf); location != "" {
		where = " (" + location + ")"
	}
	switch {
	case *pain >= cfg.PainDanger:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("Douleur importante %.0f/10%s : avis médical conseillé", *pain, where),
		}}
	case *pain >= cfg.PainWarning:
		return []Alert{{
			Type:    TypeWarning,
			Message: fmt.Sprintf("Douleur modérée %.0f/10%s : à surveiller", *pain, where),
		}}
	}
	return nil
}

func hrvDropRule(cfg Config, in Input) []Alert {
	today := in.Snapshot.ValueOn(catalog.MorningHRV, in.AsOf)
	if today == nil {
		return nil
	}
	var baseline []float64
	for _, p := range in.Snapshot.Window(catalog.MorningHRV, in.AsOf, cfg.HRVBaselineDays, false) {
		baseline = append(baseline, p.Value)
	}
	deviation := readiness.HRVDeviationPercent(*today, baseline)
	if deviation == nil {
		return nil
	}
	switch {
	case *deviation <= cfg.HRVDangerPercent:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("VFC en forte baisse (%.0f %%) par rapport à la moyenne des %d derniers jours", *deviation, cfg.HRVBaselineDays),
		}}
	case *deviation <= cfg.HRVWarningPercent:
		return []Alert{{
			Type:    TypeWarning,
			Message: fmt.Sprintf("VFC en baisse (%.0f %%) par rapport à la moyenne des %d derniers jours", *deviation, cfg.HRVBaselineDays),
		}}
	}
	return nil
}

func wellbeingRule(cfg Config, in Input) []Alert {
	sbm := in.Snapshot.CalculatedOn(catalog.SBM, in.AsOf)
	if sbm == nil {
		sbm = calc.SBMWeighted(calc.SBMInputs{
			SleepQuality:       in.Snapshot.ValueOn(catalog.MorningSleepQuality, in.AsOf),
			GeneralFatigue:     in.Snapshot.ValueOn(catalog.MorningGeneralFatigue, in.AsOf),
			Pain:               in.Snapshot.ValueOn(catalog.MorningPain, in.AsOf),
			MoodWellbeing:      in.Snapshot.ValueOn(catalog.MorningMoodWellbeing, in.AsOf),
			SleepDurationHours: in.Snapshot.ValueOn(catalog.MorningSleepDuration, in.AsOf),
		})
	}
	if sbm == nil || *sbm >= cfg.LowWellbeingSBM {
		return nil
	}
	return []Alert{{
		Type:    TypeWarning,
		Message: fmt.Sprintf("Score de bien-être matinal bas (%.1f/10)", *sbm),
	}}
}

func readinessRule(cfg Config, in Input) []Alert {
	if in.Readiness == nil || in.Readiness.Score == nil {
		return nil
	}
	score := *in.Readiness.Score
	switch {
	case in.Readiness.SafetyCapped:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("Douleur sévère : forme du jour plafonnée à %d/100", score),
		}}
	case score < cfg.ReadinessLow:
		return []Alert{{
			Type:    TypeDanger,
			Message: fmt.Sprintf("Forme du jour faible (%d/100) : privilégier la récupération", score),
		}}
	case score >= cfg.ReadinessHigh:
		return []Alert{{
			Type:    TypeSuccess,
			Message: fmt.Sprintf("Bonne forme du jour (%d/100)", score),
		}}
	}
	return nil
}

func missingDataRule(cfg Config, in Input) []Alert {
	for i := 0; i < cfg.MissingDataDays; i++ {
		if in.Snapshot.HasAny(in.AsOf.AddDate(0, 0, -i)) {
			if in.Snapshot.HasAny(in.AsOf, morningKinds...) {
				return nil
			}
			return []Alert{{
				Type:    TypeInfo,
				Message: "Questionnaire du matin non renseigné aujourd'hui",
			}}
		}
	}
	return []Alert{{
		Type:    TypeWarning,
		Message: fmt.Sprintf("Aucune donnée saisie depuis %d jours", cfg.MissingDataDays),
	}}
}
