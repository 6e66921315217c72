package readiness

import "strconv"

type Level string

const (
	LevelGreen   Level = "green"
	LevelYellow  Level = "yellow"
	LevelOrange  Level = "orange"
	LevelRed     Level = "red"
	LevelNeutral Level = "neutral"
)

const NotAvailable = "n/a"

type Status struct {
	Level           Level  `json:"level"`
	Message         string `json:"message"`
	Recommendation  string `json:"recommendation"`
	ReadinessScore  string `json:"readinessScore"`
	ConfidenceIndex int    `json:"confidenceIndex"`
}

// Status maps a readiness result to a qualitative level. Results without a score, or
// with too many missing essentials, are neutral whatever their score.
func (e *Engine) Status(r Result) Status {
	if r.Score == nil || len(r.Missing) > e.cfg.MaxMissingEssentials {
		return Status{
			Level:           LevelNeutral,
			Message:         "Données insuffisantes pour évaluer la forme du jour",
			Recommendation:  "Compléter le questionnaire du matin et d'avant séance",
			ReadinessScore:  NotAvailable,
			ConfidenceIndex: r.ConfidenceIndex,
		}
	}

	score := *r.Score
	status := Status{
		ReadinessScore:  strconv.Itoa(score),
		ConfidenceIndex: r.ConfidenceIndex,
	}
	switch {
	case score >= 80:
		status.Level = LevelGreen
		status.Message = "Prêt(e) à s'entraîner"
		status.Recommendation = "Séance prévue maintenue, intensité possible"
	case score >= 60:
		status.Level = LevelYellow
		status.Message = "Forme correcte"
		status.Recommendation = "Séance maintenue, surveiller les sensations"
	case score >= 40:
		status.Level = LevelOrange
		status.Message = "Forme diminuée"
		status.Recommendation = "Réduire le volume ou l'intensité de la séance"
	default:
		status.Level = LevelRed
		status.Message = "Récupération insuffisante"
		status.Recommendation = "Privilégier le repos ou une séance de récupération active"
	}

	if r.SafetyCapped {
		status.Recommendation = "Douleur sévère signalée : avis médical avant toute reprise"
	}

	return status
}
