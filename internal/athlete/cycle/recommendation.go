package cycle

type RecommendationStatus string

const (
	StatusOptimal  RecommendationStatus = "optimal"
	StatusModerate RecommendationStatus = "moderate"
	StatusCritical RecommendationStatus = "critical"
)

type Recommendation struct {
	Phase  Phase                `json:"phase"`
	Status RecommendationStatus `json:"status"`
	Action string               `json:"action"`
	Advice string               `json:"advice"`
}

var recommendations = map[Phase]Recommendation{
	PhaseMenstrual: {
		Status: StatusModerate,
		Action: "ADAPTER",
		Advice: "Écouter les sensations, privilégier l'hydratation et adapter l'intensité en cas de douleurs",
	},
	PhaseFollicular: {
		Status: StatusOptimal,
		Action: "GO",
		Advice: "Phase favorable aux charges élevées et au travail de force",
	},
	PhaseOvulatory: {
		Status: StatusOptimal,
		Action: "GO",
		Advice: "Bonne tolérance à l'effort, soigner l'échauffement et la stabilité articulaire",
	},
	PhaseLuteal: {
		Status: StatusModerate,
		Action: "SURVEILLER",
		Advice: "Récupération plus lente possible, surveiller la fatigue et le sommeil",
	},
	PhaseOligomenorrhea: {
		Status: StatusCritical,
		Action: "CONSULTER",
		Advice: "Cycles longs ou irréguliers : en parler au staff médical",
	},
	PhaseAmenorrhea: {
		Status: StatusCritical,
		Action: "STOP !",
		Advice: "Absence de règles prolongée : suivi médical indispensable avant de poursuivre les charges",
	},
	PhaseDelayed: {
		Status: StatusModerate,
		Action: "SURVEILLER",
		Advice: "Retard par rapport au cycle habituel : rester attentive et le signaler si cela persiste",
	},
	PhaseUnknown: {
		Status: StatusModerate,
		Action: "RENSEIGNER",
		Advice: "Renseigner les dates de début de règles (J1) pour suivre le cycle",
	},
}

// RecommendationFor returns the training advice attached to a phase.
func RecommendationFor(phase Phase) Recommendation {
	r, ok := recommendations[phase]
	if !ok {
		r = recommendations[PhaseUnknown]
	}
	r.Phase = phase
	return r
}
