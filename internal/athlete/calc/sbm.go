package calc

// SBMInputs are the morning answers of a single day. Nil means not answered.
type SBMInputs struct {
	SleepQuality   *float64 `json:"sleepQuality"`
	GeneralFatigue *float64 `json:"generalFatigue"`
	Pain           *float64 `json:"pain"`
	MoodWellbeing  *float64 `json:"moodWellbeing"`
	// SleepDurationHours is only used by SBMWeighted.
	SleepDurationHours *float64 `json:"sleepDurationHours"`
}

func (in SBMInputs) baseCount() int {
	n := 0
	for _, v := range []*float64{in.SleepQuality, in.GeneralFatigue, in.Pain, in.MoodWellbeing} {
		if v != nil {
			n++
		}
	}
	return n
}

const (
	weightSleepQuality  = 1.5
	weightMood          = 1.5
	weightFatigue       = 1.0
	weightPain          = 1.0
	weightSleepDuration = 1.0

	scaleMax = 10.0
)

// SleepDurationScore maps hours slept to 0..10, 4h or less being 0 and 8h or more 10.
func SleepDurationScore(hours float64) float64 {
	return Clamp((hours-4)*2.5, 0, scaleMax)
}

// SleepDurationPenalty is subtracted from the weighted SBM after averaging.
func SleepDurationPenalty(hours float64) float64 {
	switch {
	case hours < 5:
		return 4.0
	case hours < 6:
		return 2.0
	case hours < 7:
		return 1.0
	case hours < 8:
		return 0.5
	default:
		return 0
	}
}

// SBMWeighted is the morning wellbeing score used by the daily calculation (0-10 scale).
// Weights normalize over the answered inputs; nil when nothing was answered.
func SBMWeighted(in SBMInputs) *float64 {
	var sum, totalWeight float64
	add := func(score, weight float64) {
		sum += score * weight
		totalWeight += weight
	}

	if in.SleepQuality != nil {
		add(*in.SleepQuality, weightSleepQuality)
	}
	if in.GeneralFatigue != nil {
		add(scaleMax-*in.GeneralFatigue, weightFatigue)
	}
	if in.Pain != nil {
		add(scaleMax-*in.Pain, weightPain)
	}
	if in.MoodWellbeing != nil {
		add(*in.MoodWellbeing, weightMood)
	}
	if in.SleepDurationHours != nil {
		add(SleepDurationScore(*in.SleepDurationHours), weightSleepDuration)
	}

	if totalWeight == 0 {
		return nil
	}

	score := sum / totalWeight
	if in.SleepDurationHours != nil {
		score -= SleepDurationPenalty(*in.SleepDurationHours)
	}

	return Float(Round(score, 1))
}

// SBMProportional is the 0-40 score used by the statistics views. It only looks at the
// four base inputs and rescales their sum to what the answered inputs could reach.
func SBMProportional(in SBMInputs) *float64 {
	present := in.baseCount()
	if present == 0 {
		return nil
	}

	var sum float64
	if in.SleepQuality != nil {
		sum += *in.SleepQuality
	}
	if in.GeneralFatigue != nil {
		sum += scaleMax - *in.GeneralFatigue
	}
	if in.Pain != nil {
		sum += scaleMax - *in.Pain
	}
	if in.MoodWellbeing != nil {
		sum += *in.MoodWellbeing
	}

	maxPossible := scaleMax * float64(present)
	return Float(Round(sum*(40/maxPossible), 2))
}
