package cycle

import (
	"testing"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/subjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

// history returns J1 dates placing asOf on the given cycle day, preceded by
// count-1 regular cycles of the given length.
func history(cycleDay, cycleLength, count int) []time.Time {
	last := asOf.AddDate(0, 0, -(cycleDay - 1))
	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, last.AddDate(0, 0, -i*cycleLength))
	}
	return dates
}

func TestInfer_PhaseBoundaries(t *testing.T) {
	testCases := []struct {
		day      int
		expected Phase
	}{
		{day: 1, expected: PhaseMenstrual},
		{day: 3, expected: PhaseMenstrual},
		{day: 5, expected: PhaseMenstrual},
		{day: 6, expected: PhaseFollicular},
		{day: 13, expected: PhaseFollicular},
		{day: 14, expected: PhaseOvulatory},
		{day: 15, expected: PhaseOvulatory},
		{day: 16, expected: PhaseOvulatory},
		{day: 17, expected: PhaseLuteal},
		{day: 22, expected: PhaseLuteal},
		{day: 28, expected: PhaseLuteal},
		{day: 31, expected: PhaseLuteal},
	}

	cfg := DefaultConfig()
	for _, tc := range testCases {
		res := Infer(history(tc.day, 28, 3), asOf, cfg)
		assert.Equal(t, tc.expected, res.Phase, "day %d", tc.day)
		assert.Equal(t, tc.day, res.DaysInPhase)
		require.NotNil(t, res.CycleLengthAvg)
		assert.Equal(t, 28.0, *res.CycleLengthAvg)
	}
}

func TestInfer_Anomalies(t *testing.T) {
	cfg := DefaultConfig()

	res := Infer(history(10, 40, 2), asOf, cfg)
	assert.Equal(t, PhaseOligomenorrhea, res.Phase)
	assert.Contains(t, res.Reason, "hors de la plage normale")
	assert.True(t, res.Phase.Anomaly())

	// last J1 31 days ago
	res = Infer(history(32, 28, 3), asOf, cfg)
	assert.Equal(t, PhaseDelayed, res.Phase)
	assert.Equal(t, 32, res.DaysInPhase)

	// last J1 100 days ago
	res = Infer(history(101, 28, 3), asOf, cfg)
	assert.Equal(t, PhaseAmenorrhea, res.Phase)
	assert.NotEmpty(t, res.Reason)

	// 90 days is the floor, day 90 is still only a delay
	res = Infer(history(90, 28, 3), asOf, cfg)
	assert.Equal(t, PhaseDelayed, res.Phase)
	res = Infer(history(91, 28, 3), asOf, cfg)
	assert.Equal(t, PhaseAmenorrhea, res.Phase)
}

func TestInfer_OligomenorrheaFirst(t *testing.T) {
	// long average wins over the amenorrhea check
	res := Infer(history(200, 36, 2), asOf, DefaultConfig())
	assert.Equal(t, PhaseOligomenorrhea, res.Phase)
}

func TestInfer_NotEnoughEvents(t *testing.T) {
	res := Infer(nil, asOf, DefaultConfig())
	assert.Equal(t, PhaseUnknown, res.Phase)
	assert.Nil(t, res.LastPeriodStart)
	assert.NotEmpty(t, res.Reason)

	res = Infer(history(4, 28, 1), asOf, DefaultConfig())
	assert.Equal(t, PhaseUnknown, res.Phase)
	assert.Nil(t, res.CycleLengthAvg)
	require.NotNil(t, res.LastPeriodStart)
	assert.Equal(t, 4, res.DaysInPhase)
	assert.NotEmpty(t, res.Reason)

	// the same day recorded twice is a single event
	dates := history(4, 28, 1)
	dates = append(dates, dates[0].Add(3*time.Hour))
	res = Infer(dates, asOf, DefaultConfig())
	assert.Equal(t, PhaseUnknown, res.Phase)
}

func TestInfer_IgnoresFutureEventsAndOrder(t *testing.T) {
	dates := history(15, 28, 4)
	shuffled := []time.Time{dates[2], asOf.AddDate(0, 0, 3), dates[0], dates[3], dates[1]}

	res := Infer(shuffled, asOf, DefaultConfig())
	assert.Equal(t, PhaseOvulatory, res.Phase)
	assert.Equal(t, 15, res.DaysInPhase)
	require.NotNil(t, res.LastPeriodStart)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *res.LastPeriodStart)
}

func TestInfer_AverageUsesRecentCycles(t *testing.T) {
	dates := history(8, 28, 7)
	// an old 60 day gap beyond the six most recent cycles
	dates = append(dates, dates[len(dates)-1].AddDate(0, 0, -60))

	res := Infer(dates, asOf, DefaultConfig())
	require.NotNil(t, res.CycleLengthAvg)
	assert.Equal(t, 28.0, *res.CycleLengthAvg)
	assert.Equal(t, PhaseFollicular, res.Phase)

	cfg := DefaultConfig()
	cfg.MaxCyclesForAverage = 0
	res = Infer(dates, asOf, cfg)
	require.NotNil(t, res.CycleLengthAvg)
	// (6 * 28 + 60) / 7
	assert.Equal(t, 32.6, *res.CycleLengthAvg)
}

func TestInfer_Deterministic(t *testing.T) {
	dates := history(20, 29, 5)
	assert.Equal(t, Infer(dates, asOf, DefaultConfig()), Infer(dates, asOf, DefaultConfig()))
}

func TestApplicable(t *testing.T) {
	assert.True(t, Applicable(subjects.Subject{Gender: subjects.GenderFemale}))
	assert.False(t, Applicable(subjects.Subject{Gender: subjects.GenderMale}))
	assert.False(t, Applicable(subjects.Subject{Gender: subjects.GenderUnknown}))
}

func TestRecommendationFor(t *testing.T) {
	r := RecommendationFor(PhaseFollicular)
	assert.Equal(t, StatusOptimal, r.Status)
	assert.Equal(t, "GO", r.Action)
	assert.Equal(t, PhaseFollicular, r.Phase)

	assert.Equal(t, StatusModerate, RecommendationFor(PhaseLuteal).Status)

	r = RecommendationFor(PhaseAmenorrhea)
	assert.Equal(t, StatusCritical, r.Status)
	assert.Contains(t, r.Action, "STOP")
	assert.Contains(t, r.Advice, "médical")

	r = RecommendationFor(Phase("autre"))
	assert.Equal(t, StatusModerate, r.Status)
	assert.Equal(t, Phase("autre"), r.Phase)
}
