package calc_test

import (
	"testing"

	"github.com/2beens/athletemonitor/internal/athlete/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 {
	return &v
}

func TestSBMWeighted(t *testing.T) {
	testCases := []struct {
		name     string
		inputs   calc.SBMInputs
		expected float64
	}{
		{
			name: "8h sleep, no penalty",
			inputs: calc.SBMInputs{
				SleepQuality:       f(8),
				SleepDurationHours: f(8),
				GeneralFatigue:     f(2),
				Pain:               f(0),
				MoodWellbeing:      f(9),
			},
			expected: 8.9,
		},
		{
			name: "7h is not below 7",
			inputs: calc.SBMInputs{
				SleepQuality:       f(10),
				SleepDurationHours: f(7),
				GeneralFatigue:     f(0),
				Pain:               f(0),
				MoodWellbeing:      f(10),
			},
			expected: 9.1,
		},
		{
			name: "6.5h",
			inputs: calc.SBMInputs{
				SleepQuality:       f(10),
				SleepDurationHours: f(6.5),
				GeneralFatigue:     f(0),
				Pain:               f(0),
				MoodWellbeing:      f(10),
			},
			expected: 8.4,
		},
		{
			name: "5.5h",
			inputs: calc.SBMInputs{
				SleepQuality:       f(10),
				SleepDurationHours: f(5.5),
				GeneralFatigue:     f(0),
				Pain:               f(0),
				MoodWellbeing:      f(10),
			},
			expected: 7.0,
		},
		{
			name: "4h",
			inputs: calc.SBMInputs{
				SleepQuality:       f(10),
				SleepDurationHours: f(4),
				GeneralFatigue:     f(0),
				Pain:               f(0),
				MoodWellbeing:      f(10),
			},
			expected: 4.3,
		},
		{
			name: "only fatigue",
			inputs: calc.SBMInputs{
				GeneralFatigue: f(3),
			},
			expected: 7.0,
		},
		{
			name: "quality and mood without duration",
			inputs: calc.SBMInputs{
				SleepQuality:  f(6),
				MoodWellbeing: f(7),
			},
			expected: 6.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sbm := calc.SBMWeighted(tc.inputs)
			require.NotNil(t, sbm)
			assert.Equal(t, tc.expected, *sbm)
		})
	}
}

func TestSBMWeighted_NoInputs(t *testing.T) {
	assert.Nil(t, calc.SBMWeighted(calc.SBMInputs{}))
}

func TestSBMWeighted_Deterministic(t *testing.T) {
	in := calc.SBMInputs{
		SleepQuality:       f(7),
		SleepDurationHours: f(6.2),
		GeneralFatigue:     f(4),
		MoodWellbeing:      f(6),
	}
	first := calc.SBMWeighted(in)
	second := calc.SBMWeighted(in)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestSBMProportional(t *testing.T) {
	sbm := calc.SBMProportional(calc.SBMInputs{
		SleepQuality:   f(8),
		GeneralFatigue: f(2),
		MoodWellbeing:  f(7),
	})
	require.NotNil(t, sbm)
	assert.Equal(t, 30.67, *sbm)

	all := calc.SBMProportional(calc.SBMInputs{
		SleepQuality:   f(10),
		GeneralFatigue: f(0),
		Pain:           f(0),
		MoodWellbeing:  f(10),
		// ignored by the proportional variant
		SleepDurationHours: f(3),
	})
	require.NotNil(t, all)
	assert.Equal(t, 40.0, *all)

	assert.Nil(t, calc.SBMProportional(calc.SBMInputs{}))
	assert.Nil(t, calc.SBMProportional(calc.SBMInputs{SleepDurationHours: f(8)}))
}

func TestSleepDurationScore(t *testing.T) {
	assert.Equal(t, 0.0, calc.SleepDurationScore(3))
	assert.Equal(t, 0.0, calc.SleepDurationScore(4))
	assert.Equal(t, 5.0, calc.SleepDurationScore(6))
	assert.Equal(t, 10.0, calc.SleepDurationScore(8))
	assert.Equal(t, 10.0, calc.SleepDurationScore(11))
}

func TestSleepDurationPenalty(t *testing.T) {
	assert.Equal(t, 4.0, calc.SleepDurationPenalty(4.9))
	assert.Equal(t, 2.0, calc.SleepDurationPenalty(5))
	assert.Equal(t, 1.0, calc.SleepDurationPenalty(6))
	assert.Equal(t, 0.5, calc.SleepDurationPenalty(7))
	assert.Equal(t, 0.0, calc.SleepDurationPenalty(8))
}
