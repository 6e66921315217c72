package trends

import (
	"math"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
)

type Trend string

const (
	TrendIncreasing   Trend = "increasing"
	TrendDecreasing   Trend = "decreasing"
	TrendInsufficient Trend = "N/A"
)

// epsilon below which the recent mean is not considered higher than the prior one
const epsilon = 1e-9

// Result is the trend of a series. Change is the percent change of the recent
// half mean over the prior half mean, nil when undefined.
type Result struct {
	Trend  Trend    `json:"trend"`
	Change *float64 `json:"change"`
}

// Classify compares the mean of the second half of the series to the mean of the first half.
// The series must be in chronological order. There is no stable band: anything not
// increasing is decreasing.
func Classify(points []measurements.Point) Result {
	if len(points) < 2 {
		return Result{Trend: TrendInsufficient}
	}

	half := len(points) / 2
	prior := meanOf(points[:half])
	recent := meanOf(points[half:])

	res := Result{Trend: TrendDecreasing}
	if recent > prior+epsilon {
		res.Trend = TrendIncreasing
	}
	if prior != 0 {
		change := calc.Round((recent-prior)/math.Abs(prior)*100, 1)
		if change == 0 {
			// rounding a tiny drop gives -0
			change = 0
		}
		res.Change = &change
	}
	return res
}

func meanOf(points []measurements.Point) float64 {
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	return sum / float64(len(points))
}

type Interpretation string

const (
	InterpretationGood    Interpretation = "good"
	InterpretationBad     Interpretation = "bad"
	InterpretationNeutral Interpretation = "neutral"
)

// ClassifyChange tells whether a percent change is good news for a metric
// whose increase has the given direction.
func ClassifyChange(change *float64, direction catalog.TrendDirection) Interpretation {
	if change == nil || *change == 0 || direction == catalog.TrendNeutral {
		return InterpretationNeutral
	}
	increase := *change > 0
	switch direction {
	case catalog.TrendGood:
		if increase {
			return InterpretationGood
		}
		return InterpretationBad
	case catalog.TrendBad:
		if increase {
			return InterpretationBad
		}
		return InterpretationGood
	default:
		return InterpretationNeutral
	}
}

// RollingAverage is the mean of the points dated in the `days` calendar days ending on asOf.
func RollingAverage(points []measurements.Point, asOf time.Time, days int) *float64 {
	end := measurements.Day(asOf)
	start := end.AddDate(0, 0, -(days - 1))
	var values []float64
	for _, p := range points {
		d := measurements.Day(p.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		values = append(values, p.Value)
	}
	return calc.Mean(values)
}
