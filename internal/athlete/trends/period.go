package trends

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/measurements"
)

var ErrUnknownPeriod = errors.New("unknown period")

type Period string

const (
	PeriodLast7Days   Period = "last_7_days"
	PeriodLast14Days  Period = "last_14_days"
	PeriodLast30Days  Period = "last_30_days"
	PeriodLast90Days  Period = "last_90_days"
	PeriodLast365Days Period = "last_365_days"
	PeriodAllTime     Period = "all_time"
)

var periodDays = map[Period]int{
	PeriodLast7Days:   7,
	PeriodLast14Days:  14,
	PeriodLast30Days:  30,
	PeriodLast90Days:  90,
	PeriodLast365Days: 365,
}

// ResolvePeriod returns the first day of the period ending today (inclusive).
// all_time resolves to the Unix epoch.
func ResolvePeriod(period Period, now time.Time) (time.Time, error) {
	if period == PeriodAllTime {
		return time.Unix(0, 0).In(now.Location()), nil
	}
	days, ok := periodDays[period]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnknownPeriod, period)
	}
	return measurements.Day(now).AddDate(0, 0, -(days - 1)), nil
}
