package calc

import (
	"time"
)

// Session is one post-session load answer.
type Session struct {
	Date time.Time
	RPE  float64
}

// CIH is the weekly internal load: the sum of the week's session RPE values.
func CIH(sessions []Session) float64 {
	var sum float64
	for _, s := range sessions {
		sum += s.RPE
	}
	return Round(sum, 1)
}

// CIHNormalized divides CIH by the number of distinct days having at least one session.
// Nil when no session was recorded.
func CIHNormalized(sessions []Session) *float64 {
	days := make(map[string]struct{})
	var sum float64
	for _, s := range sessions {
		days[s.Date.Format(time.DateOnly)] = struct{}{}
		sum += s.RPE
	}
	if len(days) == 0 {
		return nil
	}
	return Float(Round(sum/float64(len(days)), 2))
}

// CPH is the weekly planned load: volume x (intensity / 10). Zero when either is unknown.
func CPH(volumePlanned, intensityPlanned *float64) float64 {
	if volumePlanned == nil || intensityPlanned == nil {
		return 0
	}
	return Round(*volumePlanned*(*intensityPlanned/10), 1)
}

// Ratio is nil when the denominator is 0.
func Ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	return Float(Round(numerator/denominator, 2))
}

// WeekBounds returns the Monday and Sunday of the ISO week containing date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// acwrMinHistoryDays is how far back the first session of the chronic window must lie
// for the 28-day weekly mean to be meaningful.
const acwrMinHistoryDays = 21

// ACWR compares the acute load (sum over the 7 days ending on asOf) with the chronic load
// (weekly mean over the 28 days ending on asOf). Nil when there is no chronic load or when
// the first session of the chronic window is less than 3 weeks before asOf.
func ACWR(sessions []Session, asOf time.Time) *float64 {
	y, m, d := asOf.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, asOf.Location())
	acuteStart := end.AddDate(0, 0, -6)
	chronicStart := end.AddDate(0, 0, -27)
	historyStart := end.AddDate(0, 0, -acwrMinHistoryDays)

	var acute, chronic float64
	covered := false
	for _, s := range sessions {
		sy, sm, sd := s.Date.Date()
		day := time.Date(sy, sm, sd, 0, 0, 0, 0, end.Location())
		if day.After(end) || day.Before(chronicStart) {
			continue
		}
		chronic += s.RPE
		if !day.Before(acuteStart) {
			acute += s.RPE
		}
		if !day.After(historyStart) {
			covered = true
		}
	}

	if !covered {
		return nil
	}
	return Ratio(acute, chronic/4)
}
