package store

import (
	_ "embed"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/measurements"
)

// Schema creates the tables the repos read and write.
//
//go:embed schema.sql
var Schema string

// dateArg turns a day into a DATE parameter, nil for an open bound.
func dateArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return measurements.DayKey(t)
}

// inLocation re-anchors a scanned DATE (UTC midnight) on the same calendar day in loc.
func inLocation(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
