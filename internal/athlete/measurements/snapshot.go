package measurements

import (
	"sort"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/catalog"
)

// Point is one dated numeric value of a series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Snapshot is the set of measurements and calculated metrics of one subject,
// fetched once and then evaluated in memory.
type Snapshot struct {
	SubjectID    int
	Measurements []Measurement
	Calculated   []CalculatedMetric
}

func NewSnapshot(subjectID int, ms []Measurement, calculated []CalculatedMetric) Snapshot {
	sorted := make([]Measurement, len(ms))
	copy(sorted, ms)
	// recorded order decides which same-day session entry is the latest
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return Snapshot{
		SubjectID:    subjectID,
		Measurements: sorted,
		Calculated:   calculated,
	}
}

// ValuesOn returns all numeric values of the kind recorded on the given day, in recorded order.
func (s Snapshot) ValuesOn(kind catalog.MetricKind, day time.Time) []float64 {
	key := DayKey(day)
	var values []float64
	for _, m := range s.Measurements {
		if m.Kind != kind || m.Value == nil || DayKey(m.Date) != key {
			continue
		}
		values = append(values, *m.Value)
	}
	return values
}

// ValueOn returns the last recorded numeric value of the kind on the given day, or nil.
func (s Snapshot) ValueOn(kind catalog.MetricKind, day time.Time) *float64 {
	values := s.ValuesOn(kind, day)
	if len(values) == 0 {
		return nil
	}
	v := values[len(values)-1]
	return &v
}

// NoteOn returns the last free-text note recorded for the kind on the given day.
func (s Snapshot) NoteOn(kind catalog.MetricKind, day time.Time) string {
	key := DayKey(day)
	note := ""
	for _, m := range s.Measurements {
		if m.Kind == kind && DayKey(m.Date) == key && m.Note != "" {
			note = m.Note
		}
	}
	return note
}

// CalculatedOn returns the stored calculated value for the kind and day, or nil.
func (s Snapshot) CalculatedOn(kind catalog.CalculatedKind, day time.Time) *float64 {
	key := DayKey(day)
	for _, c := range s.Calculated {
		if c.Kind == kind && DayKey(c.Date) == key {
			v := c.Value
			return &v
		}
	}
	return nil
}

// Series returns one point per day in [from, to] having at least one value of the kind.
// Same-day values (session scoped kinds) are averaged.
func (s Snapshot) Series(kind catalog.MetricKind, from, to time.Time) []Point {
	from, to = Day(from), Day(to)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	days := make(map[string]time.Time)
	for _, m := range s.Measurements {
		if m.Kind != kind || m.Value == nil {
			continue
		}
		d := Day(m.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		key := DayKey(d)
		sums[key] += *m.Value
		counts[key]++
		days[key] = d
	}

	points := make([]Point, 0, len(days))
	for key, d := range days {
		points = append(points, Point{
			Date:  d,
			Value: sums[key] / float64(counts[key]),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// Window returns the daily series of the `days` calendar days ending on asOf.
// With includeToday false the window ends the day before asOf.
func (s Snapshot) Window(kind catalog.MetricKind, asOf time.Time, days int, includeToday bool) []Point {
	end := Day(asOf)
	if !includeToday {
		end = end.AddDate(0, 0, -1)
	}
	start := end.AddDate(0, 0, -(days - 1))
	return s.Series(kind, start, end)
}

// EventDates returns the distinct days the kind was recorded on, most recent first.
func (s Snapshot) EventDates(kind catalog.MetricKind) []time.Time {
	seen := make(map[string]bool)
	var dates []time.Time
	for _, m := range s.Measurements {
		if m.Kind != kind {
			continue
		}
		key := DayKey(m.Date)
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, Day(m.Date))
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
	return dates
}

// HasAny reports whether any measurement was recorded on the given day.
func (s Snapshot) HasAny(day time.Time, kinds ...catalog.MetricKind) bool {
	key := DayKey(day)
	for _, m := range s.Measurements {
		if DayKey(m.Date) != key {
			continue
		}
		if len(kinds) == 0 {
			return true
		}
		for _, k := range kinds {
			if m.Kind == k {
				return true
			}
		}
	}
	return false
}
