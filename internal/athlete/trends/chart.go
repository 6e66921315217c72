package trends

import (
	"sort"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/calc"
	"github.com/2beens/athletemonitor/internal/athlete/catalog"
	"github.com/2beens/athletemonitor/internal/athlete/measurements"
)

// Row is one dated value of a raw or calculated kind.
type Row struct {
	Date  time.Time
	Kind  string
	Value *float64
}

type Series struct {
	Kind  string     `json:"kind"`
	Label string     `json:"label"`
	Unit  string     `json:"unit"`
	Data  []*float64 `json:"data"`
}

type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// PrepareChartSeries aligns the rows of the requested kinds on a common date axis.
// With a range, every calendar day of [from, to] gets a label; without one, the labels
// are the distinct dates found in the rows. Same-day values are averaged and rounded
// to the kind's precision, missing days are nil.
func PrepareChartSeries(rows []Row, kinds []string, from, to *time.Time) (Chart, error) {
	descriptors := make([]catalog.Descriptor, 0, len(kinds))
	wanted := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		d, err := catalog.Describe(k)
		if err != nil {
			return Chart{}, err
		}
		descriptors = append(descriptors, d)
		wanted[k] = true
	}

	inRange := func(d time.Time) bool {
		if from != nil && d.Before(measurements.Day(*from)) {
			return false
		}
		if to != nil && d.After(measurements.Day(*to)) {
			return false
		}
		return true
	}

	type acc struct {
		sum   float64
		count int
	}
	values := make(map[string]map[string]*acc)
	dates := make(map[string]time.Time)
	for _, r := range rows {
		if !wanted[r.Kind] {
			continue
		}
		day := measurements.Day(r.Date)
		if !inRange(day) {
			continue
		}
		key := measurements.DayKey(day)
		dates[key] = day
		if r.Value == nil {
			continue
		}
		if values[r.Kind] == nil {
			values[r.Kind] = make(map[string]*acc)
		}
		a, ok := values[r.Kind][key]
		if !ok {
			a = &acc{}
			values[r.Kind][key] = a
		}
		a.sum += *r.Value
		a.count++
	}

	if from != nil && to != nil {
		for d := measurements.Day(*from); !d.After(measurements.Day(*to)); d = d.AddDate(0, 0, 1) {
			dates[measurements.DayKey(d)] = d
		}
	}

	labels := make([]string, 0, len(dates))
	for key := range dates {
		labels = append(labels, key)
	}
	// ISO dates sort chronologically
	sort.Strings(labels)

	chart := Chart{
		Labels: labels,
		Series: make([]Series, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		s := Series{
			Kind:  d.Kind,
			Label: d.Label,
			Unit:  d.Unit,
			Data:  make([]*float64, len(labels)),
		}
		for i, label := range labels {
			if a, ok := values[d.Kind][label]; ok {
				s.Data[i] = calc.Float(calc.Round(a.sum/float64(a.count), d.Decimals))
			}
		}
		chart.Series = append(chart.Series, s)
	}

	return chart, nil
}
