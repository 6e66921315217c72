package measurements

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/catalog"
)

// Measurement is a single self-reported value, as recorded by the data entry forms.
// Value is nil for free-text kinds, Note is empty for numeric ones.
type Measurement struct {
	ID        int                `json:"id"`
	SubjectID int                `json:"subjectId"`
	Date      time.Time          `json:"date"`
	Kind      catalog.MetricKind `json:"kind"`
	Value     *float64           `json:"value"`
	Note      string             `json:"note,omitempty"`
	Unit      string             `json:"unit,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// CalculatedMetric is a derived value; at most one exists per (subject, date, kind).
type CalculatedMetric struct {
	SubjectID int                    `json:"subjectId"`
	Date      time.Time              `json:"date"`
	Kind      catalog.CalculatedKind `json:"kind"`
	Value     float64                `json:"value"`
	Unit      string                 `json:"unit,omitempty"`
}

// Key uniquely identifies a calculated metric row.
type Key struct {
	SubjectID int
	Date      string
	Kind      catalog.CalculatedKind
}

func (c CalculatedMetric) Key() Key {
	return Key{
		SubjectID: c.SubjectID,
		Date:      DayKey(c.Date),
		Kind:      c.Kind,
	}
}

// Revision identifies the state of a subject's measurements up to a day. Any answer added
// or removed changes it.
type Revision struct {
	Count         int
	LastCreatedAt time.Time
}

func (r Revision) Key() string {
	return fmt.Sprintf("%d-%d", r.Count, r.LastCreatedAt.UnixMicro())
}

var ErrPlanNotFound = errors.New("week allocation not found")

// WeekAllocation is the training plan's weekly target for a subject.
type WeekAllocation struct {
	SubjectID        int       `json:"subjectId"`
	WeekStart        time.Time `json:"weekStart"`
	VolumePlanned    *float64  `json:"volumePlanned"`
	IntensityPlanned *float64  `json:"intensityPlanned"`
}

// Query selects the measurements of one subject.
type Query struct {
	SubjectID int

	// empty means every kind
	Kinds []catalog.MetricKind

	// zero bounds are open
	From time.Time
	To   time.Time
}

// Day truncates t to its calendar day (00:00) keeping its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	da := Day(a)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, da.Location())
	// rounded, DST shifts never exceed an hour
	return int(math.Round(db.Sub(da).Hours() / 24))
}
