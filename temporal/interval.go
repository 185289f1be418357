// Package temporal answers "does calendar unit U belong to interval I" for
// month and day granularities. The calendar grid and the situation-control
// participation charts both paint their cells from these projections, so
// every date comparison in the client routes through this package instead of
// re-deriving midnight normalization at the call site.
package temporal

import (
	"time"

	"github.com/pkg/errors"
)

// Layouts the backend has been observed serialising dates in. Plain dates
// come from the schedule and project tables, RFC 3339 from newer endpoints,
// and RFC 1123 from Flask-style datetime JSON encoding.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

// Interval is an inclusive start/end date pair representing an entity's
// active window: a schedule entry or a project participation span. Owner
// carries the entity the window belongs to (user id or project code) and
// Label an optional status or display name.
type Interval struct {
	Start time.Time
	End   time.Time
	Owner string
	Label string
}

// ParseInterval builds an Interval from the start_date/end_date strings of a
// backend resource. Datetime values keep their wall-clock day; comparisons
// later normalize to that day, never to the UTC instant, so a schedule
// entered as 23:00+09:00 stays on the day the user picked.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Interval{}, errors.Wrap(err, "[ParseInterval] start")
	}
	e, err := ParseDate(end)
	if err != nil {
		return Interval{}, errors.Wrap(err, "[ParseInterval] end")
	}
	return Interval{Start: s, End: e}, nil
}

// ParseDate parses a single backend date or datetime string.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("[ParseDate] unrecognized date %q", value)
}

// DayOf truncates a timestamp to midnight of its wall-clock day. The day is
// taken in the timestamp's own offset before being re-anchored in UTC, which
// keeps boundary values from drifting into the neighbouring day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Inverted reports whether the interval's start day falls after its end day.
// Whether such an interval is upstream data entry error or a deliberate
// "no participation" marker is unresolved; projections treat it as empty
// rather than failing.
func (iv Interval) Inverted() bool {
	return DayOf(iv.End).Before(DayOf(iv.Start))
}

// ContainsDay reports whether the given day (any time-of-day) lies within
// the interval, inclusive at both ends, at day granularity.
func (iv Interval) ContainsDay(t time.Time) bool {
	if iv.Inverted() {
		return false
	}
	day := DayOf(t)
	return !day.Before(DayOf(iv.Start)) && !day.After(DayOf(iv.End))
}
