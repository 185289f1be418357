package temporal

import "time"

// MonthSet is the set of months in a single calendar year that an interval
// touches. Keys are zero-based month indices (January is 0), matching the
// twelve-cell rows of the participation chart.
type MonthSet map[int]bool

// Contains reports membership of the zero-based month index.
func (s MonthSet) Contains(month int) bool {
	return s[month]
}

// Months returns the member indices in ascending order.
func (s MonthSet) Months() []int {
	months := make([]int, 0, len(s))
	for m := 0; m < 12; m++ {
		if s[m] {
			months = append(months, m)
		}
	}
	return months
}

// Union merges another set into a copy of this one.
func (s MonthSet) Union(other MonthSet) MonthSet {
	merged := make(MonthSet, len(s)+len(other))
	for m := range s {
		merged[m] = true
	}
	for m := range other {
		merged[m] = true
	}
	return merged
}

// MonthsOverlapping computes which months of the given year the interval
// touches. A month is included when any of its days lies within the
// interval at day granularity. Intervals spanning several years are handled
// by calling this once per year of interest; an interval that does not reach
// the requested year, or whose start is after its end, yields an empty set.
func MonthsOverlapping(iv Interval, year int) MonthSet {
	set := MonthSet{}
	if iv.Inverted() {
		return set
	}

	start := DayOf(iv.Start)
	end := DayOf(iv.End)
	for m := 0; m < 12; m++ {
		first := time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		if !last.Before(start) && !first.After(end) {
			set[m] = true
		}
	}
	return set
}

// DaysOverlapping returns a membership test for the days of a specific
// year/month: it reports whether a given day-of-month falls inside the
// interval. Day boundaries are normalized to midnight, so datetime-valued
// intervals highlight the same cells as plain dates.
func DaysOverlapping(iv Interval, year int, month time.Month) func(day int) bool {
	if iv.Inverted() {
		return func(int) bool { return false }
	}

	start := DayOf(iv.Start)
	end := DayOf(iv.End)
	return func(day int) bool {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return !d.Before(start) && !d.After(end)
	}
}

// MergeIntervalsByOwner projects every interval onto the given year and
// unions the month sets per owner. An owner with several participation
// spans gets the union of the spans, with no interpolation across gaps.
func MergeIntervalsByOwner(intervals []Interval, year int) map[string]MonthSet {
	merged := make(map[string]MonthSet)
	for _, iv := range intervals {
		set := MonthsOverlapping(iv, year)
		if existing, ok := merged[iv.Owner]; ok {
			merged[iv.Owner] = existing.Union(set)
			continue
		}
		merged[iv.Owner] = set
	}
	return merged
}
