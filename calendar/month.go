// Package calendar builds the month-page model of the shared team calendar:
// which cells the grid needs, and which of them carry the session user's or
// other users' schedules.
package calendar

import (
	"sort"
	"time"

	"github.com/bumilsoft/intraclient/api"
	"github.com/bumilsoft/intraclient/temporal"
)

// DayCell is one day of the rendered month.
type DayCell struct {
	Day    int
	Mine   bool // a schedule of the session user covers this day
	Others bool // someone else's schedule covers this day
}

// MonthPage is the derived model for one year/month view. It is recomputed
// on every render and never cached.
type MonthPage struct {
	Year  int
	Month time.Month
	// LeadingBlanks is the number of empty cells before day 1, i.e. the
	// weekday of the first of the month with Sunday as 0.
	LeadingBlanks int
	Cells         []DayCell
}

// BuildMonthPage projects the given schedules onto a month grid. Entries
// whose dates fail to parse are skipped rather than failing the whole page,
// matching how the views always treated malformed rows.
func BuildMonthPage(year int, month time.Month, mine, others []api.Schedule) *MonthPage {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	page := &MonthPage{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Cells:         make([]DayCell, days),
	}

	mineTests := membershipTests(mine, year, month)
	otherTests := membershipTests(others, year, month)

	for day := 1; day <= days; day++ {
		cell := DayCell{Day: day}
		for _, test := range mineTests {
			if test(day) {
				cell.Mine = true
				break
			}
		}
		for _, test := range otherTests {
			if test(day) {
				cell.Others = true
				break
			}
		}
		page.Cells[day-1] = cell
	}
	return page
}

func membershipTests(schedules []api.Schedule, year int, month time.Month) []func(int) bool {
	tests := make([]func(int) bool, 0, len(schedules))
	for _, s := range schedules {
		iv, err := temporal.ParseInterval(s.StartDate, s.EndDate)
		if err != nil {
			continue
		}
		tests = append(tests, temporal.DaysOverlapping(iv, year, month))
	}
	return tests
}

// SchedulesOn returns the schedules covering a selected day, ordered by
// start date. Used for the day-detail panel under the grid.
func SchedulesOn(schedules []api.Schedule, year int, month time.Month, day int) []api.Schedule {
	selected := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	type dated struct {
		schedule api.Schedule
		start    time.Time
	}
	matched := make([]dated, 0, len(schedules))
	for _, s := range schedules {
		iv, err := temporal.ParseInterval(s.StartDate, s.EndDate)
		if err != nil {
			continue
		}
		if iv.ContainsDay(selected) {
			matched = append(matched, dated{schedule: s, start: temporal.DayOf(iv.Start)})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].start.Before(matched[j].start)
	})

	result := make([]api.Schedule, len(matched))
	for i, m := range matched {
		result[i] = m.schedule
	}
	return result
}
