// Package situation assembles the yearly participation chart of the
// situation-control view: people versus projects, with each row carrying a
// twelve-cell month highlight per participant.
package situation

import (
	"github.com/bumilsoft/intraclient/api"
	"github.com/bumilsoft/intraclient/temporal"
)

// Line is one highlighted row inside a chart group: a participant within a
// project group, or a project within a user group.
type Line struct {
	Key    string // user id or project code
	Title  string // display name
	Months temporal.MonthSet
}

// Group is one chart block with its nested lines.
type Group struct {
	Key   string
	Title string
	Lines []Line
}

// unknownName stands in when a participant's user id has no matching
// account row, which happens for accounts deleted after assignment.
const unknownName = "Unknown"

// ByProject groups participation spans by project for the given year. Rows
// outside the year window or soft-deleted are dropped; a participant with
// several spans in the same project gets the union of their month sets.
// Groups and lines keep first-encounter order so repeated renders of the
// same data stay stable.
func ByProject(participations []api.Participation, users []api.User, year int) []Group {
	names := nameIndex(users)

	groups := make([]Group, 0)
	groupIdx := make(map[string]int)
	lineIdx := make(map[string]map[string]int)

	for _, r := range rowsForYear(participations, year) {
		p := r.participation

		gi, ok := groupIdx[p.ProjectCode]
		if !ok {
			gi = len(groups)
			groupIdx[p.ProjectCode] = gi
			lineIdx[p.ProjectCode] = make(map[string]int)
			groups = append(groups, Group{Key: p.ProjectCode, Title: p.ProjectName})
		}

		li, ok := lineIdx[p.ProjectCode][p.UserID]
		if !ok {
			lineIdx[p.ProjectCode][p.UserID] = len(groups[gi].Lines)
			groups[gi].Lines = append(groups[gi].Lines, Line{
				Key:    p.UserID,
				Title:  userName(names, p.UserID),
				Months: r.months,
			})
			continue
		}
		groups[gi].Lines[li].Months = groups[gi].Lines[li].Months.Union(r.months)
	}
	return groups
}

// ByUser groups participation spans by user for the given year, one line
// per project the user participates in.
func ByUser(participations []api.Participation, users []api.User, year int) []Group {
	names := nameIndex(users)

	groups := make([]Group, 0)
	groupIdx := make(map[string]int)
	lineIdx := make(map[string]map[string]int)

	for _, r := range rowsForYear(participations, year) {
		p := r.participation

		gi, ok := groupIdx[p.UserID]
		if !ok {
			gi = len(groups)
			groupIdx[p.UserID] = gi
			lineIdx[p.UserID] = make(map[string]int)
			groups = append(groups, Group{Key: p.UserID, Title: userName(names, p.UserID)})
		}

		li, ok := lineIdx[p.UserID][p.ProjectCode]
		if !ok {
			lineIdx[p.UserID][p.ProjectCode] = len(groups[gi].Lines)
			groups[gi].Lines = append(groups[gi].Lines, Line{
				Key:    p.ProjectCode,
				Title:  p.ProjectName,
				Months: r.months,
			})
			continue
		}
		groups[gi].Lines[li].Months = groups[gi].Lines[li].Months.Union(r.months)
	}
	return groups
}

// yearRow is a participation row admitted to the chart, carrying the month
// set its span projects onto the requested year.
type yearRow struct {
	participation api.Participation
	months        temporal.MonthSet
}

// rowsForYear keeps the rows whose span touches the requested year and that
// are not soft-deleted, parsing each row's dates once. Rows with unparseable
// dates are dropped.
func rowsForYear(participations []api.Participation, year int) []yearRow {
	kept := make([]yearRow, 0, len(participations))
	for _, p := range participations {
		if p.IsDeleteYN == "Y" {
			continue
		}
		iv, err := temporal.ParseInterval(p.StartDate, p.EndDate)
		if err != nil {
			continue
		}
		if iv.Start.Year() > year || iv.End.Year() < year {
			continue
		}
		kept = append(kept, yearRow{
			participation: p,
			months:        temporal.MonthsOverlapping(iv, year),
		})
	}
	return kept
}

func nameIndex(users []api.User) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func userName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok {
		return name
	}
	return unknownName
}
