package situation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bumilsoft/intraclient/api"
	"github.com/bumilsoft/intraclient/situation"
)

var testUsers = []api.User{
	{ID: "alice", Name: "Alice Kim"},
	{ID: "bob", Name: "Bob Lee"},
}

func participation(project, projectName, userID, start, end string) api.Participation {
	return api.Participation{
		ProjectCode: project,
		ProjectName: projectName,
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
	}
}

func TestByProject(t *testing.T) {
	t.Run("groups participants under their project", func(t *testing.T) {
		rows := []api.Participation{
			participation("P1", "Billing revamp", "alice", "2024-01-10", "2024-03-05"),
			participation("P1", "Billing revamp", "bob", "2024-02-01", "2024-02-28"),
			participation("P2", "Portal", "alice", "2024-06-01", "2024-06-30"),
		}

		groups := situation.ByProject(rows, testUsers, 2024)
		require.Len(t, groups, 2)

		require.Equal(t, "P1", groups[0].Key)
		require.Equal(t, "Billing revamp", groups[0].Title)
		require.Len(t, groups[0].Lines, 2)
		require.Equal(t, "Alice Kim", groups[0].Lines[0].Title)
		require.Equal(t, []int{0, 1, 2}, groups[0].Lines[0].Months.Months())
		require.Equal(t, "Bob Lee", groups[0].Lines[1].Title)
		require.Equal(t, []int{1}, groups[0].Lines[1].Months.Months())

		require.Equal(t, "P2", groups[1].Key)
		require.Equal(t, []int{5}, groups[1].Lines[0].Months.Months())
	})

	t.Run("repeated spans union into one line", func(t *testing.T) {
		rows := []api.Participation{
			participation("P1", "Billing revamp", "alice", "2024-01-01", "2024-02-01"),
			participation("P1", "Billing revamp", "alice", "2024-05-01", "2024-05-31"),
		}

		groups := situation.ByProject(rows, testUsers, 2024)
		require.Len(t, groups, 1)
		require.Len(t, groups[0].Lines, 1)
		require.Equal(t, []int{0, 1, 4}, groups[0].Lines[0].Months.Months())
	})

	t.Run("soft-deleted and off-year rows are dropped", func(t *testing.T) {
		deleted := participation("P1", "Billing revamp", "alice", "2024-01-01", "2024-02-01")
		deleted.IsDeleteYN = "Y"

		rows := []api.Participation{
			deleted,
			participation("P2", "Portal", "bob", "2022-01-01", "2022-12-31"),
		}
		require.Empty(t, situation.ByProject(rows, testUsers, 2024))
	})

	t.Run("rows with unparseable dates are dropped", func(t *testing.T) {
		rows := []api.Participation{
			participation("P1", "Billing revamp", "alice", "??", "2024-02-01"),
			participation("P1", "Billing revamp", "bob", "2024-02-01", "2024-02-28"),
		}
		groups := situation.ByProject(rows, testUsers, 2024)
		require.Len(t, groups, 1)
		require.Len(t, groups[0].Lines, 1)
		require.Equal(t, "Bob Lee", groups[0].Lines[0].Title)
	})

	t.Run("unknown participant gets a placeholder name", func(t *testing.T) {
		rows := []api.Participation{
			participation("P1", "Billing revamp", "ghost", "2024-01-01", "2024-01-31"),
		}
		groups := situation.ByProject(rows, testUsers, 2024)
		require.Len(t, groups, 1)
		require.Equal(t, "Unknown", groups[0].Lines[0].Title)
	})

	t.Run("cross-year span shows only the requested year's months", func(t *testing.T) {
		rows := []api.Participation{
			participation("P1", "Billing revamp", "alice", "2023-11-01", "2024-02-15"),
		}
		groups := situation.ByProject(rows, testUsers, 2024)
		require.Equal(t, []int{0, 1}, groups[0].Lines[0].Months.Months())
	})
}

func TestByUser(t *testing.T) {
	rows := []api.Participation{
		participation("P1", "Billing revamp", "alice", "2024-01-10", "2024-03-05"),
		participation("P2", "Portal", "alice", "2024-06-01", "2024-06-30"),
		participation("P1", "Billing revamp", "bob", "2024-02-01", "2024-02-28"),
	}

	groups := situation.ByUser(rows, testUsers, 2024)
	require.Len(t, groups, 2)

	require.Equal(t, "alice", groups[0].Key)
	require.Equal(t, "Alice Kim", groups[0].Title)
	require.Len(t, groups[0].Lines, 2)
	require.Equal(t, "Billing revamp", groups[0].Lines[0].Title)
	require.Equal(t, "Portal", groups[0].Lines[1].Title)

	require.Equal(t, "bob", groups[1].Key)
	require.Len(t, groups[1].Lines, 1)
	require.Equal(t, []int{1}, groups[1].Lines[0].Months.Months())
}
