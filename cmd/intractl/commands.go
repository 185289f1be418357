package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:          "intractl",
		Short:        "Command line client for the company intranet",
		SilenceUsage: true,
	}

	loginCmd := &cobra.Command{
		Use:   "login [user-id]",
		Short: "Sign in and persist the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userID string
			if len(args) > 0 {
				userID = args[0]
			}
			return a.Login(cmd.Context(), userID)
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Run: func(cmd *cobra.Command, args []string) {
			a.Logout()
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.WhoAmI(cmd.Context())
		},
	}

	passwdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the signed-in user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ChangePassword(cmd.Context())
		},
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Show the team calendar for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := now.Year(), now.Month()
			if len(args) > 0 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("expected YYYY-MM, got %q", args[0])
				}
				year, month = parsed.Year(), parsed.Month()
			}
			return a.Calendar(cmd.Context(), year, month)
		},
	}

	var byUser bool
	situationCmd := &cobra.Command{
		Use:   "situation [year]",
		Short: "Show the yearly project participation chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("expected a year, got %q", args[0])
				}
				year = parsed
			}
			return a.Situation(cmd.Context(), year, byUser)
		},
	}
	situationCmd.Flags().BoolVar(&byUser, "by-user", false, "group by participant instead of project")

	noticesCmd := &cobra.Command{
		Use:   "notices",
		Short: "Show the notice board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Notices(cmd.Context())
		},
	}

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(situationCmd)
	rootCmd.AddCommand(noticesCmd)

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	return rootCmd
}
