package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bumilsoft/intraclient/api"
	"github.com/bumilsoft/intraclient/calendar"
	"github.com/bumilsoft/intraclient/gateway"
	"github.com/bumilsoft/intraclient/internal/config"
	"github.com/bumilsoft/intraclient/session"
	"github.com/bumilsoft/intraclient/situation"
)

// App wires the session store, gateway and resource clients for the CLI.
type App struct {
	cfg   config.Config
	store session.Store
	gw    *gateway.Gateway
	api   *api.Client
	in    io.Reader
	out   io.Writer
}

func newApp(cfg config.Config) (*App, error) {
	store, err := session.NewFileStore(cfg.GetTokenFile())
	if err != nil {
		return nil, err
	}

	gw, err := gateway.New(cfg.GetAPIURL(), store,
		gateway.WithTimeout(cfg.GetRequestTimeout()),
		gateway.WithLogger(log.Logger),
		gateway.WithLogoutFunc(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run `intractl login` to sign in again.")
		}),
	)
	if err != nil {
		return nil, err
	}

	client, err := api.New(gw)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:   cfg,
		store: store,
		gw:    gw,
		api:   client,
		in:    os.Stdin,
		out:   os.Stdout,
	}, nil
}

// Login prompts for credentials, exchanges them and persists the session.
func (a *App) Login(ctx context.Context, userID string) error {
	displayAppname(a.cfg.GetAppName())

	reader := bufio.NewReader(a.in)
	if userID == "" {
		fmt.Fprint(a.out, "User ID: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		userID = strings.TrimSpace(line)
	}

	fmt.Fprint(a.out, "Password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	password := strings.TrimSpace(line)

	result, err := a.api.Auth.Login(ctx, a.store, userID, password)
	if err != nil {
		return err
	}

	if err := a.api.Auth.LogLogin(ctx, result.UserID); err != nil {
		log.Warn().Err(err).Msg("failed to record login event")
	}

	name := result.UserID
	if claims, err := session.ParseClaims(result.Tokens.AccessToken); err == nil && claims.Name != "" {
		name = claims.Name
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", name)
	if result.FirstLogin {
		fmt.Fprintln(a.out, "First login: please change your password with `intractl passwd`.")
	}
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout() {
	a.gw.Logout()
	fmt.Fprintln(a.out, "Logged out.")
}

// WhoAmI prints the session user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.api.Auth.LoggedInUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Name, user.ID)
	if user.Position != "" {
		fmt.Fprintf(a.out, "Position:   %s\n", user.Position)
	}
	if user.DepartmentName != "" {
		fmt.Fprintf(a.out, "Department: %s %s\n", user.DepartmentName, user.TeamName)
	}
	fmt.Fprintf(a.out, "Role:       %s\n", user.RoleID)
	return nil
}

// ChangePassword prompts for the current and new password.
func (a *App) ChangePassword(ctx context.Context) error {
	reader := bufio.NewReader(a.in)

	fmt.Fprint(a.out, "Current password: ")
	current, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, "New password: ")
	updated, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	if err := a.api.Auth.ChangePassword(ctx, strings.TrimSpace(current), strings.TrimSpace(updated)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// Calendar renders the month grid with the session user's schedules marked
// `*` and other users' schedules marked `+`.
func (a *App) Calendar(ctx context.Context, year int, month time.Month) error {
	user, err := a.api.Auth.LoggedInUser(ctx)
	if err != nil {
		return err
	}

	all, err := a.api.Schedules.AllSchedules(ctx)
	if err != nil {
		return err
	}

	var mine, others []api.Schedule
	for _, s := range all {
		if s.UserID == user.ID {
			mine = append(mine, s)
			continue
		}
		others = append(others, s)
	}

	page := calendar.BuildMonthPage(year, month, mine, others)

	fmt.Fprintf(a.out, "%s %d\n", month, year)
	fmt.Fprintln(a.out, "Sun  Mon  Tue  Wed  Thu  Fri  Sat")
	col := 0
	for ; col < page.LeadingBlanks; col++ {
		fmt.Fprint(a.out, "     ")
	}
	for _, cell := range page.Cells {
		marker := " "
		switch {
		case cell.Mine:
			marker = "*"
		case cell.Others:
			marker = "+"
		}
		fmt.Fprintf(a.out, "%2d%s  ", cell.Day, marker)
		col++
		if col%7 == 0 {
			fmt.Fprintln(a.out)
		}
	}
	if col%7 != 0 {
		fmt.Fprintln(a.out)
	}
	return nil
}

// Situation renders the yearly participation chart, grouped by project or,
// with byUser set, by participant.
func (a *App) Situation(ctx context.Context, year int, byUser bool) error {
	users, err := a.api.Users.Users(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	_, participations, err := a.api.Projects.UsersProjects(ctx, ids)
	if err != nil {
		return err
	}

	var groups []situation.Group
	if byUser {
		groups = situation.ByUser(participations, users, year)
	} else {
		groups = situation.ByProject(participations, users, year)
	}

	fmt.Fprintf(a.out, "Participation %d\n", year)
	for _, group := range groups {
		fmt.Fprintf(a.out, "%s\n", group.Title)
		for _, line := range group.Lines {
			fmt.Fprintf(a.out, "  %-20s ", line.Title)
			for m := 0; m < 12; m++ {
				if line.Months.Contains(m) {
					fmt.Fprint(a.out, "[##]")
					continue
				}
				fmt.Fprint(a.out, "[  ]")
			}
			fmt.Fprintln(a.out)
		}
	}
	return nil
}

// Notices prints the notice board, newest first.
func (a *App) Notices(ctx context.Context) error {
	notices, err := a.api.Notices.Notices(ctx)
	if err != nil {
		return err
	}
	for _, n := range notices {
		fmt.Fprintf(a.out, "#%d  %s  (%s, %s)\n", n.ID, n.Title, n.CreatedByName, n.CreatedAt)
	}
	return nil
}
