package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Schedule is one calendar entry. UserID and UserName are only present on
// the other-users listing, where the backend joins the account table in.
type Schedule struct {
	ID        int    `json:"id"`
	Task      string `json:"task"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	UserID    string `json:"user_id,omitempty"`
	UserName  string `json:"name,omitempty"`
}

// ScheduleClient covers the /schedule blueprint. Date arguments use the
// backend's YYYY-MM-DD form.
type ScheduleClient struct {
	gw *gateway.Gateway
}

// MySchedules lists the session user's entries covering the given date.
func (c *ScheduleClient) MySchedules(ctx context.Context, date string) ([]Schedule, error) {
	path := "/schedule/get_schedule?date=" + url.QueryEscape(date)
	var body struct {
		Schedules []Schedule `json:"schedules"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[ScheduleClient.MySchedules]")
	}
	return body.Schedules, nil
}

// OtherUsersSchedules lists everyone else's entries covering the given date.
func (c *ScheduleClient) OtherUsersSchedules(ctx context.Context, date string) ([]Schedule, error) {
	path := "/schedule/get_other_users_schedule?date=" + url.QueryEscape(date)
	var body struct {
		Schedules []Schedule `json:"schedules"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[ScheduleClient.OtherUsersSchedules]")
	}
	return body.Schedules, nil
}

// AllSchedules lists every user's entries, used by the shared team calendar.
func (c *ScheduleClient) AllSchedules(ctx context.Context) ([]Schedule, error) {
	var body struct {
		Schedules []Schedule `json:"schedules"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/schedule/get_all_schedule", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[ScheduleClient.AllSchedules]")
	}
	return body.Schedules, nil
}

// AddSchedule creates an entry for the session user.
func (c *ScheduleClient) AddSchedule(ctx context.Context, s Schedule) error {
	in := map[string]string{
		"task":       s.Task,
		"start_date": s.StartDate,
		"end_date":   s.EndDate,
		"status":     s.Status,
	}
	return c.gw.DoJSON(ctx, http.MethodPost, "/schedule/add-schedule", in, nil)
}

// EditSchedule updates an entry.
func (c *ScheduleClient) EditSchedule(ctx context.Context, scheduleID int, s Schedule) error {
	in := map[string]string{
		"task":       s.Task,
		"start_date": s.StartDate,
		"end_date":   s.EndDate,
		"status":     s.Status,
	}
	path := fmt.Sprintf("/schedule/edit-schedule/%d", scheduleID)
	return c.gw.DoJSON(ctx, http.MethodPut, path, in, nil)
}

// DeleteSchedule removes an entry.
func (c *ScheduleClient) DeleteSchedule(ctx context.Context, scheduleID int) error {
	path := fmt.Sprintf("/schedule/delete-schedule/%d", scheduleID)
	return c.gw.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}
