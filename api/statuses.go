package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Status is a presence status code with its display comment.
type Status struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}

// UserStatus is one user's current presence status.
type UserStatus struct {
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// StatusClient covers the /status blueprint.
type StatusClient struct {
	gw *gateway.Gateway
}

// AllStatuses lists every status code.
func (c *StatusClient) AllStatuses(ctx context.Context) ([]Status, error) {
	var body struct {
		Statuses []Status `json:"statuses"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/status/get_all_status", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[StatusClient.AllStatuses]")
	}
	return body.Statuses, nil
}

// StatusList lists status codes ordered by comment, for dropdowns.
func (c *StatusClient) StatusList(ctx context.Context) ([]Status, error) {
	var body struct {
		Statuses []Status `json:"statuses"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/status/get_status_list", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[StatusClient.StatusList]")
	}
	return body.Statuses, nil
}

// UsersStatus fetches the current status of the given users.
func (c *StatusClient) UsersStatus(ctx context.Context, userIDs []string) ([]UserStatus, error) {
	in := struct {
		UserIDs []string `json:"user_ids"`
	}{userIDs}
	var body struct {
		Statuses []UserStatus `json:"statuses"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/status/get_users_status", in, &body); err != nil {
		return nil, errors.Wrap(err, "[StatusClient.UsersStatus]")
	}
	return body.Statuses, nil
}

// AddStatus registers a status code.
func (c *StatusClient) AddStatus(ctx context.Context, s Status) error {
	return c.gw.DoJSON(ctx, http.MethodPost, "/status/add_status", s, nil)
}

// EditStatus updates a status code's comment.
func (c *StatusClient) EditStatus(ctx context.Context, statusID string, s Status) error {
	path := "/status/edit_status/" + url.PathEscape(statusID)
	return c.gw.DoJSON(ctx, http.MethodPut, path, s, nil)
}

// DeleteStatus removes a status code.
func (c *StatusClient) DeleteStatus(ctx context.Context, statusID string) error {
	path := "/status/delete_status/" + url.PathEscape(statusID)
	return c.gw.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

// UpdateMyStatus sets the session user's own status.
func (c *StatusClient) UpdateMyStatus(ctx context.Context, statusID string) error {
	in := map[string]string{"status": statusID}
	return c.gw.DoJSON(ctx, http.MethodPut, "/status/update_status", in, nil)
}
