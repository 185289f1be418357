package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// User is an account row as the backend serialises it. Department and team
// names are joined in by the list endpoints; the raw department id appears
// only on detail responses.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Department     string `json:"department,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	TeamName       string `json:"team_name,omitempty"`
	PhoneNumber    string `json:"phone_number"`
	RoleID         string `json:"role_id"`
	Status         string `json:"status"`
	Comment        string `json:"comment,omitempty"`
	FirstLoginYN   string `json:"first_login_yn"`
	IsDeleteYN     string `json:"is_delete_yn,omitempty"`
}

// UserClient covers the /user blueprint.
type UserClient struct {
	gw *gateway.Gateway
}

// Users lists all active accounts.
func (c *UserClient) Users(ctx context.Context) ([]User, error) {
	var body struct {
		Users []User `json:"users"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/user/get_users", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[UserClient.Users]")
	}
	return body.Users, nil
}

// PendingUsers lists signups awaiting approval.
func (c *UserClient) PendingUsers(ctx context.Context) ([]User, error) {
	var body struct {
		Users []User `json:"users"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/user/get_pending_users", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[UserClient.PendingUsers]")
	}
	return body.Users, nil
}

// User fetches a single account by id.
func (c *UserClient) User(ctx context.Context, userID string) (*User, error) {
	path := "/user/get_user?user_id=" + url.QueryEscape(userID)
	var body struct {
		User User `json:"user"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[UserClient.User]")
	}
	return &body.User, nil
}
