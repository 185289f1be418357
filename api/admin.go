package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Role is an assignable role identifier with its display label.
type Role struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// AdminClient covers the /admin blueprint. Every operation here requires
// the AD_ADMIN role server-side; use gateway.CheckRole for the pre-flight
// check before offering these in a UI.
type AdminClient struct {
	gw *gateway.Gateway
}

// AddUser registers an account on a user's behalf.
func (c *AdminClient) AddUser(ctx context.Context, u User, password string) error {
	in := struct {
		User
		Password string `json:"password"`
	}{u, password}
	return c.gw.DoJSON(ctx, http.MethodPost, "/admin/add_user", in, nil)
}

// UpdateUser edits an account's profile fields.
func (c *AdminClient) UpdateUser(ctx context.Context, u User) error {
	return c.gw.DoJSON(ctx, http.MethodPut, "/admin/update_user", u, nil)
}

// DeleteUser soft-deletes an account.
func (c *AdminClient) DeleteUser(ctx context.Context, userID string) error {
	path := "/admin/delete_user/" + url.PathEscape(userID)
	return c.gw.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

// UpdateRole assigns a role to an account.
func (c *AdminClient) UpdateRole(ctx context.Context, userID, roleID string) error {
	in := map[string]string{"user_id": userID, "role_id": roleID}
	return c.gw.DoJSON(ctx, http.MethodPut, "/admin/update_role_id", in, nil)
}

// Roles lists the assignable roles.
func (c *AdminClient) Roles(ctx context.Context) ([]Role, error) {
	var body struct {
		Roles []Role `json:"roles"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/admin/get_role_list", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[AdminClient.Roles]")
	}
	return body.Roles, nil
}

// Positions lists the known job positions.
func (c *AdminClient) Positions(ctx context.Context) ([]string, error) {
	var body struct {
		Positions []string `json:"positions"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/admin/get_position_list", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[AdminClient.Positions]")
	}
	return body.Positions, nil
}

// UpdateUserStatus sets another user's presence status.
func (c *AdminClient) UpdateUserStatus(ctx context.Context, userID, statusID string) error {
	in := map[string]string{"user_id": userID, "status": statusID}
	return c.gw.DoJSON(ctx, http.MethodPut, "/admin/update_status_admin", in, nil)
}
