// Package api provides typed clients for the intranet backend's REST
// blueprints. Every call goes through the session gateway, so token refresh
// and forced logout are transparent to these clients; they only translate
// between Go types and the backend's JSON shapes.
package api

import (
	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Client groups the per-resource clients over a single gateway.
type Client struct {
	Auth        *AuthClient
	Users       *UserClient
	Projects    *ProjectClient
	Schedules   *ScheduleClient
	Notices     *NoticeClient
	Departments *DepartmentClient
	Statuses    *StatusClient
	Favorites   *FavoriteClient
	Menus       *MenuClient
	Admin       *AdminClient
}

// New creates the resource clients over gw.
func New(gw *gateway.Gateway) (*Client, error) {
	if gw == nil {
		return nil, errors.New("[api.New] gateway is required")
	}
	return &Client{
		Auth:        &AuthClient{gw: gw},
		Users:       &UserClient{gw: gw},
		Projects:    &ProjectClient{gw: gw},
		Schedules:   &ScheduleClient{gw: gw},
		Notices:     &NoticeClient{gw: gw},
		Departments: &DepartmentClient{gw: gw},
		Statuses:    &StatusClient{gw: gw},
		Favorites:   &FavoriteClient{gw: gw},
		Menus:       &MenuClient{gw: gw},
		Admin:       &AdminClient{gw: gw},
	}, nil
}
