package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Menu is one entry of the navigation menu register, ordered by MenuOrder.
type Menu struct {
	MenuID    string `json:"menu_id"`
	MenuName  string `json:"menu_nm"`
	MenuOrder int    `json:"menu_order"`
	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

// MenuClient covers the /menu blueprint.
type MenuClient struct {
	gw *gateway.Gateway
}

// Menus lists the menu entries in display order.
func (c *MenuClient) Menus(ctx context.Context) ([]Menu, error) {
	var body struct {
		Menus []Menu `json:"menus"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/menu/get_menu_list", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[MenuClient.Menus]")
	}
	return body.Menus, nil
}

// CreateMenu registers a menu entry. The backend rejects a duplicate menu id
// with a 400 and the message text.
func (c *MenuClient) CreateMenu(ctx context.Context, m Menu) error {
	in := map[string]any{
		"menu_id":    m.MenuID,
		"menu_nm":    m.MenuName,
		"menu_order": m.MenuOrder,
	}
	return c.gw.DoJSON(ctx, http.MethodPost, "/menu/create_menu", in, nil)
}

// UpdateMenu renames a menu entry or changes its display order.
func (c *MenuClient) UpdateMenu(ctx context.Context, menuID, menuName string, menuOrder int) error {
	in := map[string]any{
		"menu_nm":    menuName,
		"menu_order": menuOrder,
	}
	path := "/menu/update_menu/" + url.PathEscape(menuID)
	return c.gw.DoJSON(ctx, http.MethodPut, path, in, nil)
}

// DeleteMenu removes a menu entry.
func (c *MenuClient) DeleteMenu(ctx context.Context, menuID string) error {
	path := "/menu/delete_menu/" + url.PathEscape(menuID)
	return c.gw.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}
