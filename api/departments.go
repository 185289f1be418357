package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Department is one row of the department register.
type Department struct {
	DepartmentID   string `json:"dpr_id"`
	DepartmentName string `json:"dpr_nm"`
	TeamName       string `json:"team_nm,omitempty"`
}

// DepartmentClient covers the /department blueprint.
type DepartmentClient struct {
	gw *gateway.Gateway
}

// Departments lists all departments.
func (c *DepartmentClient) Departments(ctx context.Context) ([]Department, error) {
	var body struct {
		Departments []Department `json:"departments"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/department/get_department_list", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[DepartmentClient.Departments]")
	}
	return body.Departments, nil
}

// Department fetches a single department by id.
func (c *DepartmentClient) Department(ctx context.Context, departmentID string) (*Department, error) {
	var body struct {
		Department Department `json:"department"`
	}
	path := "/department/get_department/" + url.PathEscape(departmentID)
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[DepartmentClient.Department]")
	}
	return &body.Department, nil
}

// CreateDepartment registers a department.
func (c *DepartmentClient) CreateDepartment(ctx context.Context, d Department) error {
	return c.gw.DoJSON(ctx, http.MethodPost, "/department/create_department", d, nil)
}

// UpdateDepartment renames a department or its team.
func (c *DepartmentClient) UpdateDepartment(ctx context.Context, departmentID string, d Department) error {
	path := "/department/update_department/" + url.PathEscape(departmentID)
	return c.gw.DoJSON(ctx, http.MethodPut, path, d, nil)
}

// DeleteDepartment removes a department.
func (c *DepartmentClient) DeleteDepartment(ctx context.Context, departmentID string) error {
	path := "/department/delete_department/" + url.PathEscape(departmentID)
	return c.gw.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}
