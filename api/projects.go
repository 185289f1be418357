package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Project is a row of the project register. The date fields stay as the
// backend's strings; temporal.ParseInterval turns them into comparable days
// at the point of projection.
type Project struct {
	ProjectCode         string   `json:"project_code"`
	ProjectName         string   `json:"project_name"`
	Category            string   `json:"category,omitempty"`
	Status              string   `json:"status,omitempty"`
	BusinessStartDate   string   `json:"business_start_date,omitempty"`
	BusinessEndDate     string   `json:"business_end_date,omitempty"`
	Customer            string   `json:"customer,omitempty"`
	Supplier            string   `json:"supplier,omitempty"`
	PersonInCharge      string   `json:"person_in_charge,omitempty"`
	ContactNumber       string   `json:"contact_number,omitempty"`
	SalesRepresentative string   `json:"sales_representative,omitempty"`
	ProjectPM           string   `json:"project_pm,omitempty"`
	ProjectManager      string   `json:"project_manager,omitempty"`
	GroupName           string   `json:"group_name,omitempty"`
	IsDeleteYN          string   `json:"is_delete_yn,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
	AssignedUserIDs     []string `json:"assigned_user_ids,omitempty"`
}

// Participation is one user's participation span in one project, the raw
// material of the situation-control chart.
type Participation struct {
	ID          int    `json:"id"`
	ProjectCode string `json:"project_code"`
	ProjectName string `json:"project_name"`
	UserID      string `json:"user_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsDeleteYN  string `json:"is_delete_yn,omitempty"`
}

// ProjectClient covers the /project blueprint.
type ProjectClient struct {
	gw *gateway.Gateway
}

// AllProjects lists every active project with its assigned user ids.
func (c *ProjectClient) AllProjects(ctx context.Context) ([]Project, error) {
	var body struct {
		Projects []Project `json:"projects"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/project/get_all_project", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[ProjectClient.AllProjects]")
	}
	return body.Projects, nil
}

// SearchProjects lists projects whose name matches the query substring.
func (c *ProjectClient) SearchProjects(ctx context.Context, query string) ([]Project, error) {
	path := "/project/get_search_project?query=" + url.QueryEscape(query)
	var body struct {
		Projects []Project `json:"projects"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[ProjectClient.SearchProjects]")
	}
	return body.Projects, nil
}

// ProjectDetails fetches one project with its participation spans.
func (c *ProjectClient) ProjectDetails(ctx context.Context, projectCode string) (*Project, []Participation, error) {
	path := "/project/get_project_details?project_code=" + url.QueryEscape(projectCode)
	var body struct {
		Project      Project         `json:"project"`
		Participants []Participation `json:"participants"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, nil, errors.Wrap(err, "[ProjectClient.ProjectDetails]")
	}
	return &body.Project, body.Participants, nil
}

// AddProject registers a new project together with its participants.
func (c *ProjectClient) AddProject(ctx context.Context, project Project, participants []Participation) error {
	in := struct {
		Project      Project         `json:"project"`
		Participants []Participation `json:"participants"`
	}{project, participants}
	return c.gw.DoJSON(ctx, http.MethodPost, "/project/add_project", in, nil)
}

// EditProject updates a project and its participant spans.
func (c *ProjectClient) EditProject(ctx context.Context, project Project, participants []Participation) error {
	in := struct {
		Project      Project         `json:"project"`
		Participants []Participation `json:"participants"`
	}{project, participants}
	return c.gw.DoJSON(ctx, http.MethodPost, "/project/edit_project", in, nil)
}

// DeleteProject soft-deletes a project. The backend flips is_delete_yn
// rather than removing the row, hence the PUT.
func (c *ProjectClient) DeleteProject(ctx context.Context, projectCode string) error {
	return c.gw.DoJSON(ctx, http.MethodPut, "/project/delete_project/"+url.PathEscape(projectCode), nil, nil)
}

// UserProjects lists the participation spans of one user.
func (c *ProjectClient) UserProjects(ctx context.Context, userID string) ([]Participation, error) {
	path := "/project/get_user_and_projects?user_id=" + url.QueryEscape(userID)
	var body struct {
		Participants []Participation `json:"participants"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[ProjectClient.UserProjects]")
	}
	return body.Participants, nil
}

// UsersProjects fetches the users and participation spans for a set of user
// ids in one round trip; this is the situation-control feed.
func (c *ProjectClient) UsersProjects(ctx context.Context, userIDs []string) ([]User, []Participation, error) {
	in := struct {
		UserIDs []string `json:"user_ids"`
	}{userIDs}
	var body struct {
		Users        []User          `json:"users"`
		Participants []Participation `json:"participants"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/project/get_users_and_projects", in, &body); err != nil {
		return nil, nil, errors.Wrap(err, "[ProjectClient.UsersProjects]")
	}
	return body.Users, body.Participants, nil
}
