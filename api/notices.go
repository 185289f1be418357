package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
)

// Notice is one notice-board posting.
type Notice struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	UserID        string `json:"user_id"`
	CreatedBy     string `json:"created_by,omitempty"`
	CreatedByName string `json:"created_by_name,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
	IsDeleteYN    string `json:"is_delete_yn,omitempty"`
}

// NoticeClient covers the /notice blueprint.
type NoticeClient struct {
	gw *gateway.Gateway
}

// Notices lists active postings, newest first.
func (c *NoticeClient) Notices(ctx context.Context) ([]Notice, error) {
	var body struct {
		Notices []Notice `json:"notices"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/notice/get_notice_list", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[NoticeClient.Notices]")
	}
	return body.Notices, nil
}

// Notice fetches a single posting.
func (c *NoticeClient) Notice(ctx context.Context, noticeID int) (*Notice, error) {
	var body struct {
		Notice Notice `json:"notice"`
	}
	path := fmt.Sprintf("/notice/get_notice/%d", noticeID)
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, errors.Wrap(err, "[NoticeClient.Notice]")
	}
	return &body.Notice, nil
}

// CreateNotice publishes a posting.
func (c *NoticeClient) CreateNotice(ctx context.Context, title, content string) error {
	in := map[string]string{"title": title, "content": content}
	return c.gw.DoJSON(ctx, http.MethodPost, "/notice/create_notice", in, nil)
}

// UpdateNotice edits a posting.
func (c *NoticeClient) UpdateNotice(ctx context.Context, noticeID int, title, content string) error {
	in := map[string]string{"title": title, "content": content}
	path := fmt.Sprintf("/notice/update_notice/%d", noticeID)
	return c.gw.DoJSON(ctx, http.MethodPut, path, in, nil)
}

// DeleteNotice soft-deletes a posting.
func (c *NoticeClient) DeleteNotice(ctx context.Context, noticeID int) error {
	path := fmt.Sprintf("/notice/delete_notice/%d", noticeID)
	return c.gw.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

// RestoreNotice undoes a soft delete.
func (c *NoticeClient) RestoreNotice(ctx context.Context, noticeID int) error {
	path := fmt.Sprintf("/notice/restore_notice/%d", noticeID)
	return c.gw.DoJSON(ctx, http.MethodPut, path, nil, nil)
}
