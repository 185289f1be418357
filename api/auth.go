package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bumilsoft/intraclient/gateway"
	"github.com/bumilsoft/intraclient/session"
)

// AuthClient covers the /auth blueprint.
type AuthClient struct {
	gw *gateway.Gateway
}

// LoginResult is the outcome of a successful credential exchange.
type LoginResult struct {
	Tokens     session.TokenPair
	UserID     string
	FirstLogin bool
}

// Login exchanges credentials for a token pair. It deliberately bypasses the
// gateway's authenticated path: there is no session yet, and a 401 here
// means wrong credentials rather than an expired token. On success the pair
// is written to store so subsequent gateway calls pick it up.
func (c *AuthClient) Login(ctx context.Context, store session.Store, userID, password string) (*LoginResult, error) {
	payload, err := json.Marshal(map[string]string{"id": userID, "password": password})
	if err != nil {
		return nil, errors.Wrap(err, "[AuthClient.Login] Marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gw.BaseURL()+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "[AuthClient.Login] NewRequestWithContext")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.gw.HTTPClient().Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "[AuthClient.Login] Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var serverMsg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&serverMsg)
		return nil, &gateway.StatusError{Code: resp.StatusCode, Message: serverMsg.Message}
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		Token        string `json:"token"` // legacy single-token field
		User         struct {
			ID           string `json:"id"`
			FirstLoginYN string `json:"first_login_yn"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "[AuthClient.Login] Decode")
	}

	pair := session.TokenPair{AccessToken: body.AccessToken, RefreshToken: body.RefreshToken}
	if pair.AccessToken == "" {
		pair.AccessToken = body.Token
	}
	if store != nil {
		if err := store.Set(pair); err != nil {
			return nil, errors.Wrap(err, "[AuthClient.Login] store.Set")
		}
	}

	return &LoginResult{
		Tokens:     pair,
		UserID:     body.User.ID,
		FirstLogin: body.User.FirstLoginYN != "N",
	}, nil
}

// SignupRequest is a self-registration application. The account is created
// with the default general role and sits in the pending list until an admin
// approves it.
type SignupRequest struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
}

// Signup submits a self-registration. Like Login it bypasses the gateway's
// authenticated path: the applicant has no session.
func (c *AuthClient) Signup(ctx context.Context, r SignupRequest) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "[AuthClient.Signup] Marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gw.BaseURL()+"/auth/signup", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "[AuthClient.Signup] NewRequestWithContext")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.gw.HTTPClient().Do(req)
	if err != nil {
		return errors.Wrap(err, "[AuthClient.Signup] Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverMsg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&serverMsg)
		return &gateway.StatusError{Code: resp.StatusCode, Message: serverMsg.Message}
	}
	return nil
}

// LoggedInUser fetches the profile of the session's user.
func (c *AuthClient) LoggedInUser(ctx context.Context) (*User, error) {
	var body struct {
		User User `json:"user"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/auth/get_logged_in_user", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[AuthClient.LoggedInUser]")
	}
	return &body.User, nil
}

// ChangePassword updates the session user's password.
func (c *AuthClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	in := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.gw.DoJSON(ctx, http.MethodPut, "/auth/change_password", in, nil)
}

// LogLogin records a login event for the audit trail.
func (c *AuthClient) LogLogin(ctx context.Context, userID string) error {
	in := map[string]string{"user_id": userID}
	return c.gw.DoJSON(ctx, http.MethodPost, "/auth/log_login", in, nil)
}

// LoginLog is one row of the login audit trail.
type LoginLog struct {
	ID        int    `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	IPAddress string `json:"ip_address"`
	CreatedAt string `json:"created_at"`
}

// LoginLogs lists the login audit trail. Admin only.
func (c *AuthClient) LoginLogs(ctx context.Context) ([]LoginLog, error) {
	var body struct {
		Logs []LoginLog `json:"logs"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/auth/get_login_logs", nil, &body); err != nil {
		return nil, errors.Wrap(err, "[AuthClient.LoginLogs]")
	}
	return body.Logs, nil
}
