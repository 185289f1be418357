// Package gateway wraps every authenticated call to the intranet backend.
// It attaches the bearer and refresh credentials, detects access-token
// expiry, performs a single coalesced refresh-and-retry, and forces logout
// when the session cannot be recovered. Page-level callers never see
// refresh semantics: a request either succeeds, fails with the server's
// response, or fails after the session has already been terminated.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/bumilsoft/intraclient/session"
)

const (
	refreshTokenHeader = "X-Refresh-Token"
	requestIDHeader    = "X-Request-ID"
	refreshPath        = "/auth/refresh_token"

	// All concurrent callers share one in-flight refresh.
	refreshFlightKey = "refresh"

	defaultTimeout = 15 * time.Second
)

// ErrRefreshFailed marks an unrecoverable credential failure: the refresh
// endpoint rejected the refresh token. By the time a caller observes it the
// session has already been cleared and the logout hook fired.
var ErrRefreshFailed = errors.New("refresh token rejected")

// Gateway issues authenticated requests against a single backend base URL.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	onLogout   func()
	flight     singleflight.Group
	log        zerolog.Logger
}

// Option modifies a Gateway during construction.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.httpClient.Timeout = d
	}
}

// WithLogoutFunc sets the side effect invoked on forced logout, after the
// stored tokens have been cleared. In the browser-era client this was a hard
// navigation to the unauthenticated entry point; a CLI typically prints a
// re-login prompt.
func WithLogoutFunc(fn func()) Option {
	return func(g *Gateway) {
		g.onLogout = fn
	}
}

// WithLogger sets the logger used for request and session events.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

// New creates a Gateway for the backend at baseURL, reading and writing
// credentials through store.
func New(baseURL string, store session.Store, options ...Option) (*Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("[gateway.New] baseURL is required")
	}
	if store == nil {
		return nil, errors.New("[gateway.New] session store is required")
	}

	g := &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      store,
		onLogout:   func() {},
		log:        zerolog.Nop(),
	}

	for _, opt := range options {
		opt(g)
	}

	return g, nil
}

// BaseURL returns the backend base URL the gateway was built with.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// HTTPClient exposes the underlying HTTP client for the few calls that must
// bypass the authenticated path, such as the initial credential exchange.
func (g *Gateway) HTTPClient() *http.Client {
	return g.httpClient
}

// Do issues an authenticated request. path is resolved against the base URL
// and body, when non-nil, is sent as a JSON payload. Callers must not set
// Authorization themselves; the gateway injects the credential headers.
//
// A 401 on the first attempt triggers exactly one refresh followed by one
// retry with the new access token. If the refresh fails the session is
// terminated and the original 401 response is returned as-is. Every other
// status, including a 401 on the retry, is returned unmodified: the gateway
// does not interpret 403/404/5xx, that is caller responsibility.
func (g *Gateway) Do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	reqID := uuid.NewString()

	pair, err := g.store.Get()
	if err != nil {
		// Missing credentials never block a request client-side; send it
		// and let the server reject.
		g.log.Warn().Str("request_id", reqID).Err(err).Msg("token store read failed")
		pair = session.TokenPair{}
	}

	resp, err := g.send(ctx, method, path, body, pair, reqID)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	g.log.Debug().Str("request_id", reqID).Str("path", path).Msg("access token expired, refreshing")

	newAccess, err := g.refreshAccessToken(ctx, pair)
	if err != nil {
		// Session already terminated; surface the original response.
		return resp, nil
	}
	resp.Body.Close()

	pair.AccessToken = newAccess
	return g.send(ctx, method, path, body, pair, reqID)
}

// send performs a single HTTP round trip with the credential headers set.
func (g *Gateway) send(ctx context.Context, method, path string, body []byte, pair session.TokenPair, reqID string) (*http.Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "[Gateway.send] NewRequestWithContext")
	}

	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if pair.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	if pair.RefreshToken != "" {
		req.Header.Set(refreshTokenHeader, pair.RefreshToken)
	}
	req.Header.Set(requestIDHeader, reqID)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "[Gateway.send] %s %s", method, path)
	}

	g.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("request completed")

	return resp, nil
}

// refreshAccessToken exchanges the refresh token for a new access token.
// Concurrent callers are coalesced into one in-flight exchange whose outcome
// they all share, so a burst of parallel 401s performs a single refresh and
// at most one forced logout.
func (g *Gateway) refreshAccessToken(ctx context.Context, pair session.TokenPair) (string, error) {
	token, err, _ := g.flight.Do(refreshFlightKey, func() (interface{}, error) {
		access, err := g.exchangeRefreshToken(ctx, pair)
		if err != nil {
			g.log.Warn().Err(err).Msg("token refresh failed, terminating session")
			g.Logout()
			return "", err
		}

		// Persistence is best-effort: the exchange succeeded, so the retry
		// proceeds with the fresh token even if it could not be stored. The
		// next expiry simply refreshes again.
		if err := g.store.Set(session.TokenPair{
			AccessToken:  access,
			RefreshToken: pair.RefreshToken,
		}); err != nil {
			g.log.Warn().Err(err).Msg("failed to persist refreshed access token")
		}
		return access, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// exchangeRefreshToken performs the refresh POST. The expiring access token
// rides along in the Authorization header for server-side correlation.
func (g *Gateway) exchangeRefreshToken(ctx context.Context, pair session.TokenPair) (string, error) {
	payload, err := json.Marshal(map[string]string{"refresh_token": pair.RefreshToken})
	if err != nil {
		return "", errors.Wrap(err, "[Gateway.exchangeRefreshToken] Marshal")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "[Gateway.exchangeRefreshToken] NewRequestWithContext")
	}
	req.Header.Set("Content-Type", "application/json")
	if pair.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	if pair.RefreshToken != "" {
		req.Header.Set(refreshTokenHeader, pair.RefreshToken)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "[Gateway.exchangeRefreshToken] Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Wrapf(ErrRefreshFailed, "status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "[Gateway.exchangeRefreshToken] Decode")
	}
	if body.AccessToken == "" {
		return "", errors.Wrap(ErrRefreshFailed, "empty access_token in response")
	}
	return body.AccessToken, nil
}

// Logout clears both stored tokens and fires the logout side effect. The
// gateway calls it on unrecoverable refresh failure; callers may invoke it
// directly for an explicit logout.
func (g *Gateway) Logout() {
	if err := g.store.Clear(); err != nil {
		g.log.Warn().Err(err).Msg("failed to clear token store on logout")
	}
	g.log.Info().Msg("session terminated")
	g.onLogout()
}

// StatusError carries a non-2xx backend response decoded by DoJSON.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// DoJSON issues an authenticated request with an optional JSON body and
// decodes the JSON response into out. A non-2xx response is returned as a
// *StatusError carrying the backend's message field when one is present.
func (g *Gateway) DoJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "[Gateway.DoJSON] Marshal")
		}
	}

	resp, err := g.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverMsg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&serverMsg)
		return &StatusError{Code: resp.StatusCode, Message: serverMsg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Gateway.DoJSON] decode %s", path)
	}
	return nil
}
