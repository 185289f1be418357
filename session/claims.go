package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claims are the fields the backend embeds in its access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	RoleID string `json:"role_id"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the claims of an access token without verifying the
// signature. The signing secret never leaves the backend, so claims parsed
// here are only suitable for display and pre-flight role checks; the server
// re-validates the token on every request.
func ParseClaims(accessToken string) (*Claims, error) {
	if accessToken == "" {
		return nil, errors.New("[ParseClaims] access token is empty")
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, errors.Wrap(err, "[ParseClaims] ParseUnverified")
	}
	return claims, nil
}
