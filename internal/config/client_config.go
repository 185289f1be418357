package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	apiURLVar         = "API_URL"
	requestTimeoutVar = "REQUEST_TIMEOUT_SECONDS"
	tokenFileVar      = "TOKEN_FILE"
)

type Client struct{}

var _ ClientConfig = Client{}

// GetAPIURL returns the backend base URL all resource paths resolve against.
func (Client) GetAPIURL() string {
	return GetEnv(apiURLVar, "http://localhost:5000")
}

// GetRequestTimeout returns the per-request timeout for authenticated calls.
func (Client) GetRequestTimeout() time.Duration {
	seconds, err := strconv.Atoi(GetEnv(requestTimeoutVar, "15"))
	if err != nil || seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}

// GetTokenFile returns the path of the persisted token pair used by the CLI.
func (Client) GetTokenFile() string {
	if path := os.Getenv(tokenFileVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".intraclient/tokens.json"
	}
	return filepath.Join(home, ".intraclient", "tokens.json")
}
