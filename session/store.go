package session

// TokenPair is the credential pair issued at login. AccessToken is the
// short-lived bearer credential attached to every API call; RefreshToken is
// the longer-lived credential exchanged for a new access token when the
// access token expires. The backend reuses the refresh token across
// refreshes, so only AccessToken is replaced during a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Empty reports whether neither credential is present.
func (p TokenPair) Empty() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

// Store holds the single authoritative token pair for a running client.
// The gateway reads the pair at the start of every request and overwrites
// the access token after a successful refresh; the login flow writes the
// initial pair and logout clears both. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the current token pair. A missing pair is not an error:
	// implementations return a zero TokenPair so the gateway can still send
	// the request and let the server reject it.
	Get() (TokenPair, error)

	// Set replaces the stored token pair.
	Set(TokenPair) error

	// Clear removes both tokens.
	Clear() error
}
