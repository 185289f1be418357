package gateway

// Decision classifies a pre-flight role check.
type Decision int

const (
	// Authorized means the role is one of the permitted roles.
	Authorized Decision = iota
	// Denied means the user is logged in but the role is not permitted.
	Denied
	// SessionInvalid means no role is available at all, which implies the
	// session context never loaded or has been lost.
	SessionInvalid
)

func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case Denied:
		return "denied"
	case SessionInvalid:
		return "session invalid"
	}
	return "unknown"
}

// CheckRole is a pure predicate over the current user's role identifier and
// the set of permitted roles. It distinguishes a missing role (lost session)
// from a present-but-unpermitted one, so callers can choose to show a
// "no permission" page instead of tearing the session down.
func CheckRole(roleID string, permitted ...string) Decision {
	if roleID == "" {
		return SessionInvalid
	}
	for _, p := range permitted {
		if p == roleID {
			return Authorized
		}
	}
	return Denied
}

// RequireRole preserves the legacy coupling of authorization denial and
// session termination: any outcome other than Authorized forces a logout
// and reports false. New callers should prefer CheckRole and decide the
// denial treatment themselves.
func (g *Gateway) RequireRole(roleID string, permitted ...string) bool {
	decision := CheckRole(roleID, permitted...)
	if decision == Authorized {
		return true
	}
	g.log.Info().
		Str("role_id", roleID).
		Stringer("decision", decision).
		Msg("role check failed, terminating session")
	g.Logout()
	return false
}
