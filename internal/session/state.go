package session

// State is the explicit session status. Inferring "logged in" from a
// nullable user invites half-authenticated views; the tagged state
// cannot express them.
type State uint8

const (
	StateLoggedOut State = iota
	StateAuthenticating
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged out"
	case StateAuthenticating:
		return "authenticating"
	case StateLoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}
