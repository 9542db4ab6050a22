package session

import "github.com/dmitrijs2005/codecrafted/internal/client/models"

// Status is the session state machine position.
type Status int

const (
	StatusAnonymous Status = iota
	StatusAuthenticating
	StatusAuthenticated
	StatusAuthError
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAuthError:
		return "auth_error"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of the session.
//
// User is set in StatusAuthenticated and while a logout started from there
// is pending; it is nil otherwise. Error is only set in StatusAuthError.
type State struct {
	Status  Status
	User    *models.UserProfile
	Error   string
	Pending bool
}

// LoggedIn reports whether a user is present.
func (s State) LoggedIn() bool {
	return s.User != nil
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
