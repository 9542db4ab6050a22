// Package session holds the client's authentication state machine:
//
//	Anonymous ──signup/login──▶ Authenticating ──ok──▶ Authenticated
//	    ▲                            │                      │
//	    │                            └──fail──▶ AuthError   │
//	    └────────────clear/logout─────────────────┘◀──logout─┘
//
// At most one auth operation is outstanding at a time; a second one is
// rejected with ErrAuthInProgress rather than queued.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/codecrafted/internal/client/client"
	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/client/notify"
	"github.com/dmitrijs2005/codecrafted/internal/logging"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgAccountExists      = "An account with this email already exists"
	msgUnavailable        = "Service is unavailable. Please try again later."
	msgSignupFailed       = "Failed to create account. Please try again."
	msgLoginFailed        = "Failed to sign in. Please try again."
)

type operation string

const (
	opSignup operation = "signup"
	opLogin  operation = "login"
	opLogout operation = "logout"
)

// Store is the single source of truth for "who is the current user".
// All methods are safe for concurrent use.
type Store struct {
	auth     client.AuthDataSource
	log      logging.Logger
	validate *validator.Validate
	hub      notify.Hub[State]

	mu    sync.Mutex
	state State
}

// NewStore returns an anonymous session backed by auth.
func NewStore(auth client.AuthDataSource, log logging.Logger) *Store {
	return &Store{
		auth:     auth,
		log:      log.With("component", "session"),
		validate: newValidator(),
		state:    State{Status: StatusAnonymous},
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every subsequent transition.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	return s.hub.Subscribe(fn)
}

// transition applies mutate under the state lock and publishes the result
// when mutate reports a change.
func (s *Store) transition(mutate func(st *State) bool) {
	s.hub.Emit(func() (State, bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !mutate(&s.state) {
			return State{}, false
		}
		return s.state.clone(), true
	})
}

// Signup validates profile locally, then creates the account remotely. On
// success the session is authenticated as the new user.
func (s *Store) Signup(ctx context.Context, profile models.SignupProfile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Role = models.Role(strings.ToLower(strings.TrimSpace(string(profile.Role))))

	if err := validateForm(s.validate, profile); err != nil {
		return err
	}
	if err := s.begin(); err != nil {
		return err
	}

	user, err := call(func() (*models.UserProfile, error) {
		return s.auth.Signup(ctx, profile)
	})
	return s.finish(ctx, opSignup, user, err)
}

// Login validates credentials locally, then authenticates remotely.
func (s *Store) Login(ctx context.Context, credentials models.Credentials) error {
	credentials.Email = strings.TrimSpace(credentials.Email)

	if err := validateForm(s.validate, credentials); err != nil {
		return err
	}
	if err := s.begin(); err != nil {
		return err
	}

	user, err := call(func() (*models.UserProfile, error) {
		return s.auth.Login(ctx, credentials)
	})
	return s.finish(ctx, opLogin, user, err)
}

func (s *Store) begin() error {
	var rejected error
	s.transition(func(st *State) bool {
		switch st.Status {
		case StatusAuthenticating:
			rejected = ErrAuthInProgress
			return false
		case StatusAuthenticated:
			rejected = ErrAlreadyAuthenticated
			return false
		}
		*st = State{Status: StatusAuthenticating, Pending: true}
		return true
	})
	return rejected
}

func (s *Store) finish(ctx context.Context, op operation, user *models.UserProfile, err error) error {
	if err == nil && user == nil {
		err = fmt.Errorf("%s returned no user", op)
	}

	if err != nil {
		msg := failureMessage(op, err)
		s.log.Warn(ctx, "auth failed", "op", op, "error", err)
		s.transition(func(st *State) bool {
			*st = State{Status: StatusAuthError, Error: msg}
			return true
		})
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	u := *user
	s.log.Info(ctx, "authenticated", "op", op, "user_id", u.ID, "role", u.Role)
	s.transition(func(st *State) bool {
		*st = State{Status: StatusAuthenticated, User: &u}
		return true
	})
	return nil
}

// Logout ends the session. From Anonymous it does nothing, and from
// AuthError it only discards the error. A remote failure is reported as
// ErrLogoutFailed but the session still ends anonymous.
func (s *Store) Logout(ctx context.Context) error {
	var (
		rejected error
		remote   bool
	)
	s.transition(func(st *State) bool {
		switch st.Status {
		case StatusAnonymous:
			return false
		case StatusAuthenticating:
			rejected = ErrAuthInProgress
			return false
		case StatusAuthError:
			*st = State{Status: StatusAnonymous}
			return true
		}
		remote = true
		st.Status = StatusAuthenticating
		st.Pending = true
		st.Error = ""
		return true
	})
	if rejected != nil || !remote {
		return rejected
	}

	_, err := call(func() (struct{}, error) {
		return struct{}{}, s.auth.Logout(ctx)
	})

	s.transition(func(st *State) bool {
		*st = State{Status: StatusAnonymous}
		return true
	})

	if err != nil {
		s.log.Warn(ctx, "remote logout failed", "error", err)
		return fmt.Errorf("%w: %w", ErrLogoutFailed, err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// ClearError returns an AuthError session to Anonymous. It is a no-op in
// every other state.
func (s *Store) ClearError() {
	s.transition(func(st *State) bool {
		if st.Status != StatusAuthError {
			return false
		}
		*st = State{Status: StatusAnonymous}
		return true
	})
}

// call turns a panicking data source into an error so the session cannot
// be left in StatusAuthenticating.
func call[T any](fn func() (T, error)) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("auth data source panic: %v", r)
		}
	}()
	return fn()
}

func failureMessage(op operation, err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return msgInvalidCredentials
	case errors.Is(err, client.ErrAlreadyExists):
		return msgAccountExists
	case errors.Is(err, client.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return msgUnavailable
	}
	if op == opSignup {
		return msgSignupFailed
	}
	return msgLoginFailed
}
