package session

import "errors"

var (
	// ErrAuthInProgress rejects a second auth operation while one is outstanding.
	ErrAuthInProgress = errors.New("an auth operation is already in progress")
	// ErrAlreadyAuthenticated rejects signup/login on an authenticated session.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	// ErrAuthFailed wraps a remote signup/login rejection.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrLogoutFailed wraps a remote logout failure. The local session is
	// anonymous regardless.
	ErrLogoutFailed = errors.New("remote logout failed")
)
