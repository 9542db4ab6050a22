package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/client/client"
	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	mu      sync.Mutex
	calls   []string
	user    *models.UserProfile
	err     error
	logout  error
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeAuth) record(op string) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeAuth) Signup(ctx context.Context, p models.SignupProfile) (*models.UserProfile, error) {
	f.record("signup")
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuth) Login(ctx context.Context, c models.Credentials) (*models.UserProfile, error) {
	f.record("login")
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.record("logout")
	return f.logout
}

func (f *fakeAuth) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

var ann = &models.UserProfile{ID: "u-1", Name: "Ann", Email: "ann@x.com", Role: models.RoleStudent}

func validSignup() models.SignupProfile {
	return models.SignupProfile{Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: models.RoleStudent}
}

func recordStates(s *Store) func() []State {
	var (
		mu     sync.Mutex
		states []State
	)
	s.Subscribe(func(st State) {
		mu.Lock()
		states = append(states, st)
		mu.Unlock()
	})
	return func() []State {
		mu.Lock()
		defer mu.Unlock()
		return append([]State(nil), states...)
	}
}

func statuses(states []State) []Status {
	out := make([]Status, len(states))
	for i, st := range states {
		out[i] = st.Status
	}
	return out
}

func TestStore_Signup_Success(t *testing.T) {
	auth := &fakeAuth{user: ann}
	s := NewStore(auth, logging.Nop())
	seen := recordStates(s)

	require.NoError(t, s.Signup(context.Background(), validSignup()))

	st := s.State()
	assert.Equal(t, StatusAuthenticated, st.Status)
	require.NotNil(t, st.User)
	assert.Equal(t, models.RoleStudent, st.User.Role)
	assert.Empty(t, st.Error)
	assert.False(t, st.Pending)
	assert.Equal(t, []Status{StatusAuthenticating, StatusAuthenticated}, statuses(seen()))
	assert.Equal(t, []string{"signup"}, auth.Calls())
}

func TestStore_Signup_NormalizesInput(t *testing.T) {
	auth := &fakeAuth{user: ann}
	s := NewStore(auth, logging.Nop())

	p := validSignup()
	p.Name = "  Ann "
	p.Email = " ann@x.com "
	p.Role = " Student "
	require.NoError(t, s.Signup(context.Background(), p))
}

func TestStore_Signup_ValidationRejectsBeforeRemote(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.SignupProfile)
		field   string
		message string
	}{
		{"empty name", func(p *models.SignupProfile) { p.Name = "" }, "name", "Name is required"},
		{"blank name", func(p *models.SignupProfile) { p.Name = "   " }, "name", "Name is required"},
		{"empty email", func(p *models.SignupProfile) { p.Email = "" }, "email", "Email is required"},
		{"bad email", func(p *models.SignupProfile) { p.Email = "ann" }, "email", "Invalid email address"},
		{"empty password", func(p *models.SignupProfile) { p.Password = "" }, "password", "Password is required"},
		{"short password", func(p *models.SignupProfile) { p.Password = "12345" }, "password", "Password must be at least 6 characters"},
		{"unknown role", func(p *models.SignupProfile) { p.Role = "admin" }, "role", "Invalid role"},
		{"missing role", func(p *models.SignupProfile) { p.Role = "" }, "role", "Role is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{user: ann}
			s := NewStore(auth, logging.Nop())
			seen := recordStates(s)

			p := validSignup()
			tt.mutate(&p)
			err := s.Signup(context.Background(), p)

			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Field(tt.field))

			assert.Equal(t, StatusAnonymous, s.State().Status)
			assert.Empty(t, seen())
			assert.Empty(t, auth.Calls())
		})
	}
}

func TestStore_Signup_ReportsEveryInvalidField(t *testing.T) {
	s := NewStore(&fakeAuth{}, logging.Nop())

	err := s.Signup(context.Background(), models.SignupProfile{})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
}

func TestStore_Login_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bad credentials", client.ErrUnauthorized, "Invalid email or password"},
		{"unavailable", client.ErrUnavailable, "Service is unavailable. Please try again later."},
		{"deadline", context.DeadlineExceeded, "Service is unavailable. Please try again later."},
		{"other", errors.New("boom"), "Failed to sign in. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(&fakeAuth{err: tt.err}, logging.Nop())
			seen := recordStates(s)

			err := s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"})

			assert.ErrorIs(t, err, ErrAuthFailed)
			assert.ErrorIs(t, err, tt.err)
			st := s.State()
			assert.Equal(t, StatusAuthError, st.Status)
			assert.Equal(t, tt.want, st.Error)
			assert.Nil(t, st.User)
			assert.False(t, st.Pending)
			assert.Equal(t, []Status{StatusAuthenticating, StatusAuthError}, statuses(seen()))
		})
	}
}

func TestStore_Signup_DuplicateAccount(t *testing.T) {
	s := NewStore(&fakeAuth{err: client.ErrAlreadyExists}, logging.Nop())

	err := s.Signup(context.Background(), validSignup())

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "An account with this email already exists", s.State().Error)
}

func TestStore_Login_NilUserIsFailure(t *testing.T) {
	s := NewStore(&fakeAuth{}, logging.Nop())

	err := s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, StatusAuthError, s.State().Status)
}

func TestStore_Login_PanicBecomesAuthError(t *testing.T) {
	s := NewStore(panicAuth{&fakeAuth{}}, logging.Nop())

	err := s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, StatusAuthError, s.State().Status)
}

type panicAuth struct{ *fakeAuth }

func (panicAuth) Login(context.Context, models.Credentials) (*models.UserProfile, error) {
	panic("broken")
}

func TestStore_RetryFromAuthError(t *testing.T) {
	auth := &fakeAuth{err: client.ErrUnauthorized}
	s := NewStore(auth, logging.Nop())
	creds := models.Credentials{Email: "ann@x.com", Password: "secret1"}

	require.Error(t, s.Login(context.Background(), creds))
	auth.err = nil
	auth.user = ann
	require.NoError(t, s.Login(context.Background(), creds))

	assert.Equal(t, StatusAuthenticated, s.State().Status)
	assert.Empty(t, s.State().Error)
}

func TestStore_AlreadyAuthenticated(t *testing.T) {
	auth := &fakeAuth{user: ann}
	s := NewStore(auth, logging.Nop())
	require.NoError(t, s.Signup(context.Background(), validSignup()))

	err := s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrAlreadyAuthenticated)
	assert.Equal(t, []string{"signup"}, auth.Calls())
	assert.Equal(t, StatusAuthenticated, s.State().Status)
}

func TestStore_RejectsConcurrentAuth(t *testing.T) {
	auth := &fakeAuth{user: ann, gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	s := NewStore(auth, logging.Nop())

	done := make(chan error, 1)
	go func() { done <- s.Signup(context.Background(), validSignup()) }()
	<-auth.entered

	st := s.State()
	assert.Equal(t, StatusAuthenticating, st.Status)
	assert.True(t, st.Pending)
	assert.Nil(t, st.User)

	err := s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAuthInProgress)
	assert.ErrorIs(t, s.Logout(context.Background()), ErrAuthInProgress)

	close(auth.gate)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"signup"}, auth.Calls())
	assert.Equal(t, StatusAuthenticated, s.State().Status)
}

func TestStore_Logout(t *testing.T) {
	auth := &fakeAuth{user: ann}
	s := NewStore(auth, logging.Nop())
	require.NoError(t, s.Signup(context.Background(), validSignup()))
	seen := recordStates(s)

	require.NoError(t, s.Logout(context.Background()))

	got := seen()
	require.Len(t, got, 2)
	assert.Equal(t, StatusAuthenticating, got[0].Status)
	assert.NotNil(t, got[0].User, "user is kept until the logout completes")
	assert.Equal(t, State{Status: StatusAnonymous}, got[1])
	assert.Equal(t, State{Status: StatusAnonymous}, s.State())
}

func TestStore_Logout_RemoteFailureStillAnonymous(t *testing.T) {
	auth := &fakeAuth{user: ann, logout: client.ErrUnavailable}
	s := NewStore(auth, logging.Nop())
	require.NoError(t, s.Signup(context.Background(), validSignup()))

	err := s.Logout(context.Background())

	assert.ErrorIs(t, err, ErrLogoutFailed)
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, State{Status: StatusAnonymous}, s.State())
}

func TestStore_Logout_AnonymousIsNoop(t *testing.T) {
	auth := &fakeAuth{}
	s := NewStore(auth, logging.Nop())
	seen := recordStates(s)

	require.NoError(t, s.Logout(context.Background()))
	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, State{Status: StatusAnonymous}, s.State())
	assert.Empty(t, seen())
	assert.Empty(t, auth.Calls())
}

func TestStore_Logout_FromAuthErrorSkipsRemote(t *testing.T) {
	auth := &fakeAuth{err: client.ErrUnauthorized}
	s := NewStore(auth, logging.Nop())
	require.Error(t, s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"}))

	require.NoError(t, s.Logout(context.Background()))

	assert.Equal(t, State{Status: StatusAnonymous}, s.State())
	assert.Equal(t, []string{"login"}, auth.Calls())
}

func TestStore_ClearError(t *testing.T) {
	s := NewStore(&fakeAuth{err: client.ErrUnauthorized}, logging.Nop())
	require.Error(t, s.Login(context.Background(), models.Credentials{Email: "ann@x.com", Password: "secret1"}))
	seen := recordStates(s)

	s.ClearError()
	once := s.State()
	s.ClearError()

	assert.Equal(t, State{Status: StatusAnonymous}, once)
	assert.Equal(t, once, s.State())
	assert.Len(t, seen(), 1)
}

func TestStore_ClearError_NoopWhenAuthenticated(t *testing.T) {
	s := NewStore(&fakeAuth{user: ann}, logging.Nop())
	require.NoError(t, s.Signup(context.Background(), validSignup()))
	seen := recordStates(s)

	s.ClearError()

	assert.Equal(t, StatusAuthenticated, s.State().Status)
	assert.Empty(t, seen())
}

func TestStore_StateIsACopy(t *testing.T) {
	s := NewStore(&fakeAuth{user: ann}, logging.Nop())
	require.NoError(t, s.Signup(context.Background(), validSignup()))

	st := s.State()
	st.User.Name = "Mallory"

	assert.Equal(t, "Ann", s.State().User.Name)
}

// The user is present exactly when the session is authenticated or a
// logout from an authenticated session is pending.
func TestStore_UserPresenceAcrossTransitions(t *testing.T) {
	auth := &fakeAuth{user: ann}
	s := NewStore(auth, logging.Nop())
	seen := recordStates(s)
	ctx := context.Background()

	require.NoError(t, s.Signup(ctx, validSignup()))
	require.NoError(t, s.Logout(ctx))
	auth.err = client.ErrUnauthorized
	require.Error(t, s.Login(ctx, models.Credentials{Email: "ann@x.com", Password: "secret1"}))
	s.ClearError()

	loggedIn := false
	for _, st := range seen() {
		switch st.Status {
		case StatusAuthenticated:
			assert.NotNil(t, st.User)
			loggedIn = true
		case StatusAuthenticating:
			assert.Equal(t, loggedIn, st.User != nil)
		default:
			assert.Nil(t, st.User)
			loggedIn = false
		}
	}
}

func TestStore_ContextCanceled(t *testing.T) {
	mock := client.NewMockClient(time.Second, nil)
	s := NewStore(mock, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Signup(ctx, validSignup())

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "Service is unavailable. Please try again later.", s.State().Error)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "anonymous", StatusAnonymous.String())
	assert.Equal(t, "authenticating", StatusAuthenticating.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
	assert.Equal(t, "auth_error", StatusAuthError.String())
	assert.Equal(t, "unknown", Status(42).String())
}
