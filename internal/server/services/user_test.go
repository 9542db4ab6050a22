package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/common"
	"github.com/dmitrijs2005/codecrafted/internal/server/auth"
	"github.com/dmitrijs2005/codecrafted/internal/server/config"
	"github.com/dmitrijs2005/codecrafted/internal/server/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "k"

func newUserService(t *testing.T, rm *fakeRepoManager, m media.URLResolver) (*UserService, *sqlmockHandle) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	cfg := &config.Config{
		SecretKey:                   testSecret,
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}
	s, err := NewUserService(db, rm, m, cfg)
	require.NoError(t, err)
	return s, &sqlmockHandle{mock}
}

func validSignup() SignupInput {
	return SignupInput{Name: " Alice ", Email: " Alice@Example.com ", Password: "secret1", Role: "Student"}
}

func TestSignup_Success(t *testing.T) {
	rm := newFakeRepoManager()
	s, mock := newUserService(t, rm, fakeMedia{})
	mock.ExpectTx(true)

	res, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "Alice", res.User.Name)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, "student", res.User.Role)
	assert.Equal(t, "https://cdn.test/"+media.DefaultAvatarKey, res.AvatarURL)
	require.NoError(t, bcrypt.CompareHashAndPassword(res.User.PasswordHash, []byte("secret1")))

	claims, err := auth.ParseToken(res.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Contains(t, rm.s.sessions, claims.SessionID())
	mock.Done(t)
}

func TestSignup_Validation(t *testing.T) {
	s, _ := newUserService(t, newFakeRepoManager(), fakeMedia{})

	cases := map[string]func(*SignupInput){
		"blank name":  func(in *SignupInput) { in.Name = "  " },
		"bad email":   func(in *SignupInput) { in.Email = "nope" },
		"short pass":  func(in *SignupInput) { in.Password = "abc" },
		"bad role":    func(in *SignupInput) { in.Role = "admin" },
		"empty role":  func(in *SignupInput) { in.Role = "" },
		"empty email": func(in *SignupInput) { in.Email = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validSignup()
			mutate(&in)
			_, err := s.Signup(context.Background(), in)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	rm := newFakeRepoManager()
	s, mock := newUserService(t, rm, fakeMedia{})
	mock.ExpectTx(true)
	mock.ExpectTx(false)

	_, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	in := validSignup()
	in.Email = "ALICE@example.com"
	_, err = s.Signup(context.Background(), in)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	mock.Done(t)
}

func TestSignup_SessionFailureRollsBack(t *testing.T) {
	rm := newFakeRepoManager()
	rm.s.createErr = errDB
	s, mock := newUserService(t, rm, fakeMedia{})
	mock.ExpectTx(false)

	_, err := s.Signup(context.Background(), validSignup())
	require.ErrorIs(t, err, common.ErrorInternal)
	mock.Done(t)
}

func TestSignup_AvatarFailureDoesNotBlock(t *testing.T) {
	s, mock := newUserService(t, newFakeRepoManager(), fakeMedia{err: errDB})
	mock.ExpectTx(true)

	res, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	assert.Empty(t, res.AvatarURL)
}

func signedUp(t *testing.T) (*UserService, *fakeRepoManager) {
	t.Helper()
	rm := newFakeRepoManager()
	s, mock := newUserService(t, rm, fakeMedia{})
	mock.ExpectTx(true)
	_, err := s.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	return s, rm
}

func TestLogin_Success(t *testing.T) {
	s, rm := signedUp(t)

	res, err := s.Login(context.Background(), LoginInput{Email: " alice@example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.User.Name)
	assert.NotEmpty(t, res.AccessToken)
	assert.Len(t, rm.s.sessions, 2)
}

func TestLogin_Unauthorized(t *testing.T) {
	s, _ := signedUp(t)

	_, err := s.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrong-pass"})
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "secret1"})
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_Validation(t *testing.T) {
	s, _ := newUserService(t, newFakeRepoManager(), fakeMedia{})

	_, err := s.Login(context.Background(), LoginInput{Email: "bad", Password: "x"})
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Login(context.Background(), LoginInput{Email: "a@b.co"})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestLogin_RepoError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.getErr = errDB
	s, _ := newUserService(t, rm, fakeMedia{})

	_, err := s.Login(context.Background(), LoginInput{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestAuthenticateAndLogout(t *testing.T) {
	s, rm := signedUp(t)

	res, err := s.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := s.Authenticate(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	require.NoError(t, s.Logout(context.Background(), claims.SessionID()))
	assert.NotContains(t, rm.s.sessions, claims.SessionID())

	_, err = s.Authenticate(context.Background(), res.AccessToken)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	// logout is idempotent
	require.NoError(t, s.Logout(context.Background(), claims.SessionID()))
}

func TestAuthenticate_Errors(t *testing.T) {
	s, rm := signedUp(t)

	_, err := s.Authenticate(context.Background(), "garbage")
	require.ErrorIs(t, err, common.ErrInvalidToken)

	sess, err := rm.s.Create(context.Background(), "someone-else", time.Now().Add(time.Hour))
	require.NoError(t, err)
	tok, err := auth.GenerateToken("u-1", sess.ID, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	_, err = s.Authenticate(context.Background(), tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	expired, err := rm.s.Create(context.Background(), "u-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	tok, err = auth.GenerateToken("u-1", expired.ID, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	_, err = s.Authenticate(context.Background(), tok)
	require.ErrorIs(t, err, common.ErrTokenExpired)

	rm.s.getErr = errDB
	_, err = s.Authenticate(context.Background(), tok)
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogout_Error(t *testing.T) {
	rm := newFakeRepoManager()
	rm.s.deleteErr = errDB
	s, _ := newUserService(t, rm, fakeMedia{})

	require.ErrorIs(t, s.Logout(context.Background(), "s-1"), common.ErrorInternal)
}

func TestPurgeExpiredSessions(t *testing.T) {
	s, rm := signedUp(t)
	_, err := rm.s.Create(context.Background(), "u-1", time.Now().Add(-time.Second))
	require.NoError(t, err)

	n, err := s.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Len(t, rm.s.sessions, 1)
}
