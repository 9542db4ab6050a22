// Package services contains server-side business logic. This file implements
// UserService: signup, login, logout and access-token verification backed by
// server-stored sessions.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/common"
	"github.com/dmitrijs2005/codecrafted/internal/dbx"
	"github.com/dmitrijs2005/codecrafted/internal/server/auth"
	"github.com/dmitrijs2005/codecrafted/internal/server/config"
	"github.com/dmitrijs2005/codecrafted/internal/server/media"
	"github.com/dmitrijs2005/codecrafted/internal/server/models"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

var (
	generateFromPassword = bcrypt.GenerateFromPassword
	now                  = time.Now
)

type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is what a successful signup or login hands back to the client.
type AuthResult struct {
	User        *models.User
	AvatarURL   string
	AccessToken string
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	media                       media.URLResolver
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
	// dummyHash is compared against on unknown emails so both login
	// failures cost the same.
	dummyHash []byte
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, r media.URLResolver, cfg *config.Config) (*UserService, error) {
	dummy, err := generateFromPassword([]byte("codecrafted-dummy-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare password hashing: %w", err)
	}
	return &UserService{
		db:                          db,
		repomanager:                 m,
		media:                       r,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
		dummyHash:                   dummy,
	}, nil
}

// Signup creates the account and immediately opens a session for it.
// A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if err := validateInput(in); err != nil {
		return nil, err
	}

	hash, err := generateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
	}

	var (
		user    *models.User
		session *models.Session
	)
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Name:         in.Name,
			Email:        in.Email,
			Role:         in.Role,
			PasswordHash: hash,
			AvatarKey:    media.DefaultAvatarKey,
		})
		if err != nil {
			return err
		}
		session, err = s.openSession(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: signup: %w", common.ErrorInternal, err)
	}

	return s.result(ctx, user, session)
}

// Login checks the password. Unknown email and wrong password are both
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: login: %w", common.ErrorInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(in.Password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	session, err := s.openSession(ctx, s.db, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: login: %w", common.ErrorInternal, err)
	}

	return s.result(ctx, user, session)
}

// Logout revokes the session. Unknown sessions are ignored.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if err := s.repomanager.Sessions(s.db).Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: logout: %w", common.ErrorInternal, err)
	}
	return nil
}

// Authenticate verifies an access token and that its session is still open.
func (s *UserService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	session, err := s.repomanager.Sessions(s.db).Get(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: authenticate: %w", common.ErrorInternal, err)
	}
	if session.UserID != claims.UserID {
		return nil, common.ErrInvalidToken
	}
	if !session.ExpiresAt.After(now()) {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}

// PurgeExpiredSessions deletes sessions whose tokens can no longer be used.
func (s *UserService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.repomanager.Sessions(s.db).DeleteExpired(ctx, now())
}

func (s *UserService) openSession(ctx context.Context, db dbx.DBTX, userID string) (*models.Session, error) {
	return s.repomanager.Sessions(db).Create(ctx, userID, now().Add(s.accessTokenValidityDuration))
}

func (s *UserService) result(ctx context.Context, user *models.User, session *models.Session) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, session.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: issue token: %w", common.ErrorInternal, err)
	}

	avatar, err := s.media.URL(ctx, user.AvatarKey)
	if err != nil {
		// a missing avatar must not block sign-in
		avatar = ""
	}

	return &AuthResult{User: user, AvatarURL: avatar, AccessToken: token}, nil
}
