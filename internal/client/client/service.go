package client

import (
	"context"

	"github.com/dmitrijs2005/codecrafted/internal/client/models"
)

// AuthDataSource performs the remote side of signup, login and logout.
// Each call is a single round trip.
type AuthDataSource interface {
	Signup(ctx context.Context, profile models.SignupProfile) (*models.UserProfile, error)
	Login(ctx context.Context, credentials models.Credentials) (*models.UserProfile, error)
	Logout(ctx context.Context) error
}

// CatalogDataSource supplies course listings. Results come back in the
// source's own order; term matching is left entirely to the source.
type CatalogDataSource interface {
	ListAll(ctx context.Context) ([]models.Course, error)
	Search(ctx context.Context, term string) ([]models.Course, error)
	ListPopular(ctx context.Context) ([]models.Course, error)
}

// Client is a complete backend connection.
type Client interface {
	AuthDataSource
	CatalogDataSource
	Ping(ctx context.Context) error
	Close() error
}
