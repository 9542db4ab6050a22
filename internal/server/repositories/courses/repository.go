package courses

import (
	"context"

	"github.com/dmitrijs2005/codecrafted/internal/server/models"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, c *models.Course) error
	List(ctx context.Context) ([]models.Course, error)
	Search(ctx context.Context, term string) ([]models.Course, error)
	Popular(ctx context.Context, limit int) ([]models.Course, error)
}
