package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/codecrafted/internal/dbx"
	"github.com/dmitrijs2005/codecrafted/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectCourses = `SELECT id, title, description, instructor, category, level, price, rating,
		students, popularity_rank, duration_hours, thumbnail_key, tags
	FROM courses`

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, c *models.Course) error {
	tags, err := json.Marshal(nonNil(c.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}

	query :=
		`INSERT INTO courses (id, title, description, instructor, category, level, price, rating,
			students, popularity_rank, duration_hours, thumbnail_key, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Title, c.Description, c.Instructor, c.Category, c.Level, c.Price, c.Rating,
		c.Students, c.PopularityRank, c.DurationHours, c.ThumbnailKey, tags)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the whole catalog in popularity order.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Course, error) {
	return r.query(ctx, selectCourses+` ORDER BY popularity_rank, id`)
}

// Search matches term case-insensitively against title, description,
// instructor and category.
func (r *PostgresRepository) Search(ctx context.Context, term string) ([]models.Course, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"
	return r.query(ctx, selectCourses+`
	WHERE title ILIKE $1 OR description ILIKE $1 OR instructor ILIKE $1 OR category ILIKE $1
	ORDER BY popularity_rank, id`, pattern)
}

func (r *PostgresRepository) Popular(ctx context.Context, limit int) ([]models.Course, error) {
	return r.query(ctx, selectCourses+` ORDER BY popularity_rank, id LIMIT $1`, limit)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Course, 0)
	for rows.Next() {
		var (
			c    models.Course
			tags []byte
		)
		err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Category, &c.Level,
			&c.Price, &c.Rating, &c.Students, &c.PopularityRank, &c.DurationHours, &c.ThumbnailKey, &tags)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &c.Tags); err != nil {
				return nil, fmt.Errorf("decode tags of %s: %w", c.ID, err)
			}
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var _ Repository = (*PostgresRepository)(nil)
