package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	clientmodels "github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/common"
	"github.com/dmitrijs2005/codecrafted/internal/dbx"
	"github.com/dmitrijs2005/codecrafted/internal/server/media"
	"github.com/dmitrijs2005/codecrafted/internal/server/models"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/repomanager"
)

// CourseView is a course ready to be served: its thumbnail key has been
// resolved to a URL.
type CourseView struct {
	models.Course
	ThumbnailURL string
}

type CourseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	media       media.URLResolver
}

func NewCourseService(db *sql.DB, m repomanager.RepositoryManager, r media.URLResolver) *CourseService {
	return &CourseService{db: db, repomanager: m, media: r}
}

func (s *CourseService) List(ctx context.Context) ([]CourseView, error) {
	courses, err := s.repomanager.Courses(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list courses: %w", common.ErrorInternal, err)
	}
	return s.views(ctx, courses), nil
}

// Search requires a non-blank term.
func (s *CourseService) Search(ctx context.Context, term string) ([]CourseView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", common.ErrorValidation)
	}

	courses, err := s.repomanager.Courses(s.db).Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("%w: search courses: %w", common.ErrorInternal, err)
	}
	return s.views(ctx, courses), nil
}

// Popular returns the limit most popular courses; limit <= 0 returns the
// whole catalog in popularity order.
func (s *CourseService) Popular(ctx context.Context, limit int) ([]CourseView, error) {
	if limit <= 0 {
		return s.List(ctx)
	}

	courses, err := s.repomanager.Courses(s.db).Popular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: popular courses: %w", common.ErrorInternal, err)
	}
	return s.views(ctx, courses), nil
}

// Seed inserts courses when the catalog is empty and reports how many were
// written. A non-empty catalog is left alone.
func (s *CourseService) Seed(ctx context.Context, courses []clientmodels.Course) (int, error) {
	inserted := 0
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Courses(tx)

		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, c := range courses {
			row := fromSeed(c)
			if err := repo.Insert(ctx, &row); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return inserted, nil
}

func (s *CourseService) views(ctx context.Context, courses []models.Course) []CourseView {
	out := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		u, err := s.media.URL(ctx, c.ThumbnailKey)
		if err != nil {
			u = ""
		}
		out = append(out, CourseView{Course: c, ThumbnailURL: u})
	}
	return out
}

func fromSeed(c clientmodels.Course) models.Course {
	return models.Course{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Instructor:     c.Instructor,
		Category:       c.Category,
		Level:          c.Level,
		Price:          c.Price,
		Rating:         c.Rating,
		Students:       c.Students,
		PopularityRank: c.PopularityRank,
		DurationHours:  c.DurationHours,
		ThumbnailKey:   c.Thumbnail,
		Tags:           c.Tags,
	}
}
