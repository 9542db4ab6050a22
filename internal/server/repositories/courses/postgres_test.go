package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/codecrafted/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courseColumns = []string{"id", "title", "description", "instructor", "category", "level", "price",
	"rating", "students", "popularity_rank", "duration_hours", "thumbnail_key", "tags"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func courseRows() *sqlmock.Rows {
	return sqlmock.NewRows(courseColumns).
		AddRow("go-101", "Go Basics", "Learn Go", "Ann", "development", "beginner", 49.0, 4.7, int64(1200), 1, 10.5, "thumbs/go.png", []byte(`["go","backend"]`)).
		AddRow("ux-1", "UX Intro", "Design", "Bo", "design", "beginner", 0.0, 4.1, int64(300), 2, 3.0, "", []byte(`[]`))
}

func TestCount(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT\s+count\(\*\)\s+FROM\s+courses`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestInsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	c := &models.Course{ID: "go-101", Title: "Go Basics", Category: "development", Price: 49, PopularityRank: 1}
	mock.ExpectExec(`INSERT\s+INTO\s+courses`).
		WithArgs("go-101", "Go Basics", "", "", "development", "", 49.0, 0.0, int64(0), 1, 0.0, "", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+courses`).WillReturnError(errors.New("dup"))

	err := repo.Insert(context.Background(), &models.Course{ID: "x"})
	require.ErrorContains(t, err, "db error: dup")
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+courses\s+ORDER\s+BY\s+popularity_rank,\s*id\s*$`).WillReturnRows(courseRows())

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "go-101", got[0].ID)
	assert.Equal(t, []string{"go", "backend"}, got[0].Tags)
	assert.Equal(t, int64(1200), got[0].Students)
	assert.Empty(t, got[1].Tags)
	assert.Equal(t, 0.0, got[1].Price)
}

func TestList_EmptyIsNonNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+courses`).WillReturnRows(sqlmock.NewRows(courseColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_EscapesPattern(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE\s+title\s+ILIKE\s+\$1\s+OR\s+description\s+ILIKE\s+\$1`).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows(courseColumns))

	_, err := repo.Search(context.Background(), " 50% ")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPopular(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`ORDER\s+BY\s+popularity_rank,\s*id\s+LIMIT\s+\$1`).
		WithArgs(8).
		WillReturnRows(courseRows())

	got, err := repo.Popular(context.Background(), 8)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestQuery_BadTags(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(courseColumns).
		AddRow("x", "X", "", "", "", "", 1.0, 0.0, int64(0), 1, 0.0, "", []byte(`{`))
	mock.ExpectQuery(`FROM\s+courses`).WillReturnRows(rows)

	_, err := repo.List(context.Background())
	require.ErrorContains(t, err, "decode tags of x")
}

func TestQuery_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+courses`).WillReturnError(errors.New("down"))

	_, err := repo.Popular(context.Background(), 3)
	require.ErrorContains(t, err, "db error: down")
}
