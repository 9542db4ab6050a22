package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/codecrafted/internal/common"
	"github.com/dmitrijs2005/codecrafted/internal/dbx"
	"github.com/dmitrijs2005/codecrafted/internal/server/models"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/courses"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/codecrafted/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	nextID  int

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	key := strings.ToLower(u.Email)
	if _, ok := f.byEmail[key]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	cp := *u
	cp.ID = "u-" + string(rune('0'+f.nextID))
	cp.CreatedAt = time.Now()
	f.byEmail[key] = &cp
	return &cp, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeSessionsRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	nextID   int

	createErr error
	getErr    error
	deleteErr error
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{sessions: map[string]*models.Session{}}
}

func (f *fakeSessionsRepo) Create(ctx context.Context, userID string, expiresAt time.Time) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	s := &models.Session{ID: "s-" + string(rune('0'+f.nextID)), UserID: userID, ExpiresAt: expiresAt, CreatedAt: time.Now()}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeSessionsRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

func (f *fakeSessionsRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, s := range f.sessions {
		if !s.ExpiresAt.After(now) {
			delete(f.sessions, id)
			n++
		}
	}
	return n, nil
}

type fakeCoursesRepo struct {
	mu      sync.Mutex
	courses []models.Course

	err       error
	insertErr error
	lastTerm  string
	lastLimit int
}

func (f *fakeCoursesRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return len(f.courses), nil
}

func (f *fakeCoursesRepo) Insert(ctx context.Context, c *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.courses = append(f.courses, *c)
	return nil
}

func (f *fakeCoursesRepo) sorted() []models.Course {
	out := append([]models.Course(nil), f.courses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PopularityRank < out[j].PopularityRank })
	return out
}

func (f *fakeCoursesRepo) List(ctx context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeCoursesRepo) Search(ctx context.Context, term string) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Course
	for _, c := range f.sorted() {
		if strings.Contains(strings.ToLower(c.Title), strings.ToLower(term)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCoursesRepo) Popular(ctx context.Context, limit int) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := f.sorted()
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSessionsRepo
	c *fakeCoursesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{u: newFakeUsersRepo(), s: newFakeSessionsRepo(), c: &fakeCoursesRepo{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository        { return m.u }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessions.Repository  { return m.s }
func (m *fakeRepoManager) Courses(db dbx.DBTX) courses.Repository    { return m.c }

// fakeMedia prefixes keys with a fake CDN host.
type fakeMedia struct {
	err error
}

func (f fakeMedia) URL(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if key == "" {
		return "", nil
	}
	return "https://cdn.test/" + key, nil
}

var errDB = errors.New("db down")

type sqlmockHandle struct {
	sqlmock.Sqlmock
}

// ExpectTx expects one transaction that either commits or rolls back.
func (h *sqlmockHandle) ExpectTx(commit bool) {
	h.ExpectBegin()
	if commit {
		h.ExpectCommit()
	} else {
		h.ExpectRollback()
	}
}

func (h *sqlmockHandle) Done(t *testing.T) {
	t.Helper()
	if err := h.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}
