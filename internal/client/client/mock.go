package client

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockAccount struct {
	profile      models.UserProfile
	passwordHash []byte
}

// MockClient is an in-process stand-in for the course API. Every call waits
// for the configured latency (or the context) before answering.
type MockClient struct {
	latency time.Duration
	cost    int
	courses []models.Course

	mu       sync.Mutex
	accounts map[string]mockAccount
	current  string
}

// NewMockClient serves the given catalog. Password hashes use bcrypt.MinCost
// since the accounts only live for the process lifetime.
func NewMockClient(latency time.Duration, courses []models.Course) *MockClient {
	return &MockClient{
		latency:  latency,
		cost:     bcrypt.MinCost,
		courses:  courses,
		accounts: make(map[string]mockAccount),
	}
}

func (m *MockClient) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ErrUnavailable
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (m *MockClient) Signup(ctx context.Context, profile models.SignupProfile) (*models.UserProfile, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(profile.Password), m.cost)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(profile.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[email]; ok {
		return nil, ErrAlreadyExists
	}
	account := mockAccount{
		profile: models.UserProfile{
			ID:        uuid.NewString(),
			Name:      profile.Name,
			Email:     email,
			Role:      profile.Role,
			AvatarRef: "avatars/default.png",
		},
		passwordHash: hash,
	}
	m.accounts[email] = account
	m.current = email

	user := account.profile
	return &user, nil
}

func (m *MockClient) Login(ctx context.Context, credentials models.Credentials) (*models.UserProfile, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	email := normalizeEmail(credentials.Email)

	m.mu.Lock()
	account, ok := m.accounts[email]
	m.mu.Unlock()
	if !ok {
		return nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(credentials.Password)); err != nil {
		return nil, ErrUnauthorized
	}

	m.mu.Lock()
	m.current = email
	m.mu.Unlock()

	user := account.profile
	return &user, nil
}

func (m *MockClient) Logout(ctx context.Context) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = ""
	m.mu.Unlock()
	return nil
}

func (m *MockClient) ListAll(ctx context.Context) ([]models.Course, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return append([]models.Course(nil), m.courses...), nil
}

// Search matches term case-insensitively against title, description,
// instructor, category and tags.
func (m *MockClient) Search(ctx context.Context, term string) ([]models.Course, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]models.Course, 0)
	for _, c := range m.courses {
		if courseMatches(c, needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

func courseMatches(c models.Course, needle string) bool {
	fields := append([]string{c.Title, c.Description, c.Instructor, c.Category}, c.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// ListPopular returns the whole catalog ordered by popularity rank.
func (m *MockClient) ListPopular(ctx context.Context) ([]models.Course, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	out := append([]models.Course(nil), m.courses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PopularityRank < out[j].PopularityRank
	})
	return out, nil
}

func (m *MockClient) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MockClient) Close() error {
	return nil
}

// CurrentUser reports who the mock believes is signed in.
func (m *MockClient) CurrentUser() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != ""
}
