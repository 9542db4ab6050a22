package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/codecrafted/internal/client/models"
)

// AnyCategory is accepted by SetCategory as an alias of the empty category.
const AnyCategory = "any"

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 200
)

// Mode selects which data source listing Load fetches.
type Mode int

const (
	ModeAll Mode = iota
	ModeSearch
	ModePopular
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeSearch:
		return "search"
	case ModePopular:
		return "popular"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) valid() bool {
	return m >= ModeAll && m <= ModePopular
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ModeAll, nil
	case "search":
		return ModeSearch, nil
	case "popular":
		return ModePopular, nil
	}
	return 0, models.NewValidationError("mode", fmt.Sprintf("Unknown mode %q", s))
}

// Criteria narrows the fetched courses. An empty Category matches every
// course; the price bounds are inclusive.
type Criteria struct {
	Category string
	MinPrice float64
	MaxPrice float64
}

// DefaultCriteria matches any category priced 0 to 200.
func DefaultCriteria() Criteria {
	return Criteria{MinPrice: DefaultMinPrice, MaxPrice: DefaultMaxPrice}
}

// Matches reports whether course passes both filters. Categories compare
// exactly.
func (c Criteria) Matches(course models.Course) bool {
	if c.Category != "" && course.Category != c.Category {
		return false
	}
	return course.Price >= c.MinPrice && course.Price <= c.MaxPrice
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, AnyCategory) {
		return ""
	}
	return category
}

// checkPriceRange validates a range and returns it with a negative minimum
// clamped to zero.
func checkPriceRange(minPrice, maxPrice float64) (float64, float64, error) {
	switch {
	case math.IsNaN(minPrice) || math.IsNaN(maxPrice):
		return 0, 0, models.NewValidationError("price", "Price must be a number")
	case minPrice > maxPrice:
		return 0, 0, models.NewValidationError("price", "Minimum price must not exceed maximum price")
	case maxPrice < 0:
		return 0, 0, models.NewValidationError("price", "Maximum price must not be negative")
	}
	return math.Max(minPrice, 0), maxPrice, nil
}

// Derive returns the courses matching c in their original order. It never
// modifies courses and always returns a non-nil slice.
func Derive(courses []models.Course, c Criteria) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if c.Matches(course) {
			out = append(out, course)
		}
	}
	return out
}
