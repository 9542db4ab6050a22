package catalog

import (
	"slices"

	"github.com/dmitrijs2005/codecrafted/internal/client/models"
)

// Status condenses a Snapshot into the state the view should render.
type Status int

const (
	// StatusIdle: nothing loaded yet and no request outstanding.
	StatusIdle Status = iota
	StatusLoading
	// StatusEmpty: loaded, and no course passes the current criteria.
	StatusEmpty
	StatusReady
	// StatusFailed: the latest load failed. Visible still holds the previous
	// result.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusEmpty:
		return "empty"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	// Mode and Term describe the request that produced Source.
	Mode Mode
	Term string

	Source     []models.Course
	Criteria   Criteria
	Visible    []models.Course
	Categories []string

	Loading  bool
	Loaded   bool
	FetchErr error
}

func (s Snapshot) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.FetchErr != nil:
		return StatusFailed
	case !s.Loaded:
		return StatusIdle
	case len(s.Visible) == 0:
		return StatusEmpty
	default:
		return StatusReady
	}
}

func (s Snapshot) clone() Snapshot {
	s.Source = cloneCourses(s.Source)
	s.Visible = cloneCourses(s.Visible)
	s.Categories = slices.Clone(s.Categories)
	return s
}

func cloneCourses(in []models.Course) []models.Course {
	if in == nil {
		return nil
	}
	out := make([]models.Course, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

// categoriesOf lists the distinct non-empty categories of courses, sorted.
// Each entry is a value SetCategory selects exactly.
func categoriesOf(courses []models.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		if c.Category != "" {
			out = append(out, c.Category)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
