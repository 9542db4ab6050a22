// Package catalog keeps the visible course list consistent with three
// independent inputs: the fetch mode, the category filter and the price
// range.
//
// Loads may overlap. Each Load takes a sequence number when issued and only
// the response carrying the latest number is applied; earlier responses
// are dropped on arrival. The visible list is always recomputed from the
// source set and the criteria with Derive.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/codecrafted/internal/client/client"
	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/client/notify"
	"github.com/dmitrijs2005/codecrafted/internal/common"
	"github.com/dmitrijs2005/codecrafted/internal/logging"
)

// Config tunes an Engine. Zero fields fall back to the defaults.
type Config struct {
	// PopularLimit is the prefix of the popular listing that is kept.
	PopularLimit int
	// Defaults are the criteria used initially and by ResetFilters.
	Defaults *Criteria
}

// Engine is safe for concurrent use.
type Engine struct {
	source       client.CatalogDataSource
	log          logging.Logger
	popularLimit int
	defaults     Criteria
	hub          notify.Hub[Snapshot]

	mu    sync.Mutex
	seq   uint64
	state Snapshot
}

func NewEngine(source client.CatalogDataSource, log logging.Logger, cfg Config) *Engine {
	e := &Engine{
		source:       source,
		log:          log.With("component", "catalog"),
		popularLimit: cfg.PopularLimit,
		defaults:     DefaultCriteria(),
	}
	if e.popularLimit <= 0 {
		e.popularLimit = common.DefaultPopularLimit
	}
	if cfg.Defaults != nil {
		e.defaults = *cfg.Defaults
	}
	e.state.Criteria = e.defaults
	e.state.Visible = []models.Course{}
	return e
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Subscribe registers fn for every subsequent transition.
func (e *Engine) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return e.hub.Subscribe(fn)
}

func (e *Engine) transition(mutate func(st *Snapshot) bool) bool {
	return e.hub.Emit(func() (Snapshot, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if !mutate(&e.state) {
			return Snapshot{}, false
		}
		return e.state.clone(), true
	})
}

// Load fetches a new source set. term is required for ModeSearch and
// ignored otherwise.
//
// The previous source and visible list stay in place while the request is
// outstanding and after it fails. Load returns ErrSuperseded when a newer
// Load was issued before this one resolved.
func (e *Engine) Load(ctx context.Context, mode Mode, term string) error {
	term = strings.TrimSpace(term)
	switch {
	case !mode.valid():
		return models.NewValidationError("mode", fmt.Sprintf("Unknown mode %s", mode))
	case mode == ModeSearch && term == "":
		return models.NewValidationError("term", "Search term is required")
	case mode != ModeSearch:
		term = ""
	}

	var seq uint64
	e.transition(func(st *Snapshot) bool {
		e.seq++
		seq = e.seq
		st.Loading = true
		st.FetchErr = nil
		return true
	})
	e.log.Debug(ctx, "load issued", "seq", seq, "mode", mode, "term", term)

	courses, err := e.fetch(ctx, mode, term)

	applied := e.transition(func(st *Snapshot) bool {
		if seq != e.seq {
			return false
		}
		st.Loading = false
		if err != nil {
			st.FetchErr = err
			return true
		}
		if mode == ModePopular && len(courses) > e.popularLimit {
			courses = courses[:e.popularLimit]
		}
		st.Mode = mode
		st.Term = term
		st.Source = cloneCourses(courses)
		st.Loaded = true
		st.Categories = categoriesOf(st.Source)
		st.Visible = Derive(st.Source, st.Criteria)
		return true
	})

	switch {
	case !applied:
		e.log.Debug(ctx, "stale load discarded", "seq", seq, "mode", mode)
		return ErrSuperseded
	case err != nil:
		e.log.Warn(ctx, "load failed", "seq", seq, "mode", mode, "error", err)
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	e.log.Debug(ctx, "load applied", "seq", seq, "mode", mode, "count", len(courses))
	return nil
}

func (e *Engine) fetch(ctx context.Context, mode Mode, term string) (courses []models.Course, err error) {
	defer func() {
		if r := recover(); r != nil {
			courses, err = nil, fmt.Errorf("catalog data source panic: %v", r)
		}
	}()

	switch mode {
	case ModeSearch:
		return e.source.Search(ctx, term)
	case ModePopular:
		return e.source.ListPopular(ctx)
	default:
		return e.source.ListAll(ctx)
	}
}

// SetCategory restricts the visible list to one category. "" and "any"
// remove the restriction.
func (e *Engine) SetCategory(category string) {
	category = normalizeCategory(category)
	e.transition(func(st *Snapshot) bool {
		if st.Criteria.Category == category {
			return false
		}
		st.Criteria.Category = category
		st.Visible = Derive(st.Source, st.Criteria)
		return true
	})
}

// SetPriceRange sets the inclusive price bounds. maxPrice may be +Inf.
// An invalid range is rejected with a *models.ValidationError and leaves
// the criteria untouched.
func (e *Engine) SetPriceRange(minPrice, maxPrice float64) error {
	minPrice, maxPrice, err := checkPriceRange(minPrice, maxPrice)
	if err != nil {
		return err
	}
	e.transition(func(st *Snapshot) bool {
		if st.Criteria.MinPrice == minPrice && st.Criteria.MaxPrice == maxPrice {
			return false
		}
		st.Criteria.MinPrice = minPrice
		st.Criteria.MaxPrice = maxPrice
		st.Visible = Derive(st.Source, st.Criteria)
		return true
	})
	return nil
}

// ResetFilters restores the default criteria.
func (e *Engine) ResetFilters() {
	e.transition(func(st *Snapshot) bool {
		if st.Criteria == e.defaults {
			return false
		}
		st.Criteria = e.defaults
		st.Visible = Derive(st.Source, st.Criteria)
		return true
	})
}
