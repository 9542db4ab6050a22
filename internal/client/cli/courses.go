package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/codecrafted/internal/client/catalog"
)

// Courses loads a listing: no argument or "all" lists every course,
// "popular" the most popular ones and "search <term>" the matches for term.
func (a *App) Courses(ctx context.Context, args []string) error {
	mode := catalog.ModeAll
	term := ""
	if len(args) > 0 {
		m, err := catalog.ParseMode(args[0])
		if err != nil {
			a.println("Usage: courses [all|popular|search <term>]")
			return err
		}
		mode = m
		term = strings.Join(args[1:], " ")
	}

	err := a.catalog.Load(ctx, mode, term)
	a.report(err)
	return err
}

// Category narrows the visible courses to one category; "any" lifts it.
func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: category <name|any>")
		if cats := a.catalog.Snapshot().Categories; len(cats) > 0 {
			a.println("Categories: " + strings.Join(cats, ", "))
		}
		return nil
	}
	a.catalog.SetCategory(strings.Join(args, " "))
	return nil
}

// Price sets the price range. The maximum may be "inf".
func (a *App) Price(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.println("Usage: price <min> <max|inf>")
		return nil
	}
	minPrice, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		a.println("Invalid minimum price:", args[0])
		return err
	}
	maxPrice, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		a.println("Invalid maximum price:", args[1])
		return err
	}

	err = a.catalog.SetPriceRange(minPrice, maxPrice)
	a.report(err)
	return err
}

// Reset restores the default filters.
func (a *App) Reset(ctx context.Context) error {
	a.catalog.ResetFilters()
	return nil
}

// Status prints the session, connectivity and catalog state.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()
	snap := a.catalog.Snapshot()

	a.println("Session:", describeSession(st))
	a.println("Connection:", a.currentMode())
	a.println("Catalog:", snap.Status(), "|", describeCriteria(snap.Criteria))
	if snap.Loaded {
		a.println(summaryLine(snap))
	}
	return nil
}
