package cli

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/codecrafted/internal/client/catalog"
	"github.com/dmitrijs2005/codecrafted/internal/client/models"
	"github.com/dmitrijs2005/codecrafted/internal/client/session"
)

func describeSession(st session.State) string {
	switch st.Status {
	case session.StatusAuthenticated:
		return fmt.Sprintf("%s <%s> (%s)", st.User.Name, st.User.Email, st.User.Role)
	case session.StatusAuthError:
		return "error: " + st.Error
	default:
		return st.Status.String()
	}
}

// renderSession returns the line printed for a session transition, or ""
// when the transition needs no output.
func renderSession(prev session.Status, st session.State) string {
	switch st.Status {
	case session.StatusAuthenticating:
		if st.User != nil {
			return "Signing out..."
		}
		return "Signing in..."
	case session.StatusAuthenticated:
		return fmt.Sprintf("Welcome, %s! Your dashboard: %s", st.User.Name, st.User.Role.DashboardPath())
	case session.StatusAuthError:
		return "Error: " + st.Error
	case session.StatusAnonymous:
		if prev == session.StatusAuthenticating {
			return "Signed out."
		}
	}
	return ""
}

func formatPrice(p float64) string {
	switch {
	case math.IsInf(p, 1):
		return "any"
	case p == 0:
		return "Free"
	default:
		return fmt.Sprintf("$%.2f", p)
	}
}

func describeCriteria(c catalog.Criteria) string {
	category := c.Category
	if category == "" {
		category = catalog.AnyCategory
	}
	return fmt.Sprintf("category=%s price=%s..%s", category, formatPrice(c.MinPrice), formatPrice(c.MaxPrice))
}

// summaryLine is the "Showing N of M courses" header.
func summaryLine(s catalog.Snapshot) string {
	line := fmt.Sprintf("Showing %d of %d courses", len(s.Visible), len(s.Source))
	if s.Mode == catalog.ModeSearch && s.Term != "" {
		line += fmt.Sprintf(" for %q", s.Term)
	}
	return line
}

func emptyMessage(s catalog.Snapshot) string {
	if s.Mode == catalog.ModeSearch && s.Term != "" {
		return fmt.Sprintf("No courses match %q. Try a different search term.", s.Term)
	}
	return "No courses match your current filters. Try adjusting your criteria."
}

func renderCourses(b *strings.Builder, courses []models.Course) {
	w := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, c := range courses {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.1f★\n", c.Title, c.Instructor, c.Category, formatPrice(c.Price), c.Rating)
	}
	w.Flush()
}

// renderCatalog turns a snapshot into the text shown after every catalog
// transition.
func renderCatalog(s catalog.Snapshot) string {
	var b strings.Builder

	switch s.Status() {
	case catalog.StatusIdle:
		b.WriteString("No courses loaded yet. Type 'courses' to load them.")
	case catalog.StatusLoading:
		b.WriteString("Loading courses...")
	case catalog.StatusFailed:
		fmt.Fprintf(&b, "Failed to load courses: %v", s.FetchErr)
		if len(s.Visible) > 0 {
			b.WriteString("\nShowing previous results.\n")
			renderCourses(&b, s.Visible)
		}
	case catalog.StatusEmpty:
		b.WriteString("No courses found\n")
		b.WriteString(emptyMessage(s))
	case catalog.StatusReady:
		b.WriteString(summaryLine(s))
		b.WriteString("\n")
		renderCourses(&b, s.Visible)
	}

	return strings.TrimRight(b.String(), "\n")
}
