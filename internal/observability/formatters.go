// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/selamsoft/selam-web/internal/db"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// listStatus renders the non-ready phases. ok is false when items should
// be printed instead.
func listStatus(phase view.Phase, errMsg string, empty bool, noun string) (string, bool) {
	switch {
	case phase == view.PhaseLoading:
		return fmt.Sprintf("Loading %s...", noun), true
	case phase == view.PhaseError:
		return "Error: " + errMsg, true
	case empty:
		return fmt.Sprintf("No %s found.", noun), true
	}
	return "", false
}

// PrintJobs outputs the open positions of a loaded job list.
func (p *Printer) PrintJobs(state view.ListState[types.Job]) {
	if msg, done := listStatus(state.Phase, state.Err, state.Empty(), "jobs"); done {
		p.printBox("OPEN POSITIONS", msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d open positions (%s response)\n\n", len(state.Items), state.Shape))

	count := min(len(state.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := state.Items[i]
		sb.WriteString(fmt.Sprintf("#%s  %s\n", job.ID, job.Title))

		meta := make([]string, 0, 3)
		for _, m := range []string{job.Department, job.Location, job.Type} {
			if m != "" {
				meta = append(meta, m)
			}
		}
		if len(meta) > 0 {
			sb.WriteString(fmt.Sprintf("    %s\n", strings.Join(meta, " · ")))
		}
		if len(job.Requirements) > 0 {
			sb.WriteString(fmt.Sprintf("    Requires: %s\n", truncate(strings.Join(job.Requirements, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(state.Items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(state.Items)-maxItemsToShow))
	}

	p.printBox("OPEN POSITIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProducts outputs a loaded product list. Ratings are only shown for
// products that are available.
func (p *Printer) PrintProducts(state view.ListState[types.Product]) {
	if msg, done := listStatus(state.Phase, state.Err, state.Empty(), "products"); done {
		p.printBox("PRODUCTS", msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d products (%s response)\n\n", len(state.Items), state.Shape))

	count := min(len(state.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		product := state.Items[i]
		sb.WriteString(fmt.Sprintf("#%d  %s [%s]\n", product.ID, product.Name, product.Category))
		if product.IsAvailable() {
			sb.WriteString(fmt.Sprintf("    ★ %.1f  %s users\n", product.Rating, product.Users))
		} else {
			sb.WriteString(fmt.Sprintf("    %s\n", product.Status))
		}
		if product.Price != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", product.Price))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(state.Items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more products", len(state.Items)-maxItemsToShow))
	}

	p.printBox("PRODUCTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContactMessages outputs stored contact messages, newest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintContactMessages(messages []db.ContactMessage) {
	if len(messages) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "No contact messages yet")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d messages:\n\n", len(messages)))

	for i, m := range messages {
		sb.WriteString(fmt.Sprintf("✉ %s\n", m.Subject))
		sb.WriteString(fmt.Sprintf("  %s %s <%s>\n", m.FirstName, m.LastName, m.Email))
		sb.WriteString(fmt.Sprintf("  %s\n", m.CreatedAt.Format("2006-01-02 15:04")))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(strings.Join(strings.Fields(m.Message), " "), 50)))
		if i < len(messages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTACT MESSAGES", strings.TrimSuffix(sb.String(), "\n"))
}
