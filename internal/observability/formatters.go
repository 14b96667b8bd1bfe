// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/alumni-connect/internal/careers"
	"github.com/jonathan/alumni-connect/internal/db"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSeededAlumni outputs a summary of the alumni profiles written by the
// seed command, including their map locations.
func (p *Printer) PrintSeededAlumni(users []db.User) {
	if len(users) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Seeded %d alumni profiles:\n\n", len(users)))

	for i := range users {
		u := &users[i]
		sb.WriteString(fmt.Sprintf("• %s", u.Name))
		if u.CurrentPosition != "" && u.Company != "" {
			sb.WriteString(fmt.Sprintf(" — %s @ %s", u.CurrentPosition, u.Company))
		}
		sb.WriteString("\n")
		if u.Location != "" {
			sb.WriteString(fmt.Sprintf("  %s", u.Location))
			if u.IsFeatured {
				sb.WriteString(" ★ featured")
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("SEEDED ALUMNI", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerCatalog outputs the loaded career path catalog.
func (p *Printer) PrintCareerCatalog(paths []careers.CareerPath) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Loaded %d career paths:\n\n", len(paths)))

	count := min(len(paths), maxItemsToShow)
	for i := 0; i < count; i++ {
		path := paths[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", path.Name, path.Key))
		if len(path.RecommendedSkills) > 0 {
			skills := strings.Join(path.RecommendedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(paths) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more paths", len(paths)-maxItemsToShow))
	}

	p.printBox("CAREER PATH CATALOG", sb.String())
}
