// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
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

// PrintDocumentSummary outputs a human-readable overview of a parsed document.
func (p *Printer) PrintDocumentSummary(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:   %s\n", doc.Metadata.SourceFormat))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", doc.Metadata.WordCount))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(doc.Sections)))
	sb.WriteString("\n")

	for _, sec := range doc.Sections {
		heading := sec.Heading
		if heading == "" {
			heading = "(implicit)"
		}
		sb.WriteString(fmt.Sprintf("  %-14s %s (%d blocks)\n", sec.Kind, heading, len(sec.Blocks)))
	}

	if n := len(doc.ExperienceItems()); n > 0 {
		sb.WriteString(fmt.Sprintf("\nExperience items:     %d\n", n))
	}
	if n := len(doc.EducationItems()); n > 0 {
		sb.WriteString(fmt.Sprintf("Education items:      %d\n", n))
	}
	if n := doc.CertificationCount(); n > 0 {
		sb.WriteString(fmt.Sprintf("Certifications:       %d\n", n))
	}

	p.printBox("PARSED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContact outputs the extracted contact fields.
func (p *Printer) PrintContact(contact *types.ContactInfo) {
	if contact == nil || contact.IsEmpty() {
		return
	}

	var sb strings.Builder
	fields := []struct {
		label, value string
	}{
		{"Name", contact.Name},
		{"Email", contact.Email},
		{"Phone", contact.Phone},
		{"Location", contact.Location},
		{"LinkedIn", contact.LinkedIn},
		{"GitHub", contact.GitHub},
		{"Website", contact.Website},
	}
	for _, f := range fields {
		if f.value != "" {
			sb.WriteString(fmt.Sprintf("%-9s %s\n", f.label+":", f.value))
		}
	}

	p.printBox("CONTACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the top experience items with their achievements.
func (p *Printer) PrintExperience(items []types.ExperienceItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		sb.WriteString(item.Title)
		if item.Company != "" {
			sb.WriteString(" @ " + item.Company)
		}
		if item.StartDate != "" {
			sb.WriteString(fmt.Sprintf(" (%s - %s)", item.StartDate, item.EndDate))
		}
		sb.WriteString("\n")
		for j, a := range item.Achievements {
			if j >= 3 {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(item.Achievements)-3))
				break
			}
			sb.WriteString("  • " + a + "\n")
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}
