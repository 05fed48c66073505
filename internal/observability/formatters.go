// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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

// valueOrNA substitutes "N/A" for fields the extractor could not fill.
func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintRecord outputs a human-readable summary of one parsed resume.
func (p *Printer) PrintRecord(filename string, record *types.ExtractedRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", filename))
	sb.WriteString(fmt.Sprintf("Name:   %s\n", valueOrNA(record.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", valueOrNA(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", valueOrNA(record.Phone)))

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\nSkills: none matched\n")
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ranked resumes with their scores.
func (p *Printer) PrintRanking(ranked []types.RankedResume) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resumes ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranked[i]
		label := valueOrNA(r.Name)
		if r.Filename != "" {
			label = fmt.Sprintf("%s (%s)", label, r.Filename)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", r.Score))
		if r.Skills != "" {
			skills := r.Skills
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED RESUMES", sb.String())
}
