// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/geo-radar/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSourcesToShow is the default number of sources to display per engine
	maxSourcesToShow = 5
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

// PrintOrganizationConfig outputs a human-readable summary of one loaded
// organization taxonomy.
func (p *Printer) PrintOrganizationConfig(cfg types.OrganizationConfig) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Target:   %s\n", cfg.TargetDomain))
	sb.WriteString(fmt.Sprintf("Partners: %d\n", len(cfg.Partners)))
	sb.WriteString(fmt.Sprintf("Keywords: %d", len(cfg.Keywords)))

	p.printBox("Organization: "+cfg.Name, sb.String())
}

// PrintQueryResult outputs the per-engine scores and sources for one
// evaluated query.
func (p *Printer) PrintQueryResult(result types.EngineResult) {
	var sb strings.Builder

	for _, answer := range result.Answers {
		if answer.Failed {
			sb.WriteString(fmt.Sprintf("%-12s ERREUR\n", answer.Engine))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s %3d/100  %s\n",
			answer.Engine, answer.Score, strings.Join(answer.Breakdown, ", ")))

		sources := answer.Sources
		if len(sources) > maxSourcesToShow {
			sources = sources[:maxSourcesToShow]
		}
		if len(sources) > 0 {
			sb.WriteString(fmt.Sprintf("  sources: %s\n", strings.Join(sources, ", ")))
		}
	}
	sb.WriteString(fmt.Sprintf("Global: %.1f/100", result.GlobalScore))

	p.printBox("Query: "+result.Query, sb.String())
}

// PrintRunSummary outputs the end-of-run totals.
func (p *Printer) PrintRunSummary(queries, persisted int) {
	p.printBox("Run complete", fmt.Sprintf("Queries:   %d\nPersisted: %d", queries, persisted))
}
