// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/founder-fit/internal/types"
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

// PrintTraitScores outputs the normalized trait profile in canonical
// trait order.
func (p *Printer) PrintTraitScores(scores types.TraitScores) {
	var sb strings.Builder

	for _, trait := range types.AllTraits {
		value := scores.Get(trait)
		bar := strings.Repeat("█", int(value*2))
		sb.WriteString(fmt.Sprintf("%-22s %3.1f  %s\n", trait, value, bar))
	}

	p.printBox("TRAIT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedModels outputs the top matches with their fit percentages.
func (p *Printer) PrintRankedModels(ranked types.RankedModelList) {
	if len(ranked.Models) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total models ranked: %d\n\n", len(ranked.Models)))

	count := min(len(ranked.Models), maxItemsToShow)
	for i := 0; i < count; i++ {
		model := ranked.Models[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, model.DisplayName))
		sb.WriteString(fmt.Sprintf("    Match: %d%%  (%s)\n", model.Percentage, model.Category))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ranked.Models) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n  ... and %d more\n", len(ranked.Models)-maxItemsToShow))
	}

	p.printBox("RANKED BUSINESS MODELS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGenerationResult outputs a summary of the generated report.
func (p *Printer) PrintGenerationResult(result *types.GenerationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Top match: %s (%d%%)\n", result.TopModel.DisplayName, result.TopModel.Percentage))
	sb.WriteString("\n")

	if result.Insights.Summary != "" {
		sb.WriteString("Summary:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", result.Insights.Summary))
		sb.WriteString("\n")
	}

	if len(result.Insights.KeyInsights) > 0 {
		sb.WriteString("Key Insights:\n")
		count := min(len(result.Insights.KeyInsights), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Insights.KeyInsights[i]))
		}
		if len(result.Insights.KeyInsights) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Insights.KeyInsights)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Analysis.Characteristics) > 0 {
		sb.WriteString("Characteristics:\n")
		for _, c := range result.Analysis.Characteristics {
			sb.WriteString(fmt.Sprintf("  • %s\n", c.Title))
		}
	}

	p.printBox("GENERATED REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCacheStatus outputs a summary of the report cache.
func (p *Printer) PrintCacheStatus(status types.CacheStatus) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Valid entries: %d\n", status.Count))
	sb.WriteString(fmt.Sprintf("Total size:    %d bytes\n", status.TotalSizeBytes))
	if !status.OldestTimestamp.IsZero() {
		sb.WriteString(fmt.Sprintf("Oldest entry:  %s", status.OldestTimestamp.Format("2006-01-02 15:04:05")))
	}

	p.printBox("CACHE STATUS", strings.TrimSuffix(sb.String(), "\n"))
}
