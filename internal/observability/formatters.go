// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/bachflower-advisor/internal/catalog"
	"github.com/jonathan/bachflower-advisor/internal/types"
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

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printEmptyBox prints a single-line box
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printEmptyBox(message string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// writeTier lists up to maxItemsToShow remedies of one tier
func writeTier(sb *strings.Builder, label string, scored []types.ScoredRemedy) {
	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(scored)))
	count := min(len(scored), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := scored[i]
		sb.WriteString(fmt.Sprintf("  • %s  %.2f\n", s.Remedy.DisplayName(), s.Scores.Total))
	}
	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(scored)-maxItemsToShow))
	}
}

// PrintSuggestions outputs the tiered suggestions and run statistics.
func (p *Printer) PrintSuggestions(result *types.SuggestionResult) {
	if result == nil {
		return
	}
	if result.PriorityGroups.Len() == 0 {
		p.printEmptyBox("NO SUGGESTIONS")
		return
	}

	var sb strings.Builder
	writeTier(&sb, "High priority", result.PriorityGroups.HighPriority)
	writeTier(&sb, "Medium priority", result.PriorityGroups.MediumPriority)
	writeTier(&sb, "Additional options", result.PriorityGroups.AdditionalOptions)
	sb.WriteString("\n")

	stats := result.Statistics
	sb.WriteString(fmt.Sprintf("Remedies scored: %d\n", stats.TotalMatches))
	sb.WriteString(fmt.Sprintf("Average score:   %.2f\n", stats.AverageScore))
	if len(stats.CoveragePerGroup) > 0 {
		sb.WriteString("Coverage:\n")
		groups := make([]string, 0, len(stats.CoveragePerGroup))
		for group := range stats.CoveragePerGroup {
			groups = append(groups, group)
		}
		catalog.SortCategories(groups)
		for _, group := range groups {
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", group, stats.CoveragePerGroup[group]))
		}
	}

	p.printBox("REMEDY SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N ranked remedies with notes.
func (p *Printer) PrintRanking(ranking *types.RankedSuggestions) {
	if ranking == nil || len(ranking.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total remedies ranked: %d\n\n", len(ranking.Ranked)))

	count := min(len(ranking.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := ranking.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", r.Rank, r.Remedy.DisplayName()))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)\n", r.Scores.Total, r.Tier))
		if r.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranking.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more remedies", len(ranking.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED REMEDIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the summary of one parameter evaluation run.
func (p *Printer) PrintEvaluation(report *types.EvaluationReport) {
	if report == nil {
		return
	}

	title := "PARAMETER EVALUATION"
	if report.Name != "" {
		title = fmt.Sprintf("%s: %s", title, report.Name)
	}

	params := report.Parameters
	summary := report.Summary

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:       %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Weights:   %.2f / %.2f / %.2f / %.2f\n",
		params.PrimaryWeight, params.SecondaryWeight, params.EmotionalGroupWeight, params.CoverageWeight))
	sb.WriteString(fmt.Sprintf("Passed:    %d/%d\n", summary.PassedScenarios, summary.TotalScenarios))
	sb.WriteString(fmt.Sprintf("Accuracy:  %.2f\n", summary.AverageAccuracy))
	sb.WriteString(fmt.Sprintf("Coverage:  %.2f\n", summary.AverageCoverage))
	sb.WriteString(fmt.Sprintf("Balance:   %.2f\n", summary.AverageBalance))

	if len(summary.FailedScenarios) > 0 {
		sb.WriteString("\nFailed:\n")
		count := min(len(summary.FailedScenarios), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", summary.FailedScenarios[i]))
		}
		if len(summary.FailedScenarios) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.FailedScenarios)-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs catalog normalization warnings.
func (p *Printer) PrintWarnings(warnings []catalog.Warning) {
	if len(warnings) == 0 {
		p.printEmptyBox("✅ CATALOG IS CLEAN")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	count := min(len(warnings), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warnings[i]))
	}
	if len(warnings) > count {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(warnings)-count))
	}

	p.printBox("CATALOG WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSymptoms outputs symptom search results.
func (p *Printer) PrintSymptoms(term string, symptoms []types.Symptom) {
	if len(symptoms) == 0 {
		p.printEmptyBox(fmt.Sprintf("NO SYMPTOMS MATCH %q", term))
		return
	}

	var sb strings.Builder
	for _, s := range symptoms {
		sb.WriteString(fmt.Sprintf("• %s\n", s.Name))
		sb.WriteString(fmt.Sprintf("  %s [%s]\n", s.ID, s.EmotionCategory))
	}

	p.printBox(fmt.Sprintf("SYMPTOMS MATCHING %q", term), strings.TrimSuffix(sb.String(), "\n"))
}
