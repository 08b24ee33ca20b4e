package presentation

import (
	"fmt"
	"io"

	"fex/internal/domain"
)

// RunInfo is the configuration echo shown before a run.
type RunInfo struct {
	Source     string
	Dest       string
	Extensions domain.ExtensionSet
	Overwrite  bool
	Preserve   bool
	DryRun     bool
}

// Printer renders plain-text output for non-interactive sessions.
type Printer struct {
	Writer  io.Writer
	Verbose bool
}

func (p Printer) PrintHeader(info RunInfo) {
	fmt.Fprintf(p.Writer, "Source:      %s\n", info.Source)
	fmt.Fprintf(p.Writer, "Destination: %s\n", info.Dest)
	fmt.Fprintf(p.Writer, "Extensions:  %s\n", info.Extensions)
	fmt.Fprintf(p.Writer, "Duplicates:  %s\n", domain.DuplicatePolicyLabel(info.Overwrite))
	fmt.Fprintf(p.Writer, "Layout:      %s\n", domain.LayoutLabel(info.Preserve))
	if info.DryRun {
		fmt.Fprintln(p.Writer, "Dry run: nothing will be copied.")
	}
	fmt.Fprintln(p.Writer)
}

func (p Printer) PrintResult(r domain.Result) {
	switch r.Outcome {
	case domain.OutcomeCopied:
		fmt.Fprintf(p.Writer, "copied:  %s\n", r.Item.Entry.RelPath)
	case domain.OutcomeOverwritten:
		fmt.Fprintf(p.Writer, "replaced: %s\n", r.Item.Entry.RelPath)
	case domain.OutcomeSkipped:
		fmt.Fprintf(p.Writer, "skipped: %s (already exists)\n", r.Item.Entry.RelPath)
	case domain.OutcomeFailed:
		fmt.Fprintf(p.Writer, "failed:  %s (%v)\n", r.Item.Entry.RelPath, r.Err)
	}
}

func (p Printer) PrintSummary(summary domain.Summary, warnings []string) {
	fmt.Fprintf(p.Writer, "\nSummary: %d copied, %d overwritten, %d skipped, %d failed (total: %d)\n",
		summary.Copied, summary.Overwritten, summary.Skipped, summary.Failed, summary.Total())

	if summary.HasFailures() {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "Failures:")
		for _, r := range summary.Failures {
			fmt.Fprintf(p.Writer, "- %s: %v\n", r.Item.Entry.RelPath, r.Err)
		}
	}

	p.printWarnings(warnings)
}

// PrintDryRun lists the plan without touching the filesystem.
func (p Printer) PrintDryRun(plan domain.CopyPlan) {
	fmt.Fprintln(p.Writer, "Would copy:")
	fmt.Fprintln(p.Writer)

	for _, line := range formatPlanLines(plan.Items) {
		fmt.Fprintln(p.Writer, line)
	}

	fmt.Fprintf(p.Writer, "\n%d files matched. Dry run: nothing was copied.\n", len(plan.Items))
	p.printWarnings(plan.Warnings)
}

func (p Printer) PrintNoMatches() {
	fmt.Fprintln(p.Writer, "No files found with the specified extensions.")
}

func (p Printer) PrintCancelled() {
	fmt.Fprintln(p.Writer, "Operation cancelled by user.")
}

func (p Printer) printWarnings(warnings []string) {
	if !p.Verbose || len(warnings) == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Warnings:")
	for _, warning := range warnings {
		fmt.Fprintln(p.Writer, "- "+warning)
	}
}

func formatPlanLines(items []domain.CopyItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s  ->  %s", item.Entry.RelPath, item.TargetPath))
	}

	if len(lines) <= 4 {
		return lines
	}
	head := lines[:2]
	tail := lines[len(lines)-2:]
	return append(append(head, "..."), tail...)
}

