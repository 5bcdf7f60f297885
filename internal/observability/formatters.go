// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dhakago/jobdesc-cli/internal/types"
	"github.com/dhakago/jobdesc-cli/internal/workflow"
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

func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// PrintJobDescription outputs a human-readable summary of a full record,
// including its version history.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Code:       %s\n", jd.JobCode))
	sb.WriteString(fmt.Sprintf("Position:   %s\n", jd.JobInformation.Posisi))
	if jd.JobInformation.Divisi != "" {
		sb.WriteString(fmt.Sprintf("Division:   %s\n", jd.JobInformation.Divisi))
	}
	sb.WriteString(fmt.Sprintf("Department: %s\n", jd.JobInformation.Departemen))
	if jd.Company != nil {
		sb.WriteString(fmt.Sprintf("Company:    %s - %s\n", jd.Company.Code, jd.Company.Name))
	}
	if jd.Level != nil {
		sb.WriteString(fmt.Sprintf("Level:      %s\n", jd.Level.Name))
	}

	status := strings.ToUpper(string(jd.Status))
	if jd.AIGenerated {
		status += " (AI generated)"
	}
	sb.WriteString(fmt.Sprintf("Status:     %s, v%d\n", status, jd.Version))
	if jd.ApprovedAt != nil {
		sb.WriteString(fmt.Sprintf("Approved:   %s by %s\n", formatDate(*jd.ApprovedAt), jd.ApprovedBy))
	}

	if jd.MainPurpose != "" {
		sb.WriteString("\nMain Purpose:\n")
		sb.WriteString("  " + jd.MainPurpose + "\n")
	}

	if len(jd.JobDescriptions) > 0 {
		sb.WriteString("\nDuties:\n")
		count := min(len(jd.JobDescriptions), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := jd.JobDescriptions[i]
			sb.WriteString(fmt.Sprintf("  %d. %s\n", item.No, item.Description))
		}
		if len(jd.JobDescriptions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.JobDescriptions)-maxItemsToShow))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintVersionHistory(jd)
}

// PrintVersionHistory outputs the version history of a record, newest first.
func (p *Printer) PrintVersionHistory(jd *types.JobDescription) {
	if jd == nil || len(jd.Versions) == 0 {
		return
	}

	var sb strings.Builder
	for i := len(jd.Versions) - 1; i >= 0; i-- {
		snap := jd.Versions[i]
		marker := " "
		if snap.Version == jd.Version {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s v%-3d %s  %s\n", marker, snap.Version, formatDate(snap.CreatedAt), snap.ChangedBy))
		if snap.ChangeDescription != "" {
			sb.WriteString(fmt.Sprintf("       %s\n", snap.ChangeDescription))
		}
	}

	p.printBox("VERSION HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the candidates returned by a similarity check, best
// match first.
func (p *Printer) PrintMatches(matches []types.SimilarityMatch) {
	if len(matches) == 0 {
		p.printBox("SIMILARITY CHECK", "No similar job descriptions found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d similar job description(s):\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%d%% match)\n", i+1, m.Posisi, m.Similarity))
		line := fmt.Sprintf("    %s • %s", m.JobCode, m.Departemen)
		if m.Company != nil {
			line += " • " + m.Company.Code
		}
		sb.WriteString(line + "\n")
		sb.WriteString(fmt.Sprintf("    %s, v%d, created %s\n", m.Status, m.Version, formatDate(m.CreatedAt)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("SIMILAR JOB DESCRIPTIONS", sb.String())
}

// PrintImportOutcome outputs the reconciled result of a bulk import, both
// lists in full.
func (p *Printer) PrintImportOutcome(outcome *workflow.ImportOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Submitted: %d  Succeeded: %d  Failed: %d  Skipped: %d\n",
		len(outcome.Accepted), len(outcome.Result.Success), len(outcome.Result.Failed), len(outcome.Dropped)))

	if len(outcome.Result.Success) > 0 {
		sb.WriteString("\nImported:\n")
		for _, s := range outcome.Result.Success {
			sb.WriteString(fmt.Sprintf("  ✔ %s  %s (%s)\n", s.JobCode, s.Posisi, s.Filename))
		}
	}

	if len(outcome.Result.Failed) > 0 {
		sb.WriteString("\nFailed:\n")
		for _, f := range outcome.Result.Failed {
			sb.WriteString(fmt.Sprintf("  ✖ %s: %s\n", f.Filename, f.Error))
		}
	}

	if len(outcome.Dropped) > 0 {
		sb.WriteString("\nSkipped (unsupported extension):\n")
		for _, name := range outcome.Dropped {
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		}
	}

	p.printBox("BULK IMPORT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
