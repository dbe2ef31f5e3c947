package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arborlab/morpho/pkg/morph"
	"github.com/arborlab/morpho/pkg/morph/check"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - passing checks
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - failing checks
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stylePass    = lipgloss.NewStyle().Foreground(colorGreen)
	styleFail    = lipgloss.NewStyle().Foreground(colorRed)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// renderReport formats a check report for the terminal: one line per
// validator per neurite, issue details indented below failures, structural
// warnings and a summary at the end.
func renderReport(report *check.Report, m *morph.Morphology) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("Check report for %s", report.Morphology)))
	b.WriteString(styleDim.Render(fmt.Sprintf("  run %s", report.RunID)))
	b.WriteString("\n\n")

	failed := 0
	for _, e := range report.Entries {
		target := fmt.Sprintf("neurite %d (%s)", e.Neurite, e.Type)
		if e.Passed {
			b.WriteString(stylePass.Render("  ✓ " + e.Check))
		} else {
			failed++
			b.WriteString(styleFail.Render("  ✗ " + e.Check))
		}
		b.WriteString(styleDim.Render("  " + target))
		b.WriteString("\n")
		for _, issue := range e.Issues {
			b.WriteString(styleDim.Render("      " + issue.String()))
			b.WriteString("\n")
		}
	}

	if warnings := m.Warnings(); len(warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(styleWarning.Render(fmt.Sprintf("  %d structural warning(s) from reconstruction", len(warnings))))
		b.WriteString("\n")
		for _, w := range warnings {
			b.WriteString(styleDim.Render("      " + w.Message))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if failed == 0 {
		b.WriteString(stylePass.Render(fmt.Sprintf("  all %d checks passed", len(report.Entries))))
	} else {
		b.WriteString(styleFail.Render(fmt.Sprintf("  %d of %d checks failed", failed, len(report.Entries))))
	}
	b.WriteString("\n")

	return b.String()
}
