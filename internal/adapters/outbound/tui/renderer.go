package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/importlint/importlint/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders one file's validation report. Findings keep
// their emission order within each severity group; errors come first.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("importlint")
	fileLine := titleStyle.Render(report.File)
	typeLine := dimStyle.Render("type: " + detectedTypeLabel(report.DetectedType))
	verdict := verdictStyled(report.Verdict())

	b.WriteString(boxStyle.Render(title + "\n" + fileLine + "\n" + typeLine + "\n\n" + verdict))
	b.WriteString("\n\n")

	errors := report.Errors()
	warnings := report.Warnings()

	if len(errors) > 0 {
		b.WriteString("  ")
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d error(s): the import will fail", len(errors))))
		b.WriteString("\n\n")
		for _, f := range errors {
			renderFinding(&b, f)
		}
		b.WriteString("\n")
	}

	if len(warnings) > 0 {
		b.WriteString("  ")
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warning(s): may cause import issues", len(warnings))))
		b.WriteString("\n\n")
		for _, f := range warnings {
			renderFinding(&b, f)
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n")
	b.WriteString(verdictFooter(report))
	return b.String()
}

func renderFinding(b *strings.Builder, f domain.Finding) {
	tag := errorTagStyle.Render("error")
	if f.Severity == domain.SeverityWarning {
		tag = warnTagStyle.Render("warn ")
	}

	fmt.Fprintf(b, "    %s %s\n", tag, f.Message)
	for _, hint := range f.Hints {
		fmt.Fprintf(b, "          %s\n", dimStyle.Render("→ "+hint))
	}
}

func verdictStyled(verdict string) string {
	switch verdict {
	case domain.VerdictClean:
		return passStyle.Bold(true).Render("CLEAN")
	case domain.VerdictReview:
		return warnStyle.Bold(true).Render("REVIEW")
	default:
		return failStyle.Bold(true).Render("FAIL")
	}
}

func verdictFooter(report *domain.Report) string {
	switch report.Verdict() {
	case domain.VerdictClean:
		return "  " + passStyle.Render("No issues found. File appears ready for import.") + "\n" +
			"  " + hintStyle.Render("Test with 5-10 rows first to verify.") + "\n"
	case domain.VerdictReview:
		return "  " + passStyle.Render("No blocking errors; the file may import.") + "\n" +
			"  " + hintStyle.Render("Review the warnings above, then test with 5-10 rows.") + "\n"
	default:
		return "  " + failStyle.Render("Blocking errors found. Fix these before attempting the import.") + "\n" +
			"  " + hintStyle.Render("Run importlint fix to create a corrected copy.") + "\n"
	}
}

func detectedTypeLabel(rt domain.RecordType) string {
	if rt == "" {
		return "unknown (validation may be limited)"
	}
	return strings.ReplaceAll(string(rt), "_", " ")
}

// RenderSummary renders the multi-file pass/fail table.
func RenderSummary(reports []*domain.Report) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation Summary") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range reports {
		status := passStyle.Render("PASS")
		if !r.Passed() {
			status = failStyle.Render("FAIL")
		}
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			status,
			r.File,
			dimStyle.Render(fmt.Sprintf("errors: %d, warnings: %d", len(r.Errors()), len(r.Warnings()))),
		)
	}
	return b.String()
}
