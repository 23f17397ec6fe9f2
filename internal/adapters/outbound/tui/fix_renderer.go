package tui

import (
	"fmt"
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

var sectionHeaderStyle = titleStyle

// RenderFixResult renders the outcome of a fix run: what was applied,
// what the operator still has to do by hand, and whether the output
// verified clean.
func RenderFixResult(res *domain.FixResult) string {
	var b strings.Builder

	if res.OutputPath == "" {
		b.WriteString("  " + titleStyle.Render("Fix plan (dry run)") + "\n\n")
	} else {
		b.WriteString("  " + passStyle.Render("Fixed file created: "+res.OutputPath) + "\n\n")
	}

	if len(res.Applied) == 0 {
		b.WriteString("  " + dimStyle.Render("No automatic fixes were applicable.") + "\n")
	} else {
		b.WriteString("  " + sectionHeaderStyle.Render("Fixes") + " " +
			dimStyle.Render(fmt.Sprintf("(%d)", len(res.Applied))) + "\n")
		for _, fix := range res.Applied {
			line := fmt.Sprintf("    %s %s", passStyle.Render("●"), fix.Description)
			if fix.Cells > 1 {
				line += "  " + faintStyle.Render(fmt.Sprintf("(%d cells)", fix.Cells))
			}
			b.WriteString(line + "\n")
		}
	}

	for _, w := range res.Warnings {
		b.WriteString("    " + warnTagStyle.Render("warn ") + " " + w + "\n")
	}

	if res.OutputPath != "" {
		b.WriteString("\n")
		if res.Verified {
			b.WriteString("  " + passStyle.Render("Verified: no byte-order mark in the output file.") + "\n")
		} else {
			b.WriteString("  " + failStyle.Render("Could not verify the output file; please report this issue.") + "\n")
		}
		b.WriteString("\n")
		b.WriteString("  " + hintStyle.Render("Next: review the fixed file, re-validate it, then test the import with 5-10 rows.") + "\n")
	}

	return b.String()
}
