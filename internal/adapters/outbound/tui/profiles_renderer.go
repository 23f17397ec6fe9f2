package tui

import (
	"strings"

	"github.com/importlint/importlint/internal/domain"
)

// RenderProfiles renders the header requirements for every known
// record type.
func RenderProfiles() string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("importlint") + "\n" + dimStyle.Render("record type profiles")))
	b.WriteString("\n\n")

	for _, rt := range domain.TypeKeys() {
		profile, ok := domain.ProfileFor(rt)
		if !ok {
			continue
		}

		b.WriteString(titleStyle.Render(string(rt)))
		b.WriteString("\n")
		b.WriteString("  required:    " + strings.Join(profile.Required, ", ") + "\n")
		if len(profile.Recommended) > 0 {
			b.WriteString("  recommended: " + warnStyle.Render(strings.Join(profile.Recommended, ", ")) + "\n")
		}
		for field, values := range profile.Enums {
			b.WriteString(dimStyle.Render("  "+field+" accepts: "+strings.Join(values, ", ")) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("Header names must match exactly, all lowercase with underscores."))
	b.WriteString("\n")

	return b.String()
}
