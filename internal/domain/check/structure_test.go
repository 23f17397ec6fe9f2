package check_test

import (
	"strings"
	"testing"

	"github.com/importlint/importlint/internal/domain"
	"github.com/importlint/importlint/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckByteOrderMark(t *testing.T) {
	src := passwordsFile([]string{"Acme", "Server", "admin", "secret", "General"})
	assert.Empty(t, check.CheckByteOrderMark(src, domain.TypePasswords, domain.DefaultConfig()))

	src.HadBOM = true
	findings := check.CheckByteOrderMark(src, domain.TypePasswords, domain.DefaultConfig())
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, domain.KindByteOrderMark, findings[0].Kind)
	require.NotNil(t, findings[0].Action)
	assert.Equal(t, domain.ActionStripBOM, findings[0].Action.Kind)
}

func TestCheckByteOrderMark_OnFirstHeader(t *testing.T) {
	src := source([]string{"\uFEFForganization", "name"}, []string{"Acme", "Server"})

	findings := check.CheckByteOrderMark(src, "", domain.DefaultConfig())
	require.Len(t, findings, 1)
	assert.Equal(t, domain.KindByteOrderMark, findings[0].Kind)
}

func TestCheckWhitespaceOnlyCells(t *testing.T) {
	src := source([]string{"organization", "name"},
		[]string{"Acme", "   "},
		[]string{"Acme", "Server"},
		[]string{"Acme", ""},
	)

	findings := check.CheckWhitespaceOnlyCells(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1, "truly empty cells are fine")
	f := findings[0]
	assert.Equal(t, domain.SeverityError, f.Severity)
	assert.Equal(t, domain.KindWhitespaceOnly, f.Kind)
	assert.Equal(t, 2, f.Row)
	assert.Equal(t, "name", f.Field)
	require.NotNil(t, f.Action)
	assert.Equal(t, domain.ActionNormalizeWhitespace, f.Action.Kind)
}

func TestCheckQuoteBalance(t *testing.T) {
	src := source([]string{"organization", "name"},
		[]string{"Acme", `the "good" server`},
		[]string{"Acme", `broken " quote`},
	)

	findings := check.CheckQuoteBalance(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Row)
	assert.Equal(t, domain.KindUnbalancedQuotes, findings[0].Kind)
}

func TestCheckTrailingDelimiters(t *testing.T) {
	src := source([]string{"organization", "name"}, []string{"Acme", "Server"})
	src.RawLines = []string{
		"Acme,Server",
		"Acme,Server,,,",
		`Acme,"a, quoted, value"`,
	}

	findings := check.CheckTrailingDelimiters(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1, "separators inside quotes do not count")
	assert.Equal(t, 3, findings[0].Row)
	assert.Equal(t, domain.KindTrailingDelimiter, findings[0].Kind)
	assert.Contains(t, findings[0].Message, "3 extra separator(s)")
}

func TestCheckColumnCounts(t *testing.T) {
	src := source([]string{"organization", "name", "notes"},
		[]string{"Acme", "Server", "ok"},
		[]string{"Acme", "Short"},
		[]string{"", ""},
	)

	findings := check.CheckColumnCounts(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1, "fully empty rows are padding, not findings")
	assert.Equal(t, 3, findings[0].Row)
	assert.Equal(t, domain.KindColumnCount, findings[0].Kind)
}

func TestCheckRowCount_Empty(t *testing.T) {
	src := source([]string{"organization", "name"})

	findings := check.CheckRowCount(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, domain.KindRowCount, findings[0].Kind)
}

func TestCheckRowCount_LargeImport(t *testing.T) {
	threshold := 3
	cfg := domain.Config{LargeImportThreshold: &threshold}
	src := source([]string{"organization", "name"},
		[]string{"Acme", "A"}, []string{"Acme", "B"},
		[]string{"Acme", "C"}, []string{"Acme", "D"},
	)

	findings := check.CheckRowCount(src, "", cfg)

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "4 rows")
}

func TestCheckIncompleteRows(t *testing.T) {
	src := source([]string{"organization", "name", "username"},
		[]string{"Acme", "", ""},
		[]string{"Acme", "Server", ""},
	)

	findings := check.CheckIncompleteRows(src, domain.TypePasswords, domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Row)
	assert.Equal(t, domain.KindIncompleteRow, findings[0].Kind)
}

func TestCheckIncompleteRows_SkipsOrganizations(t *testing.T) {
	src := source([]string{"organization", "name"}, []string{"Acme", ""})

	assert.Empty(t, check.CheckIncompleteRows(src, domain.TypeOrganizations, domain.DefaultConfig()))
	assert.Empty(t, check.CheckIncompleteRows(src, "", domain.DefaultConfig()))
}

func TestCheckFieldLengths_UsesSharedLimits(t *testing.T) {
	long := strings.Repeat("x", domain.SoftFieldLimit+1)
	src := source([]string{"organization", "notes"}, []string{"Acme", long})

	findings := check.CheckFieldLengths(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Equal(t, domain.KindFieldTooLong, findings[0].Kind)
}
