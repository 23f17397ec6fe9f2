package check_test

import (
	"testing"

	"github.com/importlint/importlint/internal/domain"
	"github.com/importlint/importlint/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckURLFields_SpacesWithoutScheme(t *testing.T) {
	src := source([]string{"organization", "url"},
		[]string{"Acme", "DOMAIN\\user password123"},
	)

	findings := check.CheckURLFields(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, domain.KindURLFormat, findings[0].Kind)
	assert.Nil(t, findings[0].Action, "ambiguous values are never auto-fixed")
}

func TestCheckURLFields_SpacesWithScheme(t *testing.T) {
	src := source([]string{"organization", "url"},
		[]string{"Acme", "https://wiki.acme.com/my page"},
	)

	findings := check.CheckURLFields(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	require.NotNil(t, findings[0].Action)
	assert.Equal(t, domain.ActionEncodeURLSpaces, findings[0].Action.Kind)
}

func TestCheckURLFields_DomainCredentials(t *testing.T) {
	src := source([]string{"organization", "url"},
		[]string{"Acme", "corp.local\\administrator"},
	)

	findings := check.CheckURLFields(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "domain credentials")
}

func TestCheckURLFields_ServiceAccountHint(t *testing.T) {
	src := source([]string{"organization", "url"},
		[]string{"Acme", "srvc_backup"},
	)

	findings := check.CheckURLFields(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "service account")
}

func TestCheckEmailFields(t *testing.T) {
	src := source([]string{"organization", "contact_email"},
		[]string{"Acme", "ops@acme.com"},
		[]string{"Acme", "not-an-email"},
		[]string{"Acme", ""},
	)

	findings := check.CheckEmailFields(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Row)
	assert.Equal(t, domain.KindEmailFormat, findings[0].Kind)
}

func TestCheckDateFields(t *testing.T) {
	src := source([]string{"organization", "valid_until"},
		[]string{"Acme", "2026-01-14"},
		[]string{"Acme", "01/14/2026"},
	)

	findings := check.CheckDateFields(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Row)
	assert.Equal(t, domain.KindDateFormat, findings[0].Kind)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
}

func TestCheckEnumFields(t *testing.T) {
	src := passwordsFile(
		[]string{"Acme", "A", "u", "p", "General"},
		[]string{"Acme", "B", "u", "p", "Miscellaneous"},
	)

	findings := check.CheckEnumFields(src, domain.TypePasswords, domain.DefaultConfig())

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, domain.SeverityWarning, f.Severity)
	assert.Equal(t, domain.KindUnknownEnumValue, f.Kind)
	assert.Equal(t, 3, f.Row)
	assert.Contains(t, f.Hints[0], "General")
}

func TestCheckControlCharacters(t *testing.T) {
	src := source([]string{"organization", "notes"},
		[]string{"Acme", "has\x00nul"},
		[]string{"Acme", "doubled\r\rending"},
	)

	findings := check.CheckControlCharacters(src, "", domain.DefaultConfig())

	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, domain.SeverityWarning, f.Severity)
		assert.Equal(t, domain.KindControlChars, f.Kind)
		require.NotNil(t, f.Action)
		assert.Equal(t, domain.ActionStripInvisible, f.Action.Kind)
	}
}

func TestCheckInvisibleCharacters(t *testing.T) {
	src := source([]string{"organization", "name"},
		[]string{"Acme", "Ser\u200bver"},
		[]string{"Acme", "Plain"},
	)

	findings := check.CheckInvisibleCharacters(src, "", domain.DefaultConfig())

	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Row)
	assert.Equal(t, domain.KindInvisibleChars, findings[0].Kind)
}

func TestCheckEmbeddedSeparators(t *testing.T) {
	src := source([]string{"organization", "notes"},
		[]string{"Acme", "servers: web, db"},
		[]string{"Acme", "line one\nline two"},
		[]string{"Acme", "plain"},
	)

	findings := check.CheckEmbeddedSeparators(src, "", domain.DefaultConfig())

	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Message, "comma(s)")
	assert.Contains(t, findings[1].Message, "line breaks")
	for _, f := range findings {
		assert.Equal(t, domain.SeverityWarning, f.Severity)
		require.NotNil(t, f.Action)
		assert.Equal(t, domain.ActionRequoteField, f.Action.Kind)
	}
}
