package domain_test

import (
	"testing"

	"github.com/importlint/importlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor_KnownTypes(t *testing.T) {
	for _, rt := range domain.TypeKeys() {
		p, ok := domain.ProfileFor(rt)
		require.True(t, ok, "type %s should have a profile", rt)
		assert.NotEmpty(t, p.Required, "type %s should have required fields", rt)
	}

	_, ok := domain.ProfileFor("")
	assert.False(t, ok)
}

func TestProfileFor_Passwords(t *testing.T) {
	p, ok := domain.ProfileFor(domain.TypePasswords)
	require.True(t, ok)

	assert.Equal(t, []string{"organization", "name", "username", "password"}, p.Required)
	assert.Equal(t, []string{"password_category"}, p.Recommended)
	assert.Equal(t, domain.PasswordCategories, p.Enums["password_category"])
}

func TestProfileFor_OrganizationsHaveNoScope(t *testing.T) {
	p, ok := domain.ProfileFor(domain.TypeOrganizations)
	require.True(t, ok)
	assert.NotContains(t, p.Required, domain.ScopeField)
}

func TestIsPlaceholderScope(t *testing.T) {
	assert.True(t, domain.IsPlaceholderScope("test"))
	assert.True(t, domain.IsPlaceholderScope("  Example  "))
	assert.True(t, domain.IsPlaceholderScope("Your Organization"))
	assert.False(t, domain.IsPlaceholderScope("Acme Corp"))
	assert.False(t, domain.IsPlaceholderScope("Testing Labs"), "substring is not a placeholder")
}

func TestFillOptions_DefaultFirst(t *testing.T) {
	assert.Equal(t, "N/A", domain.FillOptions("username")[0])
	assert.Equal(t, "(See Notes)", domain.FillOptions("Password")[0], "case-insensitive field lookup")
	assert.Equal(t, domain.PasswordCategories[0], domain.FillOptions("password_category")[0])
	assert.Equal(t, "N/A", domain.FillOptions("notes")[0], "generic fields")
}

func TestDefaultFill(t *testing.T) {
	for _, field := range []string{"username", "password", "password_category", "serial_number"} {
		assert.Equal(t, domain.FillOptions(field)[0], domain.DefaultFill(field), field)
	}
}
