package detect_test

import (
	"testing"

	"github.com/importlint/importlint/internal/domain"
	"github.com/importlint/importlint/internal/domain/detect"
	"github.com/stretchr/testify/assert"
)

func TestDetect_HeaderRules(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		want     domain.RecordType
		detected bool
	}{
		{"configurations discriminator", []string{"organization", "configuration_type_name", "name"}, domain.TypeConfigurations, true},
		{"flexible assets discriminator", []string{"organization", "flexible_asset_type_name", "name"}, domain.TypeFlexibleAssets, true},
		{"ssl by issued_by", []string{"organization", "name", "issued_by"}, domain.TypeSSLCertificates, true},
		{"ssl by valid_until", []string{"organization", "name", "valid_until"}, domain.TypeSSLCertificates, true},
		{"contacts pair", []string{"organization", "first_name", "last_name"}, domain.TypeContacts, true},
		{"locations by address", []string{"organization", "name", "address_1"}, domain.TypeLocations, true},
		{"locations by city", []string{"organization", "name", "city"}, domain.TypeLocations, true},
		{"passwords pair", []string{"organization", "name", "username", "password"}, domain.TypePasswords, true},
		{"organizations lack a scope column", []string{"name", "description"}, domain.TypeOrganizations, true},
		{"scoped name-only file is ambiguous", []string{"organization", "name"}, "", false},
		{"case-insensitive headers", []string{"Organization", "First_Name", "Last_Name"}, domain.TypeContacts, true},
		{"no match", []string{"alpha", "beta"}, "", false},
	}

	for _, tt := range tests {
		got, ok := detect.Detect(tt.headers, "data.csv")
		assert.Equal(t, tt.detected, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestDetect_DiscriminatorBeatsPair(t *testing.T) {
	// configuration_type_name wins even when the password pair is present.
	headers := []string{"organization", "configuration_type_name", "name", "username", "password"}
	got, ok := detect.Detect(headers, "data.csv")
	assert.True(t, ok)
	assert.Equal(t, domain.TypeConfigurations, got)
}

func TestDetect_FilenameFallback(t *testing.T) {
	tests := []struct {
		filename string
		want     domain.RecordType
	}{
		{"passwords.csv", domain.TypePasswords},
		{"acme-contacts-2026.csv", domain.TypeContacts},
		{"My PasswordsExport.csv", domain.TypePasswords},
		{"SslCertificatesDump.csv", domain.TypeSSLCertificates},
	}

	for _, tt := range tests {
		got, ok := detect.Detect([]string{"organization", "name"}, tt.filename)
		assert.True(t, ok, tt.filename)
		assert.Equal(t, tt.want, got, tt.filename)
	}

	_, ok := detect.Detect([]string{"organization", "name"}, "export.csv")
	assert.False(t, ok, "uninformative filename")
}

func TestDetect_BOMOnFirstHeader(t *testing.T) {
	got, ok := detect.Detect([]string{"\uFEFForganization", "first_name", "last_name"}, "data.csv")
	assert.True(t, ok)
	assert.Equal(t, domain.TypeContacts, got)
}
