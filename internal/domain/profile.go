package domain

import "strings"

// RecordType identifies the import profile a file is validated
// against. An empty value means detection failed.
type RecordType string

const (
	TypeConfigurations  RecordType = "configurations"
	TypeContacts        RecordType = "contacts"
	TypeLocations       RecordType = "locations"
	TypePasswords       RecordType = "passwords"
	TypeFlexibleAssets  RecordType = "flexible_assets"
	TypeOrganizations   RecordType = "organizations"
	TypeSSLCertificates RecordType = "ssl_certificates"
	TypeCertificates    RecordType = "certificates"
)

// ScopeField associates a row with its owning top-level entity. Every
// profile except organizations requires it, and several content checks
// key off it. The target system matches it by exact string.
const ScopeField = "organization"

// Profile describes the structural contract for one record type:
// required headers in their exact expected case, recommended headers,
// closed enumerations for specific fields, and the optional headers
// whose case still matters when present.
type Profile struct {
	Type          RecordType          `json:"type"`
	Required      []string            `json:"required"`
	Recommended   []string            `json:"recommended,omitempty"`
	Enums         map[string][]string `json:"enums,omitempty"`
	OptionalKnown []string            `json:"optional_known,omitempty"`
}

// PasswordCategories is the closed set of category names the target
// system ships with.
var PasswordCategories = []string{
	"General",
	"Administrative",
	"Database",
	"Email",
	"Network",
	"Application",
	"Service Account",
	"Vendor",
	"VPN",
	"Web Application",
	"SSH Key",
	"API Key",
}

// Profiles is the fixed record-type table, initialized once at process
// start and read-only afterwards.
var Profiles = map[RecordType]Profile{
	TypeConfigurations: {
		Type:     TypeConfigurations,
		Required: []string{ScopeField, "configuration_type_name", "name"},
	},
	TypeContacts: {
		Type:     TypeContacts,
		Required: []string{ScopeField, "first_name", "last_name"},
	},
	TypeLocations: {
		Type:     TypeLocations,
		Required: []string{ScopeField, "name"},
	},
	TypePasswords: {
		Type:        TypePasswords,
		Required:    []string{ScopeField, "name", "username", "password"},
		Recommended: []string{"password_category"},
		Enums: map[string][]string{
			"password_category": PasswordCategories,
		},
		OptionalKnown: []string{"password_category", "url", "notes"},
	},
	TypeFlexibleAssets: {
		Type:     TypeFlexibleAssets,
		Required: []string{ScopeField, "flexible_asset_type_name", "name"},
	},
	TypeOrganizations: {
		Type:     TypeOrganizations,
		Required: []string{"name"},
	},
	TypeSSLCertificates: {
		Type:     TypeSSLCertificates,
		Required: []string{ScopeField, "name"},
	},
	TypeCertificates: {
		Type:     TypeCertificates,
		Required: []string{ScopeField, "name"},
	},
}

// TypeKeys returns all known record type keys in a stable order.
func TypeKeys() []RecordType {
	return []RecordType{
		TypeConfigurations, TypeContacts, TypeLocations, TypePasswords,
		TypeFlexibleAssets, TypeOrganizations, TypeSSLCertificates,
		TypeCertificates,
	}
}

// ProfileFor looks up the profile for a detected type.
func ProfileFor(rt RecordType) (Profile, bool) {
	p, ok := Profiles[rt]
	return p, ok
}

// PlaceholderScopeNames are organization values that are obviously
// template leftovers, compared case-insensitively after trimming.
var PlaceholderScopeNames = []string{
	"test", "example", "sample", "your organization", "org name",
	"company name",
}

// IsPlaceholderScope reports whether a trimmed organization value is a
// known template placeholder.
func IsPlaceholderScope(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, p := range PlaceholderScopeNames {
		if v == p {
			return true
		}
	}
	return false
}

// ExportOnlyColumns are headers the target system emits on export but
// ignores or rejects on import.
var ExportOnlyColumns = []string{
	"id", "created_at", "updated_at", "resource_url", "organization_id",
}

// UnsafeScopeChars cause lookup failures when they appear in an
// organization name.
const UnsafeScopeChars = `<>|\/*?:`

// Field value length limits. The hard ceiling blocks the import; the
// soft threshold is advisory.
const (
	HardFieldLimit = 65535
	SoftFieldLimit = 10000
)

// FillOptions returns the enumerated choices offered for an empty
// required field, with the documented default first.
func FillOptions(field string) []string {
	switch strings.ToLower(field) {
	case "username":
		return []string{"N/A", "(No Username)", "Password Only", "(See Notes)"}
	case "password":
		return []string{"(See Notes)", "N/A", "(No Password)", "********"}
	case "password_category":
		return append([]string(nil), PasswordCategories...)
	default:
		return []string{"N/A", "(Not Specified)"}
	}
}

// DefaultFill returns the value used when the caller supplies no
// resolved choice for a field: the first enumerated option.
func DefaultFill(field string) string {
	return FillOptions(field)[0]
}
