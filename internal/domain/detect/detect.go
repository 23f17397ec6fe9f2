// Package detect infers the record type of an import file from its
// header row, falling back to filename hints. Detection is heuristic:
// a miss is advisory, never fatal, so unrecognized files still get
// every type-agnostic check.
package detect

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/importlint/importlint/internal/domain"
)

// Detect applies the detection rules in priority order, first match
// wins. Header comparison is case-insensitive. Returns false when no
// rule matches.
func Detect(headers []string, filename string) (domain.RecordType, bool) {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[strings.ToLower(strings.TrimPrefix(h, "\uFEFF"))] = true
	}

	// 1. Type-specific discriminator fields.
	switch {
	case set["configuration_type_name"]:
		return domain.TypeConfigurations, true
	case set["flexible_asset_type_name"]:
		return domain.TypeFlexibleAssets, true
	case set["issued_by"] || set["valid_until"]:
		return domain.TypeSSLCertificates, true
	}

	// 2. Field pairs unique to one type.
	switch {
	case set["first_name"] && set["last_name"]:
		return domain.TypeContacts, true
	case set["address_1"] || set["city"]:
		return domain.TypeLocations, true
	case set["password"] && set["username"]:
		return domain.TypePasswords, true
	}

	// 3. Organizations are the only type without a scoping field.
	if !set[domain.ScopeField] && set["name"] {
		return domain.TypeOrganizations, true
	}

	// 4. Filename hint.
	if rt, ok := fromFilename(filename); ok {
		return rt, true
	}

	return "", false
}

// fromFilename normalizes the filename and matches known type keys as
// substrings. "My PasswordsExport.csv" normalizes to
// "my_passwords_export.csv" and matches "passwords".
func fromFilename(filename string) (domain.RecordType, bool) {
	norm := normalizeFilename(filename)
	for _, key := range domain.TypeKeys() {
		if strings.Contains(norm, string(key)) {
			return key, true
		}
	}
	return "", false
}

// normalizeFilename lowercases the name and collapses separators,
// splitting camel-case runs into underscore-joined words first so
// export tools' naming styles all land on the same form.
func normalizeFilename(filename string) string {
	var words []string
	for _, part := range strings.FieldsFunc(filename, func(r rune) bool {
		return r == ' ' || r == '-' || r == '.'
	}) {
		words = append(words, camelcase.Split(part)...)
	}
	return strings.ToLower(strings.Join(words, "_"))
}
