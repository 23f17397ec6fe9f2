package domain

import "fmt"

// Config holds tool configuration loaded from .importlint.yaml.
// The zero value gives the documented defaults.
type Config struct {
	// RecommendedWarnCap limits how many per-row warnings an empty
	// recommended field produces before the count is summarized.
	RecommendedWarnCap *int `yaml:"recommended_warn_cap" json:"recommended_warn_cap,omitempty"`

	// LargeImportThreshold is the data-row count above which a
	// batch-splitting warning is raised.
	LargeImportThreshold *int `yaml:"large_import_threshold" json:"large_import_threshold,omitempty"`

	// SkipChecks lists finding kinds to suppress.
	SkipChecks []string `yaml:"skip_checks" json:"skip_checks,omitempty"`

	// DefaultFills pre-resolves fill choices per field name.
	DefaultFills map[string]string `yaml:"default_fills" json:"default_fills,omitempty"`

	// NoHistory disables the run-history log.
	NoHistory bool `yaml:"no_history" json:"no_history,omitempty"`
}

const (
	defaultRecommendedWarnCap   = 3
	defaultLargeImportThreshold = 5000
)

// DefaultConfig returns a zero-value config.
func DefaultConfig() Config {
	return Config{}
}

// WarnCap returns the effective recommended-field warning cap.
func (c Config) WarnCap() int {
	if c.RecommendedWarnCap != nil && *c.RecommendedWarnCap > 0 {
		return *c.RecommendedWarnCap
	}
	return defaultRecommendedWarnCap
}

// RowThreshold returns the effective large-import threshold.
func (c Config) RowThreshold() int {
	if c.LargeImportThreshold != nil && *c.LargeImportThreshold > 0 {
		return *c.LargeImportThreshold
	}
	return defaultLargeImportThreshold
}

// Skips reports whether a finding kind is suppressed.
func (c Config) Skips(kind string) bool {
	for _, k := range c.SkipChecks {
		if k == kind {
			return true
		}
	}
	return false
}

// validKinds is built once from the finding-kind constants.
var validKinds = map[string]bool{
	KindByteOrderMark: true, KindMissingRequired: true,
	KindHeaderCase: true, KindExportOnlyColumn: true,
	KindEmptyRequired: true, KindEmptyRecommended: true,
	KindWhitespaceOnly: true, KindUnbalancedQuotes: true,
	KindTrailingDelimiter: true, KindColumnCount: true,
	KindRowCount: true, KindIncompleteRow: true,
	KindPlaceholderScope: true, KindScopeTooShort: true,
	KindScopeUnsafeChars: true, KindScopeWhitespace: true,
	KindMultipleScopes: true, KindDuplicateName: true,
	KindDuplicateRow: true, KindURLFormat: true,
	KindEmailFormat: true, KindDateFormat: true,
	KindUnknownEnumValue: true, KindControlChars: true,
	KindFieldTooLong: true, KindInvisibleChars: true,
	KindNeedsQuoting: true, KindUnknownType: true,
}

// Validate catches typos in user-supplied config before it is used.
func (c Config) Validate() error {
	for _, k := range c.SkipChecks {
		if !validKinds[k] {
			return fmt.Errorf("unknown check kind %q in skip_checks", k)
		}
	}
	if c.RecommendedWarnCap != nil && *c.RecommendedWarnCap < 1 {
		return fmt.Errorf("recommended_warn_cap must be >= 1, got %d", *c.RecommendedWarnCap)
	}
	if c.LargeImportThreshold != nil && *c.LargeImportThreshold < 1 {
		return fmt.Errorf("large_import_threshold must be >= 1, got %d", *c.LargeImportThreshold)
	}
	return nil
}
