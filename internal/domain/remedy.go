package domain

import "strings"

// ActionKind tags a remediation action variant. Every variant is
// idempotent: applying it twice yields the same table as once.
type ActionKind string

const (
	ActionRenameHeader        ActionKind = "rename-header"
	ActionAddMissingColumn    ActionKind = "add-missing-column"
	ActionFillEmptyField      ActionKind = "fill-empty-field"
	ActionStripInvisible      ActionKind = "strip-invisible-characters"
	ActionNormalizeWhitespace ActionKind = "normalize-whitespace"
	ActionRequoteField        ActionKind = "re-quote-field"
	ActionEncodeURLSpaces     ActionKind = "encode-url-spaces"
	ActionStripBOM            ActionKind = "strip-byte-order-mark"
)

// RemediationAction is pure data describing one corrective transform a
// finding licenses. The checks produce them; only the remediation
// engine consumes them.
type RemediationAction struct {
	Kind ActionKind `json:"kind"`

	// Field the action targets; empty for file-level actions.
	Field string `json:"field,omitempty"`

	// From/To carry the header rename pair.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// Rows lists the 1-indexed rows a fill applies to.
	Rows []int `json:"rows,omitempty"`

	// Options enumerates fill choices, documented default first.
	Options []string `json:"options,omitempty"`

	// Default is used when no resolved choice is supplied.
	Default string `json:"default,omitempty"`
}

// FieldChoice is the operator's resolution for one ambiguous fill.
// Skip means leave the cells empty; it never suppresses the
// validation error, it only records that the operator declined.
type FieldChoice struct {
	Value string `json:"value,omitempty"`
	Skip  bool   `json:"skip,omitempty"`
}

// ResolvedChoices maps lowercased field names to fill resolutions.
// The engine never blocks on a missing entry; it falls back to the
// action's default.
type ResolvedChoices map[string]FieldChoice

// Choice resolves a field, case-insensitively.
func (c ResolvedChoices) Choice(field string) (FieldChoice, bool) {
	choice, ok := c[strings.ToLower(field)]
	return choice, ok
}

func (c ResolvedChoices) Set(field string, choice FieldChoice) {
	c[strings.ToLower(field)] = choice
}

// AppliedFix records one transform the remediation engine performed.
type AppliedFix struct {
	Kind        ActionKind `json:"kind"`
	Field       string     `json:"field,omitempty"`
	Cells       int        `json:"cells,omitempty"`
	Description string     `json:"description"`
}

// FixOptions controls a fix run.
type FixOptions struct {
	DryRun  bool            `json:"dry_run"`
	Choices ResolvedChoices `json:"choices,omitempty"`
}

// FixResult is the outcome of a fix run. OutputPath is empty for dry
// runs. Verified reports the post-write check that the output starts
// without a byte-order mark; false after a write is a tool defect,
// not a problem with the operator's file.
type FixResult struct {
	InputPath  string       `json:"input_path"`
	OutputPath string       `json:"output_path,omitempty"`
	Applied    []AppliedFix `json:"applied"`
	Warnings   []string     `json:"warnings,omitempty"`
	Verified   bool         `json:"verified"`
	Report     *Report      `json:"report"`
}
