package domain

// Finding represents one structural or content problem found in an
// import file. Row is 1-indexed with the header as row 1, so the first
// data row is row 2; zero means the finding is file-level.
type Finding struct {
	Severity string             `json:"severity"`
	Kind     string             `json:"kind"`
	Message  string             `json:"message"`
	Hints    []string           `json:"hints,omitempty"`
	Row      int                `json:"row,omitempty"`
	Field    string             `json:"field,omitempty"`
	Action   *RemediationAction `json:"action,omitempty"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding kinds. Each check emits exactly one kind so reports stay
// machine-checkable and skip_checks can address individual checks.
const (
	KindByteOrderMark     = "byte-order-mark"
	KindMissingRequired   = "missing-required-field"
	KindHeaderCase        = "header-case-mismatch"
	KindExportOnlyColumn  = "export-only-column"
	KindEmptyRequired     = "empty-required-field"
	KindEmptyRecommended  = "empty-recommended-field"
	KindWhitespaceOnly    = "whitespace-only-cell"
	KindUnbalancedQuotes  = "unbalanced-quotes"
	KindTrailingDelimiter = "trailing-delimiters"
	KindColumnCount       = "column-count-mismatch"
	KindRowCount          = "row-count"
	KindIncompleteRow     = "incomplete-row"
	KindPlaceholderScope  = "placeholder-organization"
	KindScopeTooShort     = "organization-too-short"
	KindScopeUnsafeChars  = "organization-special-characters"
	KindScopeWhitespace   = "organization-whitespace"
	KindMultipleScopes    = "multiple-organizations"
	KindDuplicateName     = "duplicate-name"
	KindDuplicateRow      = "duplicate-row"
	KindURLFormat         = "url-format"
	KindEmailFormat       = "email-format"
	KindDateFormat        = "date-format"
	KindUnknownEnumValue  = "unknown-enumeration-value"
	KindControlChars      = "control-characters"
	KindFieldTooLong      = "field-too-long"
	KindInvisibleChars    = "invisible-characters"
	KindNeedsQuoting      = "needs-quoting"
	KindUnknownType       = "unknown-record-type"
)

// Report accumulates findings for one file in emission order and
// partitions them lazily by severity. Warnings never flip the verdict.
type Report struct {
	File         string     `json:"file"`
	DetectedType RecordType `json:"detected_type,omitempty"`
	Findings     []Finding  `json:"findings"`
}

func (r *Report) Add(findings ...Finding) {
	r.Findings = append(r.Findings, findings...)
}

func (r *Report) Errors() []Finding {
	return r.bySeverity(SeverityError)
}

func (r *Report) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

func (r *Report) bySeverity(sev string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Passed reports whether the file is importable: zero errors.
func (r *Report) Passed() bool {
	return len(r.Errors()) == 0
}

// Verdict classifies the report: "clean" (nothing found), "review"
// (warnings only), or "fail" (at least one error).
func (r *Report) Verdict() string {
	switch {
	case len(r.Findings) == 0:
		return VerdictClean
	case r.Passed():
		return VerdictReview
	default:
		return VerdictFail
	}
}

const (
	VerdictClean  = "clean"
	VerdictReview = "review"
	VerdictFail   = "fail"
)

// Actions collects the remediation actions licensed by the findings,
// preserving emission order.
func (r *Report) Actions() []RemediationAction {
	var out []RemediationAction
	for _, f := range r.Findings {
		if f.Action != nil {
			out = append(out, *f.Action)
		}
	}
	return out
}

// RunEntry is one recorded validation run in the history log.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	File       string `json:"file"`
	Type       string `json:"type,omitempty"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	Passed     bool   `json:"passed"`
	CommitHash string `json:"commit_hash,omitempty"`
}
