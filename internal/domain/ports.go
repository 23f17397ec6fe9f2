package domain

// FileReader loads and parses one delimited import file.
type FileReader interface {
	Read(path string) (*SourceFile, error)
}

// FileWriter serializes a remediated table. Write never emits a
// byte-order mark; VerifyNoBOM re-reads the first bytes of the output
// to confirm.
type FileWriter interface {
	Write(path string, table *Table) error
	VerifyNoBOM(path string) error
}

// ConfigLoader reads tool configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// RunHistory persists validation run entries.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// GitInfo reports version-control facts for history entries.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}
