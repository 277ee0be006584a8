package domain

// MetricsProvider measures source content. It never fails: unparsable
// input is reported through FileMetrics.SyntaxError.
type MetricsProvider interface {
	Measure(content, path string) FileMetrics
}

// SourceScanner lists the reviewable files below a directory.
type SourceScanner interface {
	Scan(rootPath string, excludePatterns ...string) (*ScanResult, error)
}

// ConfigLoader loads project configuration from a review root.
type ConfigLoader interface {
	Load(rootPath string) (ProjectConfig, error)
}

// ChangeDetector reports files modified in a working tree.
type ChangeDetector interface {
	IsGitRepo(rootPath string) bool
	ChangedFiles(rootPath string) ([]string, error)
}

// ScanResult holds the result of scanning a directory.
type ScanResult struct {
	RootPath string   `json:"root_path"`
	Files    []string `json:"files"` // relative, sorted
	Skipped  int      `json:"skipped"`
}
