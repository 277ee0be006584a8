package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/abdidvp/smartreview/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"__pycache__":  true,
	".venv":        true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan lists the supported source files below rootPath. Exclude patterns
// are doublestar globs matched against slash-separated relative paths; a
// pattern without a slash also matches any file or directory by name.
func (s *FileScanner) Scan(rootPath string, excludePatterns ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}
	for _, p := range excludePatterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}

	result := &domain.ScanResult{
		RootPath: absPath,
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == absPath {
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		rel := filepath.ToSlash(relPath)

		if d.IsDir() {
			if skipDirs[d.Name()] || excluded(rel, d.Name(), excludePatterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if !domain.IsSupportedSource(d.Name()) {
			return nil
		}
		if excluded(rel, d.Name(), excludePatterns) {
			result.Skipped++
			return nil
		}
		result.Files = append(result.Files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", rootPath, err)
	}

	slices.SortFunc(result.Files, domain.ComparePaths)
	return result, nil
}

func excluded(rel, name string, patterns []string) bool {
	for _, p := range patterns {
		p = strings.TrimSuffix(p, "/")
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, name); ok {
				return true
			}
		}
	}
	return false
}
