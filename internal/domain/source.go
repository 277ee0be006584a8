package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// supportedExtensions lists the file suffixes picked up when reviewing a
// path. Everything else is ignored by directory walks.
var supportedExtensions = map[string]bool{
	".py":  true,
	".js":  true,
	".mjs": true,
	".cjs": true,
	".ts":  true,
	".jsx": true,
	".tsx": true,
}

// IsSupportedSource reports whether path has a reviewable extension.
func IsSupportedSource(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// DetectLanguage infers the language tag from a file name.
func DetectLanguage(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".py" {
		return LanguagePython
	}
	return LanguageGeneric
}

// ComparePaths orders paths component by component, so a directory's
// contents sort next to each other: "app/x.py" comes before "app.py".
func ComparePaths(a, b string) int {
	return slices.Compare(splitPath(a), splitPath(b))
}

func splitPath(p string) []string {
	return strings.Split(filepath.ToSlash(p), "/")
}
