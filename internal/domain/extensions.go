package domain

import (
	"path/filepath"
	"strings"
)

// ExtensionSet is an ordered set of normalized file extensions.
// Normalized means trimmed, lower-cased and carrying a leading dot.
type ExtensionSet []string

// ParseExtensions builds an ExtensionSet from a comma-separated list.
// Empty tokens are dropped, duplicates collapse, input order is kept.
func ParseExtensions(raw string) ExtensionSet {
	var set ExtensionSet
	seen := make(map[string]bool)
	for _, token := range strings.Split(raw, ",") {
		ext := NormalizeExtension(token)
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		set = append(set, ext)
	}
	return set
}

// NormalizeExtension trims and lower-cases a token and ensures the
// leading dot. Blank and dot-only tokens normalize to "".
func NormalizeExtension(token string) string {
	ext := strings.ToLower(strings.TrimSpace(token))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// MatchName reports whether the name's extension is in the set.
// Comparison is case-insensitive; names without an extension never match.
func (s ExtensionSet) MatchName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, member := range s {
		if member == ext {
			return true
		}
	}
	return false
}

func (s ExtensionSet) String() string {
	return strings.Join(s, ", ")
}
