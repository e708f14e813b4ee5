package discovery

import (
	"path/filepath"
	"strings"

	"shtest/internal/domain"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the test cases whose file name matches pattern.
// Supports patterns like "*_smoke.sh" or "*admin*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(tests []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return tests
	}

	var filtered []domain.TestCase
	for _, test := range tests {
		if f.Match(test.Name, pattern) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

// Match reports whether a single file name matches pattern
func (f *Filter) Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// filepath.Match handles * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// "*admin*" style patterns: literal parts must appear in order, and the
	// first and last parts stay anchored unless the pattern starts or ends with *
	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		first, last := parts[0], parts[len(parts)-1]
		if !strings.HasPrefix(name, first) {
			return false
		}
		rest := name[len(first):]
		for _, part := range parts[1 : len(parts)-1] {
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
		}
		return strings.HasSuffix(rest, last)
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}

	return false
}
