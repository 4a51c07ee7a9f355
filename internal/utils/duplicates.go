package utils

import (
	"strings"
)

// SuggestionFilter drops duplicate suggestions and the query word itself.
// It is not safe for concurrent use; create one per query.
type SuggestionFilter struct {
	seen map[string]struct{}
}

// NewSuggestionFilter creates a filter that already considers input as seen
func NewSuggestionFilter(input string) *SuggestionFilter {
	return &SuggestionFilter{
		seen: map[string]struct{}{strings.ToLower(input): {}},
	}
}

// ShouldInclude reports whether word is new to the filter, case-insensitively,
// and records it.
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	key := strings.ToLower(word)
	if _, dup := f.seen[key]; dup {
		return false
	}
	f.seen[key] = struct{}{}
	return true
}
