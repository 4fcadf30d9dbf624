package filter

import (
	"fmt"
	"regexp"
	"strings"

	"emojictl/pkg/catalog"
)

type FilterMode int

const (
	FilterModeNone FilterMode = iota
	FilterModeExact
	FilterModeContains
	FilterModeRegex
	FilterModeFuzzy
)

// StringFilter matches a single string field against a pattern.
type StringFilter struct {
	Pattern string
	Mode    FilterMode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode FilterMode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == FilterModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	switch f.Mode {
	case FilterModeExact:
		return strings.EqualFold(s, f.Pattern)
	case FilterModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case FilterModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case FilterModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// FuzzyMatch reports whether every character of pattern appears in
// text in order, case-insensitively.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	pIdx := 0
	for tIdx := 0; tIdx < len(text) && pIdx < len(pattern); tIdx++ {
		if pattern[pIdx] == text[tIdx] {
			pIdx++
		}
	}
	return pIdx == len(pattern)
}

// RecordFilter narrows catalog records after the substring search has
// run: group by regex or fuzzy match, name by regex. Empty fields are
// pass-through.
type RecordFilter struct {
	GroupRegex string
	GroupFuzzy string
	NameRegex  string
}

// Apply returns the records passing every configured predicate, in
// their original order.
func (f *RecordFilter) Apply(records []catalog.Record) ([]catalog.Record, error) {
	var groupRe, nameRe *regexp.Regexp
	var err error

	if f.GroupRegex != "" {
		groupRe, err = regexp.Compile(f.GroupRegex)
		if err != nil {
			return nil, fmt.Errorf("invalid group regex: %w", err)
		}
	}
	if f.NameRegex != "" {
		nameRe, err = regexp.Compile(f.NameRegex)
		if err != nil {
			return nil, fmt.Errorf("invalid name regex: %w", err)
		}
	}

	filtered := []catalog.Record{}
	for _, rec := range records {
		if groupRe != nil && !groupRe.MatchString(rec.Group) {
			continue
		}
		if f.GroupFuzzy != "" && !FuzzyMatch(f.GroupFuzzy, rec.Group) {
			continue
		}
		if nameRe != nil && !nameRe.MatchString(rec.Name) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}

// IsZero reports whether no predicates are configured.
func (f *RecordFilter) IsZero() bool {
	return f.GroupRegex == "" && f.GroupFuzzy == "" && f.NameRegex == ""
}
