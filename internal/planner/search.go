package planner

import (
	"fmt"
	"regexp"
)

// Searcher finds pattern matches in file content for content-derived
// renames. Implementations return the first match's first capture group.
type Searcher interface {
	// FirstGroup searches text for pattern and returns the first match's
	// first capture group. ok is false when there is no match or the
	// pattern has no capture group.
	FirstGroup(pattern, text string) (match string, ok bool, err error)
}

// RegexpSearcher implements Searcher using the standard regexp engine.
type RegexpSearcher struct{}

// NewRegexpSearcher creates a new RegexpSearcher.
func NewRegexpSearcher() *RegexpSearcher {
	return &RegexpSearcher{}
}

// FirstGroup searches text for pattern and returns the first match's
// first capture group.
func (s *RegexpSearcher) FirstGroup(pattern, text string) (string, bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false, nil
	}
	return m[1], true, nil
}
