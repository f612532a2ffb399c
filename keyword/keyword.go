// Package keyword reduces free-form text to the lowercase terms used for law matching.
package keyword

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrNoKeywords is returned by extractors that produced nothing usable
var ErrNoKeywords = errors.New("no keywords extracted")

// Set is a collection of lowercase keyword strings. Duplicates collapse.
type Set map[string]struct{}

// NewSet builds a set from the given terms, lowercasing and skipping blanks
func NewSet(terms ...string) Set {
	s := make(Set, len(terms))
	for _, t := range terms {
		s.Add(t)
	}
	return s
}

// Add inserts a term. Blank terms are ignored.
func (s Set) Add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	s[term] = struct{}{}
}

// Contains reports whether term is in the set
func (s Set) Contains(term string) bool {
	_, ok := s[strings.ToLower(term)]
	return ok
}

// Len returns the number of distinct terms
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the terms in lexical order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Extractor turns input text into a keyword set (noun and verb lemmas)
type Extractor interface {
	Extract(ctx context.Context, text string) (Set, error)
}
