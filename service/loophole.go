package service

import (
	"strings"
	"unicode"
)

// DefaultLoopholeWindow is the number of characters of context kept on each side of a phrase
const DefaultLoopholeWindow = 30

// Emphasis markers wrapped around the matched phrase
const (
	emphasisOpen  = "**"
	emphasisClose = "**"
)

// exceptionPhrases are scanned in this order. The trailing space in "if " is significant.
var exceptionPhrases = []string{
	"unless",
	"except",
	"exempt",
	"provided that",
	"exception",
	"exemption",
	"conditional",
	"if ",
}

// ExceptionPhrases returns the phrase vocabulary in scan order
func ExceptionPhrases() []string {
	return append([]string(nil), exceptionPhrases...)
}

// FindLoopholes returns context snippets around every exception phrase in text
// using the default window
func FindLoopholes(text string) []string {
	return FindLoopholesWindow(text, DefaultLoopholeWindow)
}

// FindLoopholesWindow scans text for each exception phrase in vocabulary order,
// every occurrence left to right without self-overlap, and returns the
// surrounding [idx-window, idx+len+window] span of the original text, trimmed,
// with the matched occurrence wrapped in emphasis markers. Snippets of
// different phrases may overlap; they are not deduplicated.
//
// Offsets count characters, not bytes.
func FindLoopholesWindow(text string, window int) []string {
	if window < 0 {
		window = 0
	}
	original := []rune(text)
	lowered := lowerRunes(original)

	snippets := make([]string, 0)
	for _, phrase := range exceptionPhrases {
		needle := []rune(phrase)
		start := 0
		for {
			idx := indexRunes(lowered, needle, start)
			if idx < 0 {
				break
			}
			snippets = append(snippets, buildSnippet(original, idx, len(needle), window))
			start = idx + len(needle)
		}
	}
	return snippets
}

// buildSnippet cuts the window around original[idx:idx+n] and marks that exact
// occurrence by offset, so an earlier copy of the phrase inside the window is
// left untouched
func buildSnippet(original []rune, idx, n, window int) string {
	from := idx - window
	if from < 0 {
		from = 0
	}
	to := idx + n + window
	if to > len(original) {
		to = len(original)
	}

	raw := original[from:to]
	lead := 0
	for lead < len(raw) && unicode.IsSpace(raw[lead]) {
		lead++
	}
	trail := len(raw)
	for trail > lead && unicode.IsSpace(raw[trail-1]) {
		trail--
	}
	snippet := raw[lead:trail]

	markStart := idx - from - lead
	markEnd := markStart + n
	if markStart < 0 {
		markStart = 0
	}
	if markEnd > len(snippet) {
		markEnd = len(snippet)
	}
	if markStart >= markEnd {
		return string(snippet)
	}

	var b strings.Builder
	b.WriteString(string(snippet[:markStart]))
	b.WriteString(emphasisOpen)
	b.WriteString(string(snippet[markStart:markEnd]))
	b.WriteString(emphasisClose)
	b.WriteString(string(snippet[markEnd:]))
	return b.String()
}

// lowerRunes lowercases rune by rune so offsets line up with the original
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func indexRunes(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
