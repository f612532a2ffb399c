package keyword

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// minTermLength is the shortest token kept as a keyword
const minTermLength = 3

// stopwords are function words, auxiliaries and pronouns that never carry legal meaning
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true,
	"you": true, "your": true, "yours": true, "all": true, "any": true, "can": true,
	"had": true, "has": true, "have": true, "her": true, "hers": true, "him": true,
	"his": true, "was": true, "were": true, "one": true, "our": true, "out": true,
	"its": true, "who": true, "whom": true, "whose": true, "what": true, "which": true,
	"when": true, "where": true, "why": true, "how": true, "this": true, "that": true,
	"these": true, "those": true, "with": true, "from": true, "into": true, "onto": true,
	"they": true, "them": true, "their": true, "theirs": true, "she": true, "will": true,
	"would": true, "should": true, "could": true, "shall": true, "may": true, "might": true,
	"must": true, "does": true, "did": true, "doing": true, "done": true, "been": true,
	"being": true, "about": true, "above": true, "after": true, "again": true, "also": true,
	"because": true, "before": true, "below": true, "between": true, "both": true,
	"each": true, "few": true, "more": true, "most": true, "other": true, "some": true,
	"such": true, "than": true, "then": true, "there": true, "here": true, "very": true,
	"just": true, "only": true, "own": true, "same": true, "too": true, "over": true,
	"under": true, "until": true, "while": true, "upon": true, "myself": true,
	"yourself": true, "himself": true, "herself": true, "itself": true, "ourselves": true,
	"themselves": true, "mine": true, "ours": true, "nor": true, "off": true, "once": true,
	"during": true, "through": true, "against": true, "within": true, "without": true,
	"get": true, "got": true, "let": true, "yes": true, "please": true, "whether": true,
	"something": true, "anything": true, "everything": true, "nothing": true,
}

// RuleExtractor is a dependency-free extractor: it folds text, drops stopwords and
// reduces inflected forms to a base form with suffix rules
type RuleExtractor struct {
	lower cases.Caser
}

// NewRuleExtractor creates a rule-based extractor
func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{lower: cases.Lower(language.English)}
}

// Extract never fails; it returns an empty set for text without content words
func (e *RuleExtractor) Extract(_ context.Context, text string) (Set, error) {
	folded := e.lower.String(norm.NFKC.String(text))
	tokens := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	set := make(Set)
	for _, tok := range tokens {
		tok = strings.Trim(tok, "'")
		tok = strings.TrimSuffix(tok, "'s")
		if len([]rune(tok)) < minTermLength || stopwords[tok] {
			continue
		}
		lemma := Lemmatize(tok)
		if len([]rune(lemma)) < minTermLength || stopwords[lemma] {
			continue
		}
		set.Add(lemma)
	}
	return set, nil
}

// Lemmatize reduces a lowercase word to an approximate base form
func Lemmatize(word string) string {
	if irregular, ok := irregularForms[word]; ok {
		return irregular
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "ied") && len(word) > 4:
		return strings.TrimSuffix(word, "ied") + "y"
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "xes"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return undouble(strings.TrimSuffix(word, "ing"))
	case strings.HasSuffix(word, "ed") && len(word) > 4 && !strings.HasSuffix(word, "eed"):
		return undouble(strings.TrimSuffix(word, "ed"))
	case strings.HasSuffix(word, "s") && len(word) > 3 &&
		!strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us") &&
		!strings.HasSuffix(word, "is"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// undouble collapses a doubled final consonant left by suffix removal ("robb" -> "rob")
func undouble(stem string) string {
	n := len(stem)
	if n < 3 {
		return stem
	}
	last := stem[n-1]
	if last == stem[n-2] && !strings.ContainsRune("aeiousl", rune(last)) {
		return stem[:n-1]
	}
	return stem
}

var irregularForms = map[string]string{
	"stole":    "steal",
	"stolen":   "steal",
	"children": "child",
	"men":      "man",
	"women":    "woman",
	"people":   "person",
	"paid":     "pay",
	"sold":     "sell",
	"bought":   "buy",
	"made":     "make",
	"taken":    "take",
	"took":     "take",
	"gave":     "give",
	"given":    "give",
	"found":    "find",
	"held":     "hold",
	"left":     "leave",
	"kept":     "keep",
	"brought":  "bring",
	"thought":  "think",
	"spent":    "spend",
	"sent":     "send",
	"hit":      "hit",
	"was":      "be",
	"were":     "be",
	"is":       "be",
	"are":      "be",
}
