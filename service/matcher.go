package service

import (
	"strings"

	"legaladvisor-backend/keyword"
	"legaladvisor-backend/models"
)

// MatchLaws selects the corpus laws related to the keywords.
//
// A local law matches when any keyword is a case-insensitive substring of its
// text. A global law matches when any keyword is a substring of its title or
// its text. Results are local laws first, then global legal, then global
// illegal, each in corpus order. Loopholes are left empty.
func MatchLaws(keywords keyword.Set, corpus LawCorpus) []models.MatchedLaw {
	terms := lowerTerms(keywords)
	if len(terms) == 0 {
		return []models.MatchedLaw{}
	}

	matched := make([]models.MatchedLaw, 0)
	for _, law := range corpus.Local {
		if containsAny(strings.ToLower(law.Text), terms) {
			matched = append(matched, models.MatchedLaw{Law: law, Loopholes: []string{}})
		}
	}

	for _, group := range [][]models.Law{corpus.GlobalLegal, corpus.GlobalIllegal} {
		for _, law := range group {
			if containsAny(strings.ToLower(law.Title), terms) || containsAny(strings.ToLower(law.Text), terms) {
				matched = append(matched, models.MatchedLaw{Law: law, Loopholes: []string{}})
			}
		}
	}

	return matched
}

// lowerTerms flattens the set, dropping empty terms so that nothing matches vacuously
func lowerTerms(keywords keyword.Set) []string {
	terms := make([]string, 0, len(keywords))
	for _, t := range keywords.Sorted() {
		t = strings.ToLower(t)
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func containsAny(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}
