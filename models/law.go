package models

import (
	"strings"
)

// Category is the legal standing of a law
type Category string

const (
	CategoryLegal   Category = "Legal"
	CategoryIllegal Category = "Illegal"
)

// ParseCategory normalizes a stored category value ("legal", "ILLEGAL", ...)
func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "legal":
		return CategoryLegal, true
	case "illegal":
		return CategoryIllegal, true
	default:
		return "", false
	}
}

// Source tells where a law came from
type Source string

const (
	SourceLocal  Source = "Local"
	SourceGlobal Source = "Global"
)

// GlobalEnforcementAgency is the placeholder agency shown for global laws
const GlobalEnforcementAgency = "N/A (Global Database)"

// Law represents one legal or illegal provision
type Law struct {
	Title             string   `json:"title"`
	Text              string   `json:"text"`
	Category          Category `json:"category"`
	Source            Source   `json:"source"`
	EnforcementAgency string   `json:"enforcement_agency"`
}

// Valid reports whether the law can be exposed downstream
func (l Law) Valid() bool {
	if strings.TrimSpace(l.Title) == "" || strings.TrimSpace(l.Text) == "" {
		return false
	}
	return l.Category == CategoryLegal || l.Category == CategoryIllegal
}

// MatchedLaw is a law selected by keyword matching, annotated with loophole snippets
type MatchedLaw struct {
	Law
	Loopholes []string `json:"loopholes"`
}

// LawFileEntry is the on-disk shape of a local law file entry
type LawFileEntry struct {
	Title             string `json:"title" yaml:"title"`
	Text              string `json:"text" yaml:"text"`
	Type              string `json:"type" yaml:"type"`
	EnforcementAgency string `json:"enforcement_agency" yaml:"enforcement_agency"`
}

// ToLaw converts a file entry into a local Law
func (e LawFileEntry) ToLaw() (Law, bool) {
	category, ok := ParseCategory(e.Type)
	if !ok {
		return Law{}, false
	}
	law := Law{
		Title:             e.Title,
		Text:              e.Text,
		Category:          category,
		Source:            SourceLocal,
		EnforcementAgency: e.EnforcementAgency,
	}
	return law, law.Valid()
}

// Jurisdictions lists the jurisdictions offered to clients
var Jurisdictions = []string{"USA", "UK", "Pakistan", "Canada", "India", "International"}
