package service

import (
	"context"
	"strings"

	"legaladvisor-backend/keyword"
	"legaladvisor-backend/models"

	"go.uber.org/zap"
)

// DefaultMaxWebResults caps the number of web research hits per analysis
const DefaultMaxWebResults = 5

// LawStore loads the local laws of a jurisdiction. Unknown jurisdictions yield an empty slice.
type LawStore interface {
	Load(ctx context.Context, jurisdiction string) ([]models.Law, error)
}

// WebResearcher finds and scrapes web pages related to a query
type WebResearcher interface {
	Research(ctx context.Context, query string, maxResults int) ([]models.WebResult, error)
}

// URLScraper fetches the readable text of a single URL
type URLScraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// QueryRecorder persists analysed queries
type QueryRecorder interface {
	Record(ctx context.Context, username, query string) error
}

// AnalysisService matches a legal question against the law corpus and gathers web research
type AnalysisService struct {
	extractor     keyword.Extractor
	lawStore      LawStore
	researcher    WebResearcher
	scraper       URLScraper
	recorder      QueryRecorder
	maxWebResults int
	logger        *zap.Logger
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithExtractor sets the keyword extractor
func AnalysisWithExtractor(e keyword.Extractor) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.extractor = e
	}
}

// AnalysisWithLawStore sets the local law store
func AnalysisWithLawStore(store LawStore) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.lawStore = store
	}
}

// AnalysisWithResearcher sets the web researcher
func AnalysisWithResearcher(r WebResearcher) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.researcher = r
	}
}

// AnalysisWithScraper sets the scraper used for caller-supplied URLs
func AnalysisWithScraper(sc URLScraper) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.scraper = sc
	}
}

// AnalysisWithQueryRecorder sets the query recorder
func AnalysisWithQueryRecorder(r QueryRecorder) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.recorder = r
	}
}

// AnalysisWithMaxWebResults sets the web result cap
func AnalysisWithMaxWebResults(n int) AnalysisServiceOption {
	return func(s *AnalysisService) {
		if n > 0 {
			s.maxWebResults = n
		}
	}
}

// AnalysisWithLogger sets the logger
func AnalysisWithLogger(logger *zap.Logger) AnalysisServiceOption {
	return func(s *AnalysisService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{
		maxWebResults: DefaultMaxWebResults,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = keyword.NewRuleExtractor()
	}
	return s
}

// AnalyzeRequest represents a request to analyze a legal question
type AnalyzeRequest struct {
	Text         string
	Jurisdiction string
	Username     string
	URLs         []string
}

// AnalyzeResult represents the outcome of an analysis.
// Empty slices mean nothing was found; no error path is surfaced.
type AnalyzeResult struct {
	Query          string                  `json:"query"`
	Jurisdiction   string                  `json:"jurisdiction"`
	Keywords       []string                `json:"keywords"`
	MatchedLaws    []models.MatchedLaw     `json:"matched_laws"`
	WebResults     []models.WebResult      `json:"web_results"`
	CategoryCounts map[models.Category]int `json:"category_counts"`
}

func emptyResult(req AnalyzeRequest) *AnalyzeResult {
	return &AnalyzeResult{
		Query:          req.Text,
		Jurisdiction:   req.Jurisdiction,
		Keywords:       []string{},
		MatchedLaws:    []models.MatchedLaw{},
		WebResults:     []models.WebResult{},
		CategoryCounts: map[models.Category]int{},
	}
}

// Analyze extracts keywords, matches them against the jurisdiction's corpus,
// annotates each match with loopholes, gathers web research and records the
// query. Collaborator failures degrade their step to an empty result.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) *AnalyzeResult {
	if strings.TrimSpace(req.Text) == "" {
		return emptyResult(req)
	}

	text := s.appendScrapedURLs(ctx, req.Text, req.URLs)
	result := emptyResult(req)
	result.Query = text

	keywords, err := s.extractor.Extract(ctx, text)
	if err != nil {
		s.logger.Warn("keyword extraction failed", zap.Error(err))
		keywords = keyword.NewSet()
	}
	result.Keywords = keywords.Sorted()

	result.MatchedLaws = s.matchWithLoopholes(ctx, keywords, req.Jurisdiction)
	for _, law := range result.MatchedLaws {
		result.CategoryCounts[law.Category]++
	}

	if s.researcher != nil {
		web, err := s.researcher.Research(ctx, text, s.maxWebResults)
		if err != nil {
			s.logger.Warn("web research failed", zap.Error(err))
		} else if web != nil {
			result.WebResults = web
		}
	}

	s.recordQuery(ctx, req.Username, text)

	s.logger.Info("analysis completed",
		zap.String("jurisdiction", req.Jurisdiction),
		zap.Int("keywords", len(result.Keywords)),
		zap.Int("matched_laws", len(result.MatchedLaws)),
		zap.Int("web_results", len(result.WebResults)),
	)
	return result
}

// MatchLaws runs keyword matching and loophole extraction without web research
// or persistence
func (s *AnalysisService) MatchLaws(ctx context.Context, text, jurisdiction string) []models.MatchedLaw {
	if strings.TrimSpace(text) == "" {
		return []models.MatchedLaw{}
	}
	keywords, err := s.extractor.Extract(ctx, text)
	if err != nil {
		s.logger.Warn("keyword extraction failed", zap.Error(err))
		return []models.MatchedLaw{}
	}
	return s.matchWithLoopholes(ctx, keywords, jurisdiction)
}

// LoadCorpus returns the corpus for a jurisdiction; a failing store yields no local laws
func (s *AnalysisService) LoadCorpus(ctx context.Context, jurisdiction string) LawCorpus {
	var local []models.Law
	if s.lawStore != nil {
		laws, err := s.lawStore.Load(ctx, jurisdiction)
		if err != nil {
			s.logger.Warn("failed to load local laws",
				zap.String("jurisdiction", jurisdiction), zap.Error(err))
		} else {
			local = laws
		}
	}
	return NewLawCorpus(local)
}

func (s *AnalysisService) matchWithLoopholes(ctx context.Context, keywords keyword.Set, jurisdiction string) []models.MatchedLaw {
	if keywords.Len() == 0 {
		return []models.MatchedLaw{}
	}
	matched := MatchLaws(keywords, s.LoadCorpus(ctx, jurisdiction))
	for i := range matched {
		matched[i].Loopholes = FindLoopholes(matched[i].Text)
	}
	return matched
}

func (s *AnalysisService) appendScrapedURLs(ctx context.Context, text string, urls []string) string {
	if s.scraper == nil {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		scraped, err := s.scraper.Scrape(ctx, u)
		if err != nil {
			s.logger.Warn("failed to scrape supplied url", zap.String("url", u), zap.Error(err))
			continue
		}
		if scraped != "" {
			b.WriteString("\n")
			b.WriteString(scraped)
		}
	}
	return b.String()
}

func (s *AnalysisService) recordQuery(ctx context.Context, username, query string) {
	if s.recorder == nil {
		return
	}
	if strings.TrimSpace(username) == "" {
		username = models.AnonymousUser
	}
	if err := s.recorder.Record(ctx, username, query); err != nil {
		// Persistence is best effort and never fails the analysis
		s.logger.Warn("failed to record query", zap.String("username", username), zap.Error(err))
	}
}
