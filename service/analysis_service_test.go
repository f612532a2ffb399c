package service

import (
	"context"
	"errors"
	"testing"

	"legaladvisor-backend/keyword"
	"legaladvisor-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLawStore struct {
	laws  map[string][]models.Law
	err   error
	calls int
}

func (f *fakeLawStore) Load(_ context.Context, jurisdiction string) ([]models.Law, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.laws[jurisdiction], nil
}

type fakeResearcher struct {
	results []models.WebResult
	err     error
	queries []string
}

func (f *fakeResearcher) Research(_ context.Context, query string, _ int) ([]models.WebResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeScraper struct {
	pages map[string]string
}

func (f *fakeScraper) Scrape(_ context.Context, url string) (string, error) {
	text, ok := f.pages[url]
	if !ok {
		return "", errors.New("unreachable")
	}
	return text, nil
}

type recordedQuery struct {
	username string
	query    string
}

type fakeRecorder struct {
	records []recordedQuery
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, username, query string) error {
	f.records = append(f.records, recordedQuery{username: username, query: query})
	return f.err
}

type failingExtractor struct{}

func (failingExtractor) Extract(context.Context, string) (keyword.Set, error) {
	return nil, keyword.ErrNoKeywords
}

func usaStore() *fakeLawStore {
	return &fakeLawStore{laws: map[string][]models.Law{
		"USA": {
			localLaw("Sample Legal Law", "This law covers constitutional protections.", models.CategoryLegal),
			localLaw("Sample Illegal Law", "This law prohibits sample illegal activities unless licensed.", models.CategoryIllegal),
		},
	}}
}

func TestAnalysisService_EmptyTextShortCircuits(t *testing.T) {
	store := usaStore()
	researcher := &fakeResearcher{}
	recorder := &fakeRecorder{}
	svc := NewAnalysisService(
		AnalysisWithLawStore(store),
		AnalysisWithResearcher(researcher),
		AnalysisWithQueryRecorder(recorder),
	)

	result := svc.Analyze(context.Background(), AnalyzeRequest{Text: "   ", Jurisdiction: "USA"})

	assert.Empty(t, result.MatchedLaws)
	assert.Empty(t, result.WebResults)
	assert.NotNil(t, result.MatchedLaws)
	assert.NotNil(t, result.WebResults)
	assert.Zero(t, store.calls)
	assert.Empty(t, researcher.queries)
	assert.Empty(t, recorder.records)
}

func TestAnalysisService_ConstitutionalRights(t *testing.T) {
	svc := NewAnalysisService(AnalysisWithLawStore(usaStore()))

	result := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:         "constitutional rights",
		Jurisdiction: "USA",
	})

	assert.Contains(t, result.Keywords, "constitutional")
	assert.Contains(t, result.Keywords, "right")
	require.NotEmpty(t, result.MatchedLaws)
	assert.Equal(t, "Sample Legal Law", result.MatchedLaws[0].Title)
	assert.Equal(t, models.SourceLocal, result.MatchedLaws[0].Source)
	assert.Empty(t, result.MatchedLaws[0].Loopholes)
	assert.NotContains(t, titles(result.MatchedLaws), "Sample Illegal Law")
	assert.Contains(t, titles(result.MatchedLaws), "Right to Privacy")

	total := 0
	for _, n := range result.CategoryCounts {
		total += n
	}
	assert.Equal(t, len(result.MatchedLaws), total)
}

func TestAnalysisService_LoopholesAttached(t *testing.T) {
	svc := NewAnalysisService(AnalysisWithLawStore(usaStore()))

	result := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:         "Are sample activities prohibited?",
		Jurisdiction: "USA",
	})

	require.NotEmpty(t, result.MatchedLaws)
	assert.Equal(t, "Sample Illegal Law", result.MatchedLaws[0].Title)
	assert.Equal(t, []string{"its sample illegal activities **unless** licensed."}, result.MatchedLaws[0].Loopholes)
}

func TestAnalysisService_UnknownJurisdiction(t *testing.T) {
	svc := NewAnalysisService(AnalysisWithLawStore(usaStore()))

	result := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:         "constitutional protections",
		Jurisdiction: "Atlantis",
	})

	for _, m := range result.MatchedLaws {
		assert.Equal(t, models.SourceGlobal, m.Source)
	}
}

func TestAnalysisService_StoreFailureFallsBackToGlobal(t *testing.T) {
	svc := NewAnalysisService(AnalysisWithLawStore(&fakeLawStore{err: errors.New("disk gone")}))

	result := svc.Analyze(context.Background(), AnalyzeRequest{Text: "tax", Jurisdiction: "USA"})
	assert.Equal(t, []string{"Tax Compliance", "Tax Evasion"}, titles(result.MatchedLaws))
}

func TestAnalysisService_PersistenceFailureIsNotFatal(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("connection refused")}
	researcher := &fakeResearcher{results: []models.WebResult{{Title: "Result", Link: "https://example.com"}}}
	svc := NewAnalysisService(
		AnalysisWithLawStore(usaStore()),
		AnalysisWithResearcher(researcher),
		AnalysisWithQueryRecorder(recorder),
	)

	result := svc.Analyze(context.Background(), AnalyzeRequest{Text: "constitutional rights", Jurisdiction: "USA"})

	assert.NotEmpty(t, result.MatchedLaws)
	assert.Len(t, result.WebResults, 1)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, models.AnonymousUser, recorder.records[0].username)
	assert.Equal(t, "constitutional rights", recorder.records[0].query)
}

func TestAnalysisService_ResearchFailureYieldsEmptyResults(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewAnalysisService(
		AnalysisWithLawStore(usaStore()),
		AnalysisWithResearcher(&fakeResearcher{err: errors.New("timeout")}),
		AnalysisWithQueryRecorder(recorder),
	)

	result := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:         "constitutional rights",
		Jurisdiction: "USA",
		Username:     "alice",
	})

	assert.NotNil(t, result.WebResults)
	assert.Empty(t, result.WebResults)
	assert.NotEmpty(t, result.MatchedLaws)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, "alice", recorder.records[0].username)
}

func TestAnalysisService_ExtractionFailure(t *testing.T) {
	svc := NewAnalysisService(
		AnalysisWithExtractor(failingExtractor{}),
		AnalysisWithLawStore(usaStore()),
	)

	result := svc.Analyze(context.Background(), AnalyzeRequest{Text: "constitutional rights", Jurisdiction: "USA"})
	assert.Empty(t, result.Keywords)
	assert.Empty(t, result.MatchedLaws)
}

func TestAnalysisService_AppendsScrapedURLs(t *testing.T) {
	researcher := &fakeResearcher{}
	recorder := &fakeRecorder{}
	svc := NewAnalysisService(
		AnalysisWithLawStore(usaStore()),
		AnalysisWithResearcher(researcher),
		AnalysisWithScraper(&fakeScraper{pages: map[string]string{
			"https://example.com/a": "constitutional amendment",
		}}),
		AnalysisWithQueryRecorder(recorder),
	)

	result := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:         "my question",
		Jurisdiction: "USA",
		URLs:         []string{"https://example.com/a", "https://example.com/missing", " "},
	})

	want := "my question\nconstitutional amendment"
	assert.Equal(t, want, result.Query)
	assert.Equal(t, []string{want}, researcher.queries)
	require.Len(t, recorder.records, 1)
	assert.Equal(t, want, recorder.records[0].query)
	assert.Contains(t, titles(result.MatchedLaws), "Sample Legal Law")
}

func TestAnalysisService_MatchingIsDeterministic(t *testing.T) {
	svc := NewAnalysisService(AnalysisWithLawStore(usaStore()))
	req := AnalyzeRequest{Text: "Can the state search my property without a warrant?", Jurisdiction: "USA"}

	first := svc.Analyze(context.Background(), req)
	second := svc.Analyze(context.Background(), req)
	assert.Equal(t, first.MatchedLaws, second.MatchedLaws)
	assert.Equal(t, first.Keywords, second.Keywords)
}

func TestAnalysisService_MatchLaws(t *testing.T) {
	svc := NewAnalysisService(AnalysisWithLawStore(usaStore()))

	assert.Empty(t, svc.MatchLaws(context.Background(), "", "USA"))

	got := svc.MatchLaws(context.Background(), "sample activities", "USA")
	require.NotEmpty(t, got)
	assert.Equal(t, "Sample Illegal Law", got[0].Title)
	assert.NotEmpty(t, got[0].Loopholes)
}
