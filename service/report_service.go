package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"legaladvisor-backend/storage"

	"github.com/google/uuid"
)

// ReportFilename is the download name of an analysis report
const ReportFilename = "analysis_report.txt"

const reportPrefix = "reports"

var (
	ErrReportNotFound = errors.New("report not found")
	ErrStorageNotSet  = errors.New("report storage not set")
)

// ReportService renders analysis results as text reports and archives them
type ReportService struct {
	storage storage.Storage
}

// ReportServiceOption is a functional option for ReportService
type ReportServiceOption func(*ReportService)

// ReportWithStorage sets the storage backend
func ReportWithStorage(st storage.Storage) ReportServiceOption {
	return func(s *ReportService) {
		s.storage = st
	}
}

// NewReportService creates a new report service
func NewReportService(opts ...ReportServiceOption) *ReportService {
	s := &ReportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildReport renders an analysis result as plain text
func BuildReport(result *AnalyzeResult) string {
	var b strings.Builder
	for _, law := range result.MatchedLaws {
		fmt.Fprintf(&b, "\nTitle: %s\nType: %s\nEnforcement Agency: %s\nDetails: %s\n\n",
			law.Title, law.Category, law.EnforcementAgency, law.Text)
		for _, snippet := range law.Loopholes {
			fmt.Fprintf(&b, "Loophole: %s\n", snippet)
		}
	}
	for i, item := range result.WebResults {
		fmt.Fprintf(&b, "Web Result #%d: %s\nSnippet: %s\nScraped: %s\n---\n",
			i+1, item.Title, item.Snippet, item.ScrapedText)
	}
	return b.String()
}

// Save renders and stores the report, returning its ID
func (s *ReportService) Save(ctx context.Context, result *AnalyzeResult) (uuid.UUID, error) {
	if s.storage == nil {
		return uuid.Nil, ErrStorageNotSet
	}

	id := uuid.New()
	err := s.storage.Upload(ctx, reportKey(id), strings.NewReader(BuildReport(result)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to store report: %w", err)
	}
	return id, nil
}

// Open returns a reader over a stored report
func (s *ReportService) Open(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	if s.storage == nil {
		return nil, ErrStorageNotSet
	}

	reader, err := s.storage.Download(ctx, reportKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return reader, nil
}

// Delete removes a stored report
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.storage == nil {
		return ErrStorageNotSet
	}
	return s.storage.Delete(ctx, reportKey(id))
}

func reportKey(id uuid.UUID) string {
	return storage.ObjectKey(reportPrefix, id, ReportFilename)
}
