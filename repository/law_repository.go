package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"legaladvisor-backend/models"
	"legaladvisor-backend/storage"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultLawPrefix is the storage prefix holding per-jurisdiction law files
const DefaultLawPrefix = "laws"

// LawRepository loads local laws from per-jurisdiction files in object storage.
// Files are named laws_<jurisdiction>.json, or laws_<jurisdiction>.yaml.
type LawRepository struct {
	storage storage.Storage
	prefix  string
	logger  *zap.Logger
}

// NewLawRepository creates a new law repository
func NewLawRepository(st storage.Storage, prefix string, logger *zap.Logger) *LawRepository {
	if prefix == "" {
		prefix = DefaultLawPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LawRepository{storage: st, prefix: prefix, logger: logger}
}

// normalizeJurisdiction lowercases a jurisdiction name; names that cannot be a file name yield ""
func normalizeJurisdiction(jurisdiction string) string {
	j := strings.ToLower(strings.TrimSpace(jurisdiction))
	if strings.ContainsAny(j, `/\`) || strings.Contains(j, "..") {
		return ""
	}
	return j
}

func (r *LawRepository) key(jurisdiction, ext string) string {
	return path.Join(r.prefix, "laws_"+jurisdiction+ext)
}

// Load returns the local laws of a jurisdiction (case-insensitive).
// A jurisdiction without a file yields an empty slice and no error.
// Entries without a title, text or known type are skipped.
func (r *LawRepository) Load(ctx context.Context, jurisdiction string) ([]models.Law, error) {
	j := normalizeJurisdiction(jurisdiction)
	if j == "" {
		return []models.Law{}, nil
	}

	entries, err := r.readEntries(ctx, j)
	if err != nil {
		return nil, err
	}

	laws := make([]models.Law, 0, len(entries))
	for i, entry := range entries {
		law, ok := entry.ToLaw()
		if !ok {
			r.logger.Warn("skipping invalid law entry",
				zap.String("jurisdiction", j), zap.Int("index", i), zap.String("title", entry.Title))
			continue
		}
		laws = append(laws, law)
	}
	return laws, nil
}

func (r *LawRepository) readEntries(ctx context.Context, j string) ([]models.LawFileEntry, error) {
	for _, ext := range []string{".json", ".yaml"} {
		rc, err := r.storage.Download(ctx, r.key(j, ext))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to read laws for %s: %w", j, err)
		}

		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read laws for %s: %w", j, err)
		}

		var entries []models.LawFileEntry
		if ext == ".json" {
			err = json.Unmarshal(data, &entries)
		} else {
			err = yaml.Unmarshal(data, &entries)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode laws for %s: %w", j, err)
		}
		return entries, nil
	}
	return []models.LawFileEntry{}, nil
}

// Exists reports whether a law file is stored for the jurisdiction
func (r *LawRepository) Exists(ctx context.Context, jurisdiction string) (bool, error) {
	j := normalizeJurisdiction(jurisdiction)
	if j == "" {
		return false, nil
	}
	for _, ext := range []string{".json", ".yaml"} {
		rc, err := r.storage.Download(ctx, r.key(j, ext))
		if err == nil {
			rc.Close()
			return true, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return false, err
		}
	}
	return false, nil
}

// Save writes the jurisdiction's law file as JSON
func (r *LawRepository) Save(ctx context.Context, jurisdiction string, entries []models.LawFileEntry) error {
	j := normalizeJurisdiction(jurisdiction)
	if j == "" {
		return fmt.Errorf("invalid jurisdiction: %q", jurisdiction)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode laws: %w", err)
	}
	return r.storage.Upload(ctx, r.key(j, ".json"), strings.NewReader(string(data)))
}

// SampleLaws returns the placeholder laws seeded for a new jurisdiction
func SampleLaws() []models.LawFileEntry {
	return []models.LawFileEntry{
		{
			Title:             "Sample Legal Law",
			Text:              "This sample legal law grants individuals rights in accordance with constitutional protections.",
			Type:              "Legal",
			EnforcementAgency: "Sample Agency",
		},
		{
			Title:             "Sample Illegal Act",
			Text:              "This sample illegal act is prohibited unless an exemption is granted by authority.",
			Type:              "Illegal",
			EnforcementAgency: "Law Enforcement",
		},
	}
}
