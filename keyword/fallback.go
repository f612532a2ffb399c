package keyword

import (
	"context"

	"go.uber.org/zap"
)

// FallbackExtractor tries the primary extractor and falls back to the secondary on error
type FallbackExtractor struct {
	primary   Extractor
	secondary Extractor
	logger    *zap.Logger
}

// NewFallbackExtractor chains two extractors. A nil primary means the secondary is always used.
func NewFallbackExtractor(primary, secondary Extractor, logger *zap.Logger) *FallbackExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackExtractor{primary: primary, secondary: secondary, logger: logger}
}

// Extract implements Extractor
func (e *FallbackExtractor) Extract(ctx context.Context, text string) (Set, error) {
	if e.primary != nil {
		set, err := e.primary.Extract(ctx, text)
		if err == nil {
			return set, nil
		}
		e.logger.Warn("primary keyword extractor failed, falling back", zap.Error(err))
	}
	return e.secondary.Extract(ctx, text)
}
