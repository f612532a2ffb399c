package keyword

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// contentGenerator is the subset of *genai.GenerativeModel used for extraction
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

const extractionPrompt = `Extract the lemmas of every noun and verb from the text below.
Return ONLY a JSON array of lowercase strings, with no commentary.

Text:
%s`

// GeminiExtractor asks a Gemini model for noun and verb lemmas
type GeminiExtractor struct {
	model contentGenerator
}

// NewGeminiExtractor creates an extractor backed by the named Gemini model
func NewGeminiExtractor(client *genai.Client, modelName string) *GeminiExtractor {
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"
	return &GeminiExtractor{model: model}
}

// Extract calls the model and parses its JSON array reply
func (e *GeminiExtractor) Extract(ctx context.Context, text string) (Set, error) {
	if e.model == nil {
		return nil, errors.New("gemini model not set")
	}

	resp, err := e.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate keywords: %w", err)
	}

	var reply strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				reply.WriteString(string(t))
			}
		}
	}

	terms, err := parseTermArray(reply.String())
	if err != nil {
		return nil, err
	}

	set := NewSet(terms...)
	if set.Len() == 0 {
		return nil, ErrNoKeywords
	}
	return set, nil
}

// parseTermArray decodes a JSON string array, tolerating markdown code fences
func parseTermArray(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		return nil, fmt.Errorf("failed to decode keyword reply: %w", err)
	}
	return terms, nil
}
