package grounding

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/oasis-voice/oasis/internal/log"
)

// Search is a SearchProvider backed by Gemini generateContent with the
// GoogleSearch tool enabled.
type Search struct {
	client *genai.Client
	model  string
	logger log.Logger
}

// NewSearch creates a search-grounded provider.
func NewSearch(client *genai.Client, model string, logger log.Logger) (*Search, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Search{client: client, model: model, logger: logger}, nil
}

// GroundedAnswer returns the model's text response for prompt. Errors
// propagate to the caller, who converts them to a user-facing string.
func (s *Search) GroundedAnswer(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return "", fmt.Errorf("search grounding: %w", err)
	}

	text := resp.Text()
	s.logger.Debug("search grounding answered", "prompt_len", len(prompt), "answer_len", len(text))
	return text, nil
}
