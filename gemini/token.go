package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/toolscout"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ toolscout.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts summarizer input tokens offline with the local Gemini
// tokenizer, so long-input warnings cost no API call.
type TokenCounter struct {
	model string

	mu  sync.Mutex
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, toolscout.Errorf(toolscout.EUNAVAILABLE, "tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{model: model, tok: tok}, nil
}

// Model returns the model whose vocabulary is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens returns the number of tokens in text as a single user turn.
// Blank text counts as zero.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
