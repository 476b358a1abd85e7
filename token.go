package toolscout

import "context"

// TokenCounter counts model tokens in text. Used to annotate warnings about
// oversized summarizer input.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
