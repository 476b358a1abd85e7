package mock

import (
	"context"

	"github.com/fwojciec/toolscout"
)

var _ toolscout.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of toolscout.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, maxLength, minLength int) (string, error)
	StateFn     func() toolscout.SummarizerState
}

func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	return s.SummarizeFn(ctx, text, maxLength, minLength)
}

func (s *Summarizer) State() toolscout.SummarizerState {
	return s.StateFn()
}
