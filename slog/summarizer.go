package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/toolscout"
)

// LongInputWords is the input size above which a warning is logged.
const LongInputWords = 1000

// Ensure LoggingSummarizer implements toolscout.Summarizer.
var _ toolscout.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging. It warns about input
// that is shorter than the requested minimum or unusually long, and still
// passes such input through.
type LoggingSummarizer struct {
	next   toolscout.Summarizer
	tokens toolscout.TokenCounter
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer. tokens may be nil;
// when set, long-input warnings include a token count.
func NewLoggingSummarizer(next toolscout.Summarizer, tokens toolscout.TokenCounter, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, tokens: tokens, logger: logger}
}

// Summarize logs the call and delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (summary string, err error) {
	words := toolscout.WordCount(text)
	if words < minLength {
		s.logger.Warn("summarizer input shorter than minimum length",
			"words", words,
			"min", minLength,
		)
	}
	if words > LongInputWords {
		attrs := []any{"words", words}
		if s.tokens != nil {
			if n, terr := s.tokens.CountTokens(ctx, text); terr == nil {
				attrs = append(attrs, "tokens", n)
			}
		}
		s.logger.Warn("summarizer input is long", attrs...)
	}

	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"state", s.next.State().String(),
			"words", words,
			"summary_words", toolscout.WordCount(summary),
			"max", maxLength,
			"min", minLength,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, maxLength, minLength)
}

// State delegates to the wrapped summarizer.
func (s *LoggingSummarizer) State() toolscout.SummarizerState {
	return s.next.State()
}
