package toolscout

import (
	"context"
	"strings"
)

// SummarizerState tells whether a Summarizer can do real work.
type SummarizerState int

// Summarizer states.
const (
	SummarizerDisabled SummarizerState = iota
	SummarizerReady
)

func (s SummarizerState) String() string {
	if s == SummarizerReady {
		return "ready"
	}
	return "disabled"
}

// Summarizer shortens text. Lengths are measured in words.
type Summarizer interface {
	// Summarize returns a summary of text between minLength and maxLength
	// words. A disabled summarizer returns text unchanged.
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)

	// State reports whether the summarizer is ready or disabled.
	// The state is fixed for the lifetime of the value.
	State() SummarizerState
}

// Ensure DisabledSummarizer implements Summarizer at compile time.
var _ Summarizer = (*DisabledSummarizer)(nil)

// DisabledSummarizer stands in when no summarization backend could be
// initialized.
type DisabledSummarizer struct {
	// Reason explains why summarization is unavailable.
	Reason string
}

// NewDisabledSummarizer returns a DisabledSummarizer with the given reason.
func NewDisabledSummarizer(reason string) *DisabledSummarizer {
	return &DisabledSummarizer{Reason: reason}
}

// Summarize returns text unchanged.
func (s *DisabledSummarizer) Summarize(_ context.Context, text string, _, _ int) (string, error) {
	return text, nil
}

// State always returns SummarizerDisabled.
func (s *DisabledSummarizer) State() SummarizerState {
	return SummarizerDisabled
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// TruncateWords returns the first n words of s joined by single spaces.
// s is returned unchanged when it has n words or fewer.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ")
}
