// Package cache memoizes summaries for the lifetime of the process.
package cache

import (
	"context"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/toolscout"
)

// DefaultMaxEntries bounds the number of memoized summaries.
const DefaultMaxEntries = 1024

// Ensure Summarizer implements toolscout.Summarizer at compile time.
var _ toolscout.Summarizer = (*Summarizer)(nil)

// Summarizer returns memoized summaries for repeated (text, bounds) inputs
// and delegates everything else. Failed calls are not memoized.
// It is safe for concurrent use.
type Summarizer struct {
	next       toolscout.Summarizer
	maxEntries int

	mu    sync.RWMutex
	store map[uint64]string
}

// NewSummarizer wraps next with a memo of at most maxEntries summaries.
// A non-positive maxEntries selects DefaultMaxEntries.
func NewSummarizer(next toolscout.Summarizer, maxEntries int) *Summarizer {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Summarizer{
		next:       next,
		maxEntries: maxEntries,
		store:      make(map[uint64]string),
	}
}

// Key hashes text together with the summary bounds.
func Key(text string, maxLength, minLength int) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(strconv.Itoa(maxLength))
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(strconv.Itoa(minLength))
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(text)
	return d.Sum64()
}

// Summarize returns the memoized summary or delegates to the wrapped summarizer.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	key := Key(text, maxLength, minLength)

	s.mu.RLock()
	summary, ok := s.store[key]
	s.mu.RUnlock()
	if ok {
		return summary, nil
	}

	summary, err := s.next.Summarize(ctx, text, maxLength, minLength)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if len(s.store) < s.maxEntries {
		s.store[key] = summary
	}
	s.mu.Unlock()

	return summary, nil
}

// State reports the wrapped summarizer's state.
func (s *Summarizer) State() toolscout.SummarizerState {
	return s.next.State()
}

// Len returns the number of memoized summaries.
func (s *Summarizer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}
