package toolscout_test

import (
	"context"
	"testing"

	"github.com/fwojciec/toolscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time check that DisabledSummarizer implements Summarizer.
var _ toolscout.Summarizer = (*toolscout.DisabledSummarizer)(nil)

func TestDisabledSummarizer(t *testing.T) {
	t.Parallel()

	t.Run("returns input unchanged", func(t *testing.T) {
		t.Parallel()

		s := toolscout.NewDisabledSummarizer("GEMINI_API_KEY not set")

		summary, err := s.Summarize(context.Background(), "some text to keep", 50, 15)

		require.NoError(t, err)
		assert.Equal(t, "some text to keep", summary)
	})

	t.Run("reports disabled state", func(t *testing.T) {
		t.Parallel()

		s := toolscout.NewDisabledSummarizer("no client")

		assert.Equal(t, toolscout.SummarizerDisabled, s.State())
		assert.Equal(t, "disabled", s.State().String())
		assert.Equal(t, "no client", s.Reason)
	})
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, toolscout.WordCount("   "))
	assert.Equal(t, 3, toolscout.WordCount(" one\ttwo\nthree "))
}

func TestTruncateWords(t *testing.T) {
	t.Parallel()

	t.Run("keeps short text untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "one  two", toolscout.TruncateWords("one  two", 5))
	})

	t.Run("cuts to n words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "one two", toolscout.TruncateWords("one two three four", 2))
	})
}
