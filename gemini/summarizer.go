// Package gemini implements toolscout.Summarizer and toolscout.TokenCounter
// on top of Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/toolscout"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements toolscout.Summarizer at compile time.
var _ toolscout.Summarizer = (*Summarizer)(nil)

// Summarizer implements toolscout.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Model returns the Gemini model name used for summaries.
func (s *Summarizer) Model() string {
	return s.model
}

// State always returns toolscout.SummarizerReady.
func (s *Summarizer) State() toolscout.SummarizerState {
	return toolscout.SummarizerReady
}

// Summarize asks Gemini for a summary of text between minLength and
// maxLength words. Answers are cut to maxLength words, and to fewer words
// than text when text is longer than minLength.
func (s *Summarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", toolscout.Errorf(toolscout.EINVALID, "text required")
	}
	if maxLength <= 0 || minLength < 0 || minLength > maxLength {
		return "", toolscout.Errorf(toolscout.EINVALID, "invalid summary bounds: min %d, max %d", minLength, maxLength)
	}

	prompt := BuildPrompt(text, maxLength, minLength)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", toolscout.Errorf(toolscout.EINTERNAL, "gemini returned nil result")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", toolscout.Errorf(toolscout.EINTERNAL, "gemini returned empty summary")
	}
	return toolscout.TruncateWords(summary, summaryLimit(text, maxLength, minLength)), nil
}

// summaryLimit returns the word cap for a summary of text. A summary is
// kept shorter than its input whenever the input exceeds minLength words.
func summaryLimit(text string, maxLength, minLength int) int {
	if words := toolscout.WordCount(text); words > minLength {
		return min(maxLength, words-1)
	}
	return maxLength
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize text for a catalog of software tools. Reply with the summary only, as plain prose without headings, lists, or quotes. Use only facts stated in the text.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt asking for a bounded summary of text.
func BuildPrompt(text string, maxLength, minLength int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the following text in %d to %d words.\n\n", minLength, maxLength)
	sb.WriteString("<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}
