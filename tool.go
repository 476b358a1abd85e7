package toolscout

import (
	"context"
	"fmt"
	"strings"
)

// Unknown is rendered in place of fields that could not be extracted.
const Unknown = "unknown"

// Tool is one listing discovered on a tools-directory page.
// Empty fields were not found; only Name is guaranteed to be set.
type Tool struct {
	Name         string `json:"name"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`
	DirectoryURL string `json:"directoryUrl,omitempty"`
	Description  string `json:"description,omitempty"`

	// Summary is a shortened Description, or Description itself when
	// summarization was skipped or failed.
	Summary string `json:"summary,omitempty"`
}

// HasWebsite reports whether an external website link was found.
func (t *Tool) HasWebsite() bool { return t.WebsiteURL != "" }

// HasDirectory reports whether a directory detail link was found.
func (t *Tool) HasDirectory() bool { return t.DirectoryURL != "" }

// HasDescription reports whether a description was found.
func (t *Tool) HasDescription() bool { return t.Description != "" }

// Validate returns an error if the tool does not satisfy the acceptance rule:
// a name and at least one link.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "tool name required")
	}
	if !t.HasWebsite() && !t.HasDirectory() {
		return Errorf(EINVALID, "tool %q requires a website or directory link", t.Name)
	}
	return nil
}

// Field identifies a Tool field for extraction diagnostics.
type Field string

// Tool fields.
const (
	FieldName        Field = "name"
	FieldWebsite     Field = "website"
	FieldDirectory   Field = "directory"
	FieldDescription Field = "description"
)

// EventKind classifies an extraction diagnostic.
type EventKind string

// Extraction event kinds.
const (
	EventNoContainers      EventKind = "no-containers"
	EventCandidateRejected EventKind = "candidate-rejected"
	EventFieldMiss         EventKind = "field-miss"
	EventContainerRejected EventKind = "container-rejected"
	EventSummaryFailed     EventKind = "summary-failed"
)

// ExtractEvent records a recoverable condition met during extraction.
type ExtractEvent struct {
	Kind EventKind

	// Container is the 1-based index of the container, 0 for page-level events.
	Container int

	// Field is empty for container-level events.
	Field Field

	// Strategy names the fallback strategy that produced the event, if any.
	Strategy string

	Detail  string
	Snippet string
}

// Tally holds the counters of one extraction run.
type Tally struct {
	// Rule names the container discovery rule that matched, empty when none did.
	Rule string

	Containers int
	Accepted   int
	Rejected   int

	// Missing counts range over accepted tools only.
	MissingWebsite     int
	MissingDirectory   int
	MissingDescription int
}

// Degenerate reports whether no candidate containers were found at all.
func (t Tally) Degenerate() bool {
	return t.Containers == 0
}

// Summary renders the tally as plain text.
func (t Tally) Summary() string {
	var b strings.Builder
	b.WriteString("--- Listing Extraction Summary ---\n")
	if t.Degenerate() {
		b.WriteString("No potential tool containers were identified on the page.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Processed %d potential tool containers (rule %q).\n", t.Containers, t.Rule)
	fmt.Fprintf(&b, "Extracted %d tools with a name and at least one link.\n", t.Accepted)
	fmt.Fprintf(&b, "Containers discarded: %d\n", t.Rejected)
	fmt.Fprintf(&b, "Tools missing an external website link: %d\n", t.MissingWebsite)
	fmt.Fprintf(&b, "Tools missing a directory link: %d\n", t.MissingDirectory)
	fmt.Fprintf(&b, "Tools missing a description: %d\n", t.MissingDescription)
	if t.Accepted == 0 {
		b.WriteString("No tools met the criteria (name and at least one link).\n")
	}
	return b.String()
}

// Extraction is the outcome of one listing extraction run.
type Extraction struct {
	Tools  []*Tool
	Tally  Tally
	Events []ExtractEvent
}

// ListingExtractor extracts tool listings from a parsed document.
type ListingExtractor interface {
	// Extract never fails: missing data yields fewer tools and
	// diagnostic events explaining why.
	Extract(ctx context.Context, root Node) *Extraction
}
