package toolscout

import (
	"fmt"
	"strings"
)

// Output formats accepted by Render.
const (
	FormatList       = "list"
	FormatParagraphs = "paragraphs"
)

// Kind identifies what a Report carries.
type Kind string

// Report kinds.
const (
	KindTools   Kind = "tools"
	KindWebsite Kind = "website"
)

// Display limits used by the renderers.
const (
	ListLinkLimit      = 10
	ParagraphLinkLimit = 5
	TextSnippetLength  = 500
)

// Report is the data handed to Render.
// Tools is used for KindTools, Page for KindWebsite.
type Report struct {
	Kind  Kind
	Tools []*Tool
	Page  *Page
}

// Render formats r in the named format. Unknown formats or kinds produce
// an explanatory message instead of output.
func Render(format string, r Report) string {
	if r.Kind != KindTools && r.Kind != KindWebsite {
		return fmt.Sprintf("Invalid source type %q provided. Use %q or %q.", r.Kind, KindTools, KindWebsite)
	}

	switch format {
	case FormatList:
		return RenderList(r)
	case FormatParagraphs:
		return RenderParagraphs(r)
	default:
		return fmt.Sprintf("Invalid format %q provided. Use %q or %q.", format, FormatList, FormatParagraphs)
	}
}

// RenderList formats r as a human-readable list.
func RenderList(r Report) string {
	var lines []string

	if r.Kind == KindTools {
		lines = append(lines, "--- AI Tools (List Format) ---")
		if len(r.Tools) == 0 {
			lines = append(lines, "No tools found.")
		}
		for i, tool := range r.Tools {
			lines = append(lines,
				fmt.Sprintf("\nTool %d:", i+1),
				"  Name: "+orUnknown(tool.Name),
				"  Website: "+orUnknown(tool.WebsiteURL),
			)
		}
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "--- Website Content (List Format) ---")
	if r.Page == nil {
		lines = append(lines, "No website data provided.")
		return strings.Join(lines, "\n")
	}

	if len(r.Page.Links) == 0 {
		lines = append(lines, "\nNo hyperlinks found.")
	} else {
		lines = append(lines, "\n--- Hyperlinks ---")
		for i, link := range r.Page.Links[:min(len(r.Page.Links), ListLinkLimit)] {
			lines = append(lines,
				fmt.Sprintf("  %d. Text: %s", i+1, orUnknown(link.Text)),
				"     Href: "+link.Href,
			)
		}
	}

	if len(r.Page.Videos) == 0 {
		lines = append(lines, "\nNo videos found.")
	} else {
		lines = append(lines, "\n--- Videos ---")
		for i, video := range r.Page.Videos {
			lines = append(lines,
				fmt.Sprintf("  %d. Title: %s", i+1, orUnknown(video.Title)),
				"     URL: "+video.URL,
			)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderParagraphs formats r as human-readable paragraphs separated by blank lines.
func RenderParagraphs(r Report) string {
	var paragraphs []string

	if r.Kind == KindTools {
		paragraphs = append(paragraphs, "--- AI Tools (Paragraph Format) ---")
		if len(r.Tools) == 0 {
			paragraphs = append(paragraphs, "No tools found.")
		}
		for _, tool := range r.Tools {
			paragraphs = append(paragraphs, toolParagraph(tool))
		}
		return strings.Join(paragraphs, "\n\n")
	}

	paragraphs = append(paragraphs, "--- Website Content (Paragraph Format) ---")
	page := r.Page
	if page == nil {
		paragraphs = append(paragraphs, "No website data provided.")
		return strings.Join(paragraphs, "\n\n")
	}

	switch {
	case page.Summary != "":
		paragraphs = append(paragraphs, "Website Summary:\n"+page.Summary)
	case page.Text != "":
		paragraphs = append(paragraphs, "Website Summary:\n(Summarizer not available or text too short). Full text snippet:\n"+
			truncateRunes(page.Text, TextSnippetLength))
	default:
		paragraphs = append(paragraphs, "No main text content extracted to summarize.")
	}

	if len(page.Links) == 0 {
		paragraphs = append(paragraphs, "No hyperlinks found.")
	} else {
		var b strings.Builder
		b.WriteString("Key Hyperlinks Found:")
		for _, link := range page.Links[:min(len(page.Links), ParagraphLinkLimit)] {
			fmt.Fprintf(&b, "\n- %s (%s)", orUnknown(link.Text), link.Href)
		}
		if extra := len(page.Links) - ParagraphLinkLimit; extra > 0 {
			fmt.Fprintf(&b, "\n...and %d more links.", extra)
		}
		paragraphs = append(paragraphs, b.String())
	}

	if len(page.Videos) == 0 {
		paragraphs = append(paragraphs, "No videos found.")
	} else {
		var b strings.Builder
		b.WriteString("Videos Found:")
		for _, video := range page.Videos {
			fmt.Fprintf(&b, "\n- %s (%s)", orUnknown(video.Title), video.URL)
		}
		paragraphs = append(paragraphs, b.String())
	}

	return strings.Join(paragraphs, "\n\n")
}

func toolParagraph(tool *Tool) string {
	desc := tool.Summary
	if desc == "" {
		desc = tool.Description
	}

	var b strings.Builder
	b.WriteString("Tool: " + orUnknown(tool.Name))
	b.WriteString("\nDescription: " + orUnknown(desc))
	b.WriteString("\nWebsite: " + orUnknown(tool.WebsiteURL))
	if tool.HasDirectory() {
		b.WriteString("\nDirectory Page: " + tool.DirectoryURL)
	}
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// truncateRunes shortens s to n runes, marking the cut with "...".
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
