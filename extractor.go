package toolscout

// TextResult holds the main content of an HTML page as plain text.
type TextResult struct {
	Title string
	Text  string
}

// TextExtractor finds the main human-readable text of a page.
type TextExtractor interface {
	// ExtractText processes raw HTML served at pageURL.
	// Boilerplate (nav, footer, sidebar, ads) is left out where detectable.
	ExtractText(html string, pageURL string) (*TextResult, error)
}
