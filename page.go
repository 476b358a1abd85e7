package toolscout

// Page is a fetched and parsed web page.
type Page struct {
	URL   string
	Title string

	// Text is the main human-readable text of the page.
	Text string

	// Links holds absolute http(s) links in document order.
	Links []Link

	// Videos holds links pointing at recognized video hosts.
	Videos []Video

	// Root is the queryable document tree.
	Root Node

	// Summary is a shortened Text, empty when no summary was produced.
	Summary string
}

// Link is an anchor found on a page.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Video is a link to a video hosting site.
type Video struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	SourceURL string `json:"sourceUrl"`
}
