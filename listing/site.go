package listing

import (
	"net/url"
	"strings"

	"github.com/fwojciec/toolscout"
)

// Site describes the directory site being scraped.
type Site struct {
	// Origin is the scheme and host prepended to internal paths,
	// e.g. "https://www.futuretools.io".
	Origin string

	// InternalPrefixes mark hrefs pointing at the site's own tool pages.
	InternalPrefixes []string
}

// FutureTools is the default directory site.
var FutureTools = Site{
	Origin:           "https://www.futuretools.io",
	InternalPrefixes: []string{"/tool/", "/tools/"},
}

// SiteFor returns a Site whose origin is derived from pageURL, using the
// FutureTools internal prefixes.
func SiteFor(pageURL string) (Site, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Site{}, toolscout.Errorf(toolscout.EINVALID, "invalid page URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return Site{}, toolscout.Errorf(toolscout.EINVALID, "page URL must be absolute http(s): %q", pageURL)
	}
	return Site{
		Origin:           u.Scheme + "://" + u.Host,
		InternalPrefixes: FutureTools.InternalPrefixes,
	}, nil
}

// IsInternal reports whether href begins with one of the internal prefixes.
func (s Site) IsInternal(href string) bool {
	for _, p := range s.InternalPrefixes {
		if strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}

// Resolve prefixes root-relative paths with the origin.
func (s Site) Resolve(href string) string {
	if strings.HasPrefix(href, "/") {
		return strings.TrimSuffix(s.Origin, "/") + href
	}
	return href
}

// IsExternal reports whether href is an absolute http(s) URL on another
// domain. The site's domain is its origin host without a leading "www.";
// subdomains of it count as the same domain.
func (s Site) IsExternal(href string) bool {
	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		return false
	}
	u, err := url.Parse(href)
	if err != nil || u.Hostname() == "" {
		return false
	}
	domain := s.domain()
	if domain == "" {
		return true
	}
	host := strings.ToLower(u.Hostname())
	return host != domain && !strings.HasSuffix(host, "."+domain)
}

func (s Site) domain() string {
	u, err := url.Parse(s.Origin)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
