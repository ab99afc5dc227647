package search

import (
	"regexp"
	"strings"
)

// Heuristics separating business listings from editorial web content. The
// whole pipeline is precision-biased: a wrongly discarded listing costs one
// candidate, a wrongly kept article pollutes outreach.

var contentPathRe = regexp.MustCompile(`(?i)/(blog|blogs|article|articles|forum|forums|news|guide|guides|how-to|howto|post|posts|story|stories|wiki|watch)(/|$|\?)`)

var contentDomains = []string{
	"youtube.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"tiktok.com",
	"reddit.com",
	"medium.com",
	"quora.com",
	"pinterest.com",
	"wikihow.com",
	"wikipedia.org",
	"blogspot.com",
	"wordpress.com",
	"tumblr.com",
}

var articleTitleRe = regexp.MustCompile(`(?i)^(how to\b|how do\b|why (is|does|do|did)\b|what (is|are|to)\b|when (to|should)\b|where to\b|should (i|you)\b|top \d+\b|best \d+\b|\d+ (ways|tips|things|signs|reasons|steps)\b|the ultimate guide\b|a guide to\b)`)

var editorialMarkers = []string{
	"published on",
	"written by",
	"posted by",
	"related articles",
	"leave a comment",
	"min read",
	"share this article",
	"continue reading",
	"subscribe to our newsletter",
}

// Directory-style hosts whose pages are business listings rather than
// editorial content.
var listingDomains = []string{
	"google.com/maps",
	"maps.google.",
	"yelp.",
	"yellowpages.",
	"bbb.org",
	"angi.com",
	"thumbtack.com",
	"homeadvisor.com",
	"houzz.com",
	"checkatrade.com",
	"trustatrader.com",
	"foursquare.com",
	"mapquest.com",
	"bizapedia.com",
	"manta.com",
}

// isNonBusinessContent rejects documents that look like blogs, articles,
// forums, videos or social posts before any extraction runs.
func isNonBusinessContent(doc Document) bool {
	url := strings.ToLower(doc.URL)
	if contentPathRe.MatchString(url) {
		return true
	}
	for _, domain := range contentDomains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	if articleTitleRe.MatchString(strings.TrimSpace(doc.Title)) {
		return true
	}

	content := strings.ToLower(doc.Content)
	markers := 0
	for _, m := range editorialMarkers {
		if strings.Contains(content, m) {
			markers++
			if markers >= 2 {
				return true
			}
		}
	}
	return false
}

// isListingURL reports whether the URL belongs to a maps/directory/trade
// listing host.
func isListingURL(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range listingDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
