package search

import (
	"regexp"
	"strings"
)

// candidate holds everything extracted from one surviving search document.
type candidate struct {
	Name           string
	Phones         []string
	BusinessEmails []string
	Addresses      []string
}

var (
	phoneRe   = regexp.MustCompile(`\+?\d[\d\s().-]{8,}\d`)
	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	addressRe = regexp.MustCompile(`(?i)\b\d{1,5}\s+(?:[A-Za-z][A-Za-z'.-]*\s+){1,4}(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|way|place|pl|terrace|ter|square|sq|highway|hwy|circle|cir)\b\.?`)

	// Suffixes appended by directory and map sites to page titles.
	titleSuffixRe = regexp.MustCompile(`(?i)\s*[-|–]\s*(google maps|google search|yelp|yellow pages|yellowpages(\.com)?|home( page)?|facebook|maps|bbb|better business bureau|angi|thumbtack|houzz|contact( us)?|about( us)?)\s*$`)
)

// freeMailDomains hosts consumer mailboxes. Addresses there are excluded
// from the business-email set; they cannot be used for credible outreach.
var freeMailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"icloud.com":  true,
}

// IsFreeMailAddress reports whether the address sits at a consumer mail host.
func IsFreeMailAddress(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return freeMailDomains[strings.ToLower(email[at+1:])]
}

// extractBusinessName derives a company name from a document title, with
// directory suffixes stripped. Returns "" when no plausible name remains.
func extractBusinessName(title string) string {
	name := strings.TrimSpace(title)
	for {
		stripped := titleSuffixRe.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = strings.TrimSpace(stripped)
	}
	// Directory titles often stack the site name after a separator; keep the
	// leading segment.
	if idx := strings.IndexAny(name, "|"); idx > 0 {
		name = strings.TrimSpace(name[:idx])
	}
	if articleTitleRe.MatchString(name) {
		return ""
	}
	if len(name) < 3 || len(name) > 80 {
		return ""
	}
	return name
}

// extractPhones returns phone-shaped runs with at least ten digits.
func extractPhones(text string) []string {
	var phones []string
	seen := make(map[string]bool)
	for _, m := range phoneRe.FindAllString(text, -1) {
		digits := countDigits(m)
		if digits < 10 || digits > 15 {
			continue
		}
		cleaned := strings.TrimSpace(m)
		if !seen[cleaned] {
			seen[cleaned] = true
			phones = append(phones, cleaned)
		}
	}
	return phones
}

// extractBusinessEmails returns addresses usable for business outreach,
// excluding consumer mail hosts.
func extractBusinessEmails(text string) []string {
	var emails []string
	seen := make(map[string]bool)
	for _, m := range emailRe.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		if IsFreeMailAddress(lower) || seen[lower] {
			continue
		}
		seen[lower] = true
		emails = append(emails, lower)
	}
	return emails
}

// extractAddresses returns postal-style number+street fragments.
func extractAddresses(text string) []string {
	var addresses []string
	seen := make(map[string]bool)
	for _, m := range addressRe.FindAllString(text, -1) {
		cleaned := strings.TrimSpace(m)
		key := strings.ToLower(cleaned)
		if !seen[key] {
			seen[key] = true
			addresses = append(addresses, cleaned)
		}
	}
	return addresses
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// extractCandidate runs the full extraction over one document. Returns nil
// when the document yields no keepable business: the candidate needs a
// phone or business email, and must look like a listing (directory host or
// an extracted street address).
func extractCandidate(doc Document) *candidate {
	name := extractBusinessName(doc.Title)
	if name == "" {
		return nil
	}

	text := doc.Title + "\n" + doc.Content
	c := &candidate{
		Name:           name,
		Phones:         extractPhones(text),
		BusinessEmails: extractBusinessEmails(text),
		Addresses:      extractAddresses(text),
	}

	if len(c.Phones) == 0 && len(c.BusinessEmails) == 0 {
		return nil
	}
	if !isListingURL(doc.URL) && len(c.Addresses) == 0 {
		return nil
	}
	return c
}

// RelevanceScore encodes the contact-completeness rule: email is the only
// channel reliable enough for cold outreach, so without one the score stays
// capped below any "recommended" threshold.
func RelevanceScore(businessEmails, phones, addresses int) float64 {
	var score float64
	if businessEmails == 0 {
		score = 2
		if phones > 0 {
			score++
		}
		if addresses > 0 {
			score++
		}
		if score > 4 {
			score = 4
		}
		return score
	}
	score = 5 + 4
	if phones > 0 {
		score++
	}
	if addresses > 0 {
		score++
	}
	if score > 10 {
		score = 10
	}
	return score
}
