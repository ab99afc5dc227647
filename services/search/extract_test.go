package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFreeMailAddress(t *testing.T) {
	tests := []struct {
		email string
		free  bool
	}{
		{"joe@gmail.com", true},
		{"JOE@GMAIL.COM", true},
		{"info@yahoo.com", true},
		{"office@acmeplumbing.com", false},
		{"support@outlook.co.uk", false},
		{"not-an-email", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.free, IsFreeMailAddress(tc.email), tc.email)
	}
}

func TestExtractBusinessName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Acme Plumbing Ltd - Google Maps", "Acme Plumbing Ltd"},
		{"Acme Plumbing Ltd | Yelp", "Acme Plumbing Ltd"},
		{"Acme Plumbing - Yelp - Google Maps", "Acme Plumbing"},
		{"Brighton Boiler Co - Contact Us", "Brighton Boiler Co"},
		{"How to fix a leaking tap", ""},
		{"Top 10 plumbers in Leeds", ""},
		{"AB", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, extractBusinessName(tc.title), tc.title)
	}
}

func TestExtractPhones(t *testing.T) {
	text := "Call us on (020) 7946-0123 or +44 20 7946 0999. Fax: 12345."
	phones := extractPhones(text)
	require.Len(t, phones, 2)
	assert.Contains(t, phones[0], "7946")

	// Nine digits is below the minimum.
	assert.Empty(t, extractPhones("ref 123-456-789"))
}

func TestExtractBusinessEmails(t *testing.T) {
	text := "Email office@acmeplumbing.com, Office@AcmePlumbing.com or joe@gmail.com"
	emails := extractBusinessEmails(text)
	require.Len(t, emails, 1, "free mail excluded and duplicates collapsed")
	assert.Equal(t, "office@acmeplumbing.com", emails[0])
}

func TestExtractAddresses(t *testing.T) {
	text := "Visit us at 42 High Street or write to 1580 Maple Grove Ave."
	addresses := extractAddresses(text)
	require.Len(t, addresses, 2)
	assert.Equal(t, "42 High Street", addresses[0])
}

func TestExtractCandidate_KeepGate(t *testing.T) {
	listing := Document{
		URL:     "https://www.yelp.com/biz/acme-plumbing-london",
		Title:   "Acme Plumbing Ltd - Yelp",
		Content: "Call (020) 7946-0123. Email office@acmeplumbing.com.",
	}
	c := extractCandidate(listing)
	require.NotNil(t, c)
	assert.Equal(t, "Acme Plumbing Ltd", c.Name)
	assert.Len(t, c.Phones, 1)
	assert.Len(t, c.BusinessEmails, 1)

	// Contact details but neither a listing host nor a street address.
	noAnchor := Document{
		URL:     "https://acmeplumbing.example.com/",
		Title:   "Acme Plumbing Ltd",
		Content: "Call (020) 7946-0123.",
	}
	assert.Nil(t, extractCandidate(noAnchor))

	// A street address substitutes for the listing host.
	withAddress := Document{
		URL:     "https://acmeplumbing.example.com/",
		Title:   "Acme Plumbing Ltd",
		Content: "Call (020) 7946-0123. Find us at 42 High Street.",
	}
	assert.NotNil(t, extractCandidate(withAddress))

	// A name alone is never enough.
	noContact := Document{
		URL:     "https://www.yelp.com/biz/acme-plumbing-london",
		Title:   "Acme Plumbing Ltd - Yelp",
		Content: "Great plumbers.",
	}
	assert.Nil(t, extractCandidate(noContact))
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		emails, phones, addresses int
		want                      float64
	}{
		{0, 0, 0, 2},
		{0, 1, 0, 3},
		{0, 0, 1, 3},
		{0, 2, 3, 4},
		{1, 0, 0, 9},
		{1, 1, 0, 10},
		{1, 1, 1, 10},
		{3, 5, 5, 10},
	}
	for _, tc := range tests {
		name := fmt.Sprintf("e%d_p%d_a%d", tc.emails, tc.phones, tc.addresses)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelevanceScore(tc.emails, tc.phones, tc.addresses))
		})
	}
}

func TestRelevanceScore_NoEmailNeverRecommended(t *testing.T) {
	for phones := 0; phones < 4; phones++ {
		for addresses := 0; addresses < 4; addresses++ {
			score := RelevanceScore(0, phones, addresses)
			assert.LessOrEqual(t, score, 4.0, "without a business email the score stays capped")
		}
	}
}
