package extract

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
)

func TestExtractFullHeading(t *testing.T) {
	raw := &domain.SearchResult{
		Title:   "Jane Doe - Senior Software Engineer | LinkedIn",
		Snippet: "Jane Doe. Senior Software Engineer at Acme.",
		Link:    "https://linkedin.com/in/janedoe",
		Pagemap: json.RawMessage(`{"cse_image":[{"src":"https://img.example/jane.jpg"}]}`),
	}

	profile := Extract(raw)

	if profile.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", profile.Name)
	}
	if profile.Title != "Senior Software Engineer" {
		t.Fatalf("expected title Senior Software Engineer, got %q", profile.Title)
	}
	if profile.Link != "https://linkedin.com/in/janedoe" {
		t.Fatalf("unexpected link %q", profile.Link)
	}
	if profile.Description != "Jane Doe. Senior Software Engineer at Acme." {
		t.Fatalf("unexpected description %q", profile.Description)
	}
	if profile.Image != "https://img.example/jane.jpg" {
		t.Fatalf("unexpected image %q", profile.Image)
	}
}

func TestExtractNameStripsHonorific(t *testing.T) {
	raw := &domain.SearchResult{
		Title:   "Dr. John Smith | LinkedIn",
		Snippet: "Engineering Manager at Example Corp · Boston",
	}

	profile := Extract(raw)

	if profile.Name != "John Smith" {
		t.Fatalf("expected honorific to be stripped, got %q", profile.Name)
	}
}

func TestExtractEmptyInputsYieldSentinels(t *testing.T) {
	profile := Extract(&domain.SearchResult{})

	if profile.Name != domain.NotAvailable {
		t.Fatalf("expected sentinel name, got %q", profile.Name)
	}
	if profile.Title != domain.NotAvailable {
		t.Fatalf("expected sentinel title, got %q", profile.Title)
	}
	if profile.Description != domain.NotAvailable {
		t.Fatalf("expected sentinel description, got %q", profile.Description)
	}
	if profile.Image != "" {
		t.Fatalf("expected empty image, got %q", profile.Image)
	}
}

func TestExtractTitleKeepsEverythingAfterFirstDelimiter(t *testing.T) {
	raw := &domain.SearchResult{
		Title: "Jane Doe - Founder - Acme Labs | LinkedIn",
	}

	profile := Extract(raw)

	if profile.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", profile.Name)
	}
	if profile.Title != "Founder - Acme Labs" {
		t.Fatalf("expected full tail as title, got %q", profile.Title)
	}
}

func TestExtractTitleFromSnippetKeywords(t *testing.T) {
	raw := &domain.SearchResult{
		Title:   "John Smith | LinkedIn",
		Snippet: "Boston, Massachusetts · Engineering Manager at Example Corp · 500+ connections",
	}

	profile := Extract(raw)

	if profile.Title != "Engineering Manager at Example Corp" {
		t.Fatalf("expected keyword segment as title, got %q", profile.Title)
	}
}

func TestExtractTitleFromLeadingSentence(t *testing.T) {
	raw := &domain.SearchResult{
		Title:   "John Smith | LinkedIn",
		Snippet: "Passionate about growing plants. Based in Lisbon.",
	}

	profile := Extract(raw)

	if profile.Title != "Passionate about growing plants" {
		t.Fatalf("expected leading sentence as title, got %q", profile.Title)
	}
}

func TestExtractNameProcessedToEmptyStaysEmpty(t *testing.T) {
	// Sentinel substitution happens only for empty input, not for input that
	// cleans down to nothing.
	raw := &domain.SearchResult{
		Title: " - Senior Engineer | LinkedIn",
	}

	profile := Extract(raw)

	if profile.Name != "" {
		t.Fatalf("expected empty name, got %q", profile.Name)
	}
}

func TestCleanDescriptionNormalizesEntitiesAndWhitespace(t *testing.T) {
	raw := &domain.SearchResult{
		Snippet: "Growth&nbsp;&amp; Strategy \n lead   consultant",
	}

	profile := Extract(raw)

	if profile.Description != "Growth & Strategy lead consultant" {
		t.Fatalf("unexpected description %q", profile.Description)
	}
}

func TestCleanDescriptionTruncatesLongSnippets(t *testing.T) {
	raw := &domain.SearchResult{
		Snippet: strings.Repeat("a", 350),
	}

	profile := Extract(raw)

	if got := utf8.RuneCountInString(profile.Description); got != 303 {
		t.Fatalf("expected 300 runes plus ellipsis marker, got %d", got)
	}
	if !strings.HasSuffix(profile.Description, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", profile.Description[290:])
	}
}

func TestCleanDescriptionWhitespaceOnlyStaysEmpty(t *testing.T) {
	raw := &domain.SearchResult{
		Snippet: "   \n\t ",
	}

	profile := Extract(raw)

	if profile.Description != "" {
		t.Fatalf("expected empty description, got %q", profile.Description)
	}
}

func TestExtractImageFallsBackToMetatags(t *testing.T) {
	raw := &domain.SearchResult{
		Pagemap: json.RawMessage(`{"cse_image":[{"src":""}],"metatags":[{"og:image":"https://img.example/og.jpg"}]}`),
	}

	profile := Extract(raw)

	if profile.Image != "https://img.example/og.jpg" {
		t.Fatalf("expected og:image fallback, got %q", profile.Image)
	}
}

func TestExtractImageToleratesMalformedPagemap(t *testing.T) {
	cases := []json.RawMessage{
		nil,
		json.RawMessage(`not json`),
		json.RawMessage(`{"cse_image":"wrong shape"}`),
		json.RawMessage(`{"metatags":[{"og:image":42}]}`),
	}

	for _, pagemap := range cases {
		profile := Extract(&domain.SearchResult{Pagemap: pagemap})
		if profile.Image != "" {
			t.Fatalf("expected empty image for pagemap %s, got %q", pagemap, profile.Image)
		}
	}
}
