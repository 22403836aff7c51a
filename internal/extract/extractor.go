package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/util"
)

const (
	sourceSuffix     = " | LinkedIn"
	titleDelimiter   = " - "
	snippetSeparator = " · "
)

var honorificPrefix = regexp.MustCompile(`^(Dr\.?|Mr\.?|Ms\.?|Mrs\.?)\s+`)

// Snippet segments containing one of these (case-insensitive) are treated as
// a professional title when the result heading carries none.
var titleKeywords = []string{
	"manager", "director", "engineer", "analyst", "specialist",
	"coordinator", "executive", "consultant", "senior", "lead",
}

// Extract converts one raw search result into a normalized profile. It is a
// pure function and never fails: missing or malformed sub-fields degrade to
// domain.NotAvailable or an empty URL.
func Extract(raw *domain.SearchResult) *domain.Profile {
	return &domain.Profile{
		Name:        extractName(raw.Title),
		Title:       extractTitle(raw.Title, raw.Snippet),
		Link:        raw.Link,
		Description: cleanDescription(raw.Snippet),
		Image:       extractImage(raw.Pagemap),
	}
}

// extractName reads the person name from a result heading, which usually has
// the shape "Name - Title | LinkedIn".
func extractName(title string) string {
	if title == "" {
		return domain.NotAvailable
	}

	title = strings.ReplaceAll(title, sourceSuffix, "")
	name, _, _ := strings.Cut(title, titleDelimiter)
	name = strings.TrimSpace(name)
	name = honorificPrefix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// extractTitle applies an ordered cascade of rules; the first rule yielding a
// non-empty string wins.
func extractTitle(title, snippet string) string {
	rules := []func() string{
		func() string { return titleFromHeading(title) },
		func() string { return titleFromSnippetKeywords(snippet) },
		func() string { return titleFromLeadingSentence(snippet) },
	}

	for _, rule := range rules {
		if v := rule(); v != "" {
			return v
		}
	}
	return domain.NotAvailable
}

func titleFromHeading(title string) string {
	_, rest, found := strings.Cut(title, titleDelimiter)
	if !found {
		return ""
	}
	rest = strings.ReplaceAll(rest, sourceSuffix, "")
	return strings.TrimSpace(rest)
}

func titleFromSnippetKeywords(snippet string) string {
	for _, segment := range strings.Split(snippet, snippetSeparator) {
		segment = strings.TrimSpace(segment)
		lower := strings.ToLower(segment)
		for _, keyword := range titleKeywords {
			if strings.Contains(lower, keyword) {
				return segment
			}
		}
	}
	return ""
}

func titleFromLeadingSentence(snippet string) string {
	if snippet == "" {
		return ""
	}
	lead, _, _ := strings.Cut(snippet, ".")
	return strings.TrimSpace(lead)
}

// cleanDescription normalizes the snippet text: HTML entities for ampersand
// and non-breaking space become plain characters, whitespace runs collapse to
// single spaces, and anything over the length cap is rune-truncated with an
// ellipsis marker.
func cleanDescription(snippet string) string {
	if snippet == "" {
		return domain.NotAvailable
	}

	snippet = strings.ReplaceAll(snippet, "&amp;", "&")
	snippet = strings.ReplaceAll(snippet, "&nbsp;", " ")
	snippet = util.CollapseWhitespace(snippet)

	return util.TruncateString(snippet, constants.ExtractConfig.MaxDescriptionRunes)
}

type pagemapImage struct {
	Src string `json:"src"`
}

type pagemapData struct {
	CSEImage []pagemapImage   `json:"cse_image"`
	Metatags []map[string]any `json:"metatags"`
}

// extractImage reads an image URL from the result's pagemap metadata,
// preferring the cse_image hint over the page's og:image meta tag. Missing
// keys, empty lists and shape mismatches all mean "no image", never an error.
func extractImage(pagemap json.RawMessage) string {
	if len(pagemap) == 0 {
		return ""
	}

	var pm pagemapData
	if err := json.Unmarshal(pagemap, &pm); err != nil {
		return ""
	}

	if len(pm.CSEImage) > 0 && pm.CSEImage[0].Src != "" {
		return pm.CSEImage[0].Src
	}

	if len(pm.Metatags) > 0 {
		if img, ok := pm.Metatags[0]["og:image"].(string); ok {
			return img
		}
	}

	return ""
}
