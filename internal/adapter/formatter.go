package adapter

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/util"
)

// ProfileFormatter formats profiles and progress updates for terminal output.
type ProfileFormatter struct{}

// NewProfileFormatter creates a new ProfileFormatter
func NewProfileFormatter() *ProfileFormatter {
	return &ProfileFormatter{}
}

// FormatProgress formats a single progress update emitted during a search.
func (f *ProfileFormatter) FormatProgress(pagesCompleted, maxPages, resultCount int) string {
	return fmt.Sprintf("Fetching pages %d/%d (%d results)", pagesCompleted, maxPages, resultCount)
}

// FormatSummary formats the outcome of a completed search.
func (f *ProfileFormatter) FormatSummary(query string, profiles []*domain.Profile) string {
	if len(profiles) == 0 {
		return "No results found."
	}
	return fmt.Sprintf("Found %d profiles for %q", len(profiles), query)
}

// FormatPreview formats the first few profiles of a result set.
func (f *ProfileFormatter) FormatPreview(profiles []*domain.Profile) string {
	if len(profiles) == 0 {
		return ""
	}

	count := len(profiles)
	if count > constants.DisplayConfig.PreviewCount {
		count = constants.DisplayConfig.PreviewCount
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Preview (first %d):\n", count))

	for i := 0; i < count; i++ {
		sb.WriteString("\n")
		sb.WriteString(f.FormatProfile(profiles[i], i+1))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatProfile formats one profile as a numbered block.
func (f *ProfileFormatter) FormatProfile(p *domain.Profile, index int) string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d. %s\n", index, p.Name))
	sb.WriteString(fmt.Sprintf("   Title: %s\n", p.Title))
	sb.WriteString(fmt.Sprintf("   Link:  %s\n", p.Link))
	sb.WriteString(fmt.Sprintf("   About: %s", util.TruncateString(p.Description, constants.DisplayConfig.DescWidth)))

	if p.HasImage() {
		sb.WriteString(fmt.Sprintf("\n   Image: %s", util.TruncateString(p.Image, constants.DisplayConfig.LinkWidth)))
	}

	return sb.String()
}

// FormatTable formats profiles as an aligned table.
func (f *ProfileFormatter) FormatTable(profiles []*domain.Profile) string {
	if len(profiles) == 0 {
		return "No profiles loaded. Run a search first."
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "#\tNAME\tTITLE\tLINK")
	for i, p := range profiles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i+1,
			util.TruncateString(p.Name, constants.DisplayConfig.NameWidth),
			util.TruncateString(p.Title, constants.DisplayConfig.TitleWidth),
			util.TruncateString(p.Link, constants.DisplayConfig.LinkWidth))
	}
	w.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

// FormatSettings formats the current search settings.
func (f *ProfileFormatter) FormatSettings(pages, delaySeconds int, siteFilter string) string {
	var sb strings.Builder
	sb.WriteString("Current settings:\n")
	sb.WriteString(fmt.Sprintf("  pages: %d\n", pages))
	sb.WriteString(fmt.Sprintf("  delay: %ds\n", delaySeconds))
	sb.WriteString(fmt.Sprintf("  site:  %s", siteFilter))
	return sb.String()
}

// FormatError formats error message
func (f *ProfileFormatter) FormatError(message string) string {
	return fmt.Sprintf("Error: %s", message)
}
