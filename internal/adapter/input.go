package adapter

import (
	"regexp"
	"strings"
)

var controlCharsPattern = regexp.MustCompile(`[\x00-\x1F\x7F]`)

// ParsedLine represents one parsed line of interactive input.
type ParsedLine struct {
	Name string
	Args []string
	Raw  string
}

// IsEmpty reports whether the line held no command at all.
func (pl *ParsedLine) IsEmpty() bool {
	return pl.Name == ""
}

// LineParser converts raw terminal input into command invocations.
type LineParser struct{}

// NewLineParser creates a new LineParser
func NewLineParser() *LineParser {
	return &LineParser{}
}

// ParseLine splits a line into a lowercased command name and its arguments.
func (lp *LineParser) ParseLine(line string) *ParsedLine {
	// Remove control characters
	cleaned := controlCharsPattern.ReplaceAllString(line, " ")

	parts := strings.Fields(cleaned)
	if len(parts) == 0 {
		return &ParsedLine{Raw: strings.TrimSpace(line)}
	}

	return &ParsedLine{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
		Raw:  strings.TrimSpace(cleaned),
	}
}
