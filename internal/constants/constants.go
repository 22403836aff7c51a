package constants

import "time"

var SearchConfig = struct {
	ResultsPerPage int64
	RequestTimeout time.Duration
	MinPages       int
	MaxPages       int
	MinDelay       int
	MaxDelay       int
}{
	ResultsPerPage: 10, // Google's maximum per call on the free tier
	RequestTimeout: 30 * time.Second,
	MinPages:       1,
	MaxPages:       10,
	MinDelay:       0,
	MaxDelay:       60,
}

var ExtractConfig = struct {
	MaxDescriptionRunes int
}{
	MaxDescriptionRunes: 300,
}

var EnrichConfig = struct {
	Concurrency    int
	RequestTimeout time.Duration
	UserAgent      string
}{
	Concurrency:    3,
	RequestTimeout: 15 * time.Second,
	UserAgent:      "Mozilla/5.0 (compatible; LinkdinScrapper/1.0)",
}

var ExportConfig = struct {
	FilenamePrefix  string
	TimestampLayout string
}{
	FilenamePrefix:  "LinkedIn_Profiles_",
	TimestampLayout: "20060102_150405",
}

var DisplayConfig = struct {
	PreviewCount int
	NameWidth    int
	TitleWidth   int
	LinkWidth    int
	DescWidth    int
}{
	PreviewCount: 3,
	NameWidth:    24,
	TitleWidth:   32,
	LinkWidth:    60,
	DescWidth:    120,
}
