package domain

import "encoding/json"

// SearchResult is one raw item returned by the search API, annotated by the
// retriever with its page of origin and its running 1-based position across
// all fetched pages. The extractor reads it; nothing mutates it afterwards.
type SearchResult struct {
	Title   string
	Snippet string
	Link    string
	Pagemap json.RawMessage

	PageNumber  int
	ResultIndex int
}
