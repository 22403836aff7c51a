package domain

import "time"

// Session is the in-memory state of one interactive run: the last query, its
// extracted profiles and the adjustable retrieval settings. Nothing here
// survives process exit.
type Session struct {
	Query     string
	Profiles  []*Profile
	FetchedAt time.Time

	Pages        int
	DelaySeconds int
	SiteFilter   string
}

func NewSession(pages, delaySeconds int, siteFilter string) *Session {
	return &Session{
		Pages:        pages,
		DelaySeconds: delaySeconds,
		SiteFilter:   siteFilter,
	}
}

// SetResults replaces the session's result set with the outcome of a search.
func (s *Session) SetResults(query string, profiles []*Profile) {
	s.Query = query
	s.Profiles = profiles
	s.FetchedAt = time.Now()
}

// HasResults reports whether a previous search left profiles in the session.
func (s *Session) HasResults() bool {
	return s != nil && len(s.Profiles) > 0
}
