package domain

// NotAvailable is the placeholder substituted when a profile field cannot be
// determined from the raw search result.
const NotAvailable = "N/A"

// Profile is one normalized public profile extracted from a search result.
// All five fields are always populated: extraction substitutes NotAvailable
// (or an empty URL) rather than leaving a field unset. Profiles carry no
// identity beyond their position in the result sequence.
type Profile struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// HasImage reports whether an image URL was resolved for this profile.
func (p *Profile) HasImage() bool {
	return p != nil && p.Image != ""
}
