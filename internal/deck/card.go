package deck

import "strings"

// Card is a single vocabulary flashcard.
type Card struct {
	Term       string   `json:"term"`
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// ParseTags splits a comma-separated tag string into trimmed tags,
// dropping empty entries.
func ParseTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(csv, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// matchText returns the card's searchable text: term, definition,
// example, and tags concatenated and lowercased.
func (c Card) matchText() string {
	parts := []string{c.Term, c.Definition, c.Example}
	parts = append(parts, c.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Matches reports whether the card matches a search query. The query is
// trimmed and lowercased; an empty query matches every card.
func (c Card) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(c.matchText(), q)
}
