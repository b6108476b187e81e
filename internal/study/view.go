package study

import "github.com/abhisek/lexi/internal/deck"

// IndexedCard pairs a card with its stable index — its position in the
// authoritative store at the time the view was computed. The stable
// index is what known-status and deletion refer to, so the visible
// (filtered) list can change without corrupting either.
type IndexedCard struct {
	Index int
	Card  deck.Card
}

// FilterCards returns the order-preserving subsequence of cards whose
// term, definition, example, or tags contain the query as a
// case-insensitive substring. An empty query returns the full deck.
func FilterCards(cards []deck.Card, query string) []IndexedCard {
	view := make([]IndexedCard, 0, len(cards))
	for i, c := range cards {
		if c.Matches(query) {
			view = append(view, IndexedCard{Index: i, Card: c})
		}
	}
	return view
}
