package deck

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Store owns the ordered card collection. Positions in the collection
// are the stable indices that known-status and deletion refer to.
type Store struct {
	cards []Card
	seed  []Card
	rng   *rand.Rand
}

// NewStore creates a store seeded with the given cards. The rng drives
// every shuffle the store performs, so tests can pass a fixed seed.
func NewStore(seed []Card, rng *rand.Rand) *Store {
	return &Store{
		cards: slices.Clone(seed),
		seed:  slices.Clone(seed),
		rng:   rng,
	}
}

// Cards returns the collection in order. Callers must not mutate it.
func (s *Store) Cards() []Card {
	return s.cards
}

// Len returns the number of cards in the collection.
func (s *Store) Len() int {
	return len(s.cards)
}

// At returns the card at the given stable index.
func (s *Store) At(i int) (Card, bool) {
	if i < 0 || i >= len(s.cards) {
		return Card{}, false
	}
	return s.cards[i], true
}

// Add appends a new card. A term or definition that is empty after
// trimming makes the whole call a no-op; it returns whether a card
// was added.
func (s *Store) Add(term, definition, example string, tags []string) bool {
	term = strings.TrimSpace(term)
	definition = strings.TrimSpace(definition)
	if term == "" || definition == "" {
		return false
	}
	s.cards = append(s.cards, Card{
		Term:       term,
		Definition: definition,
		Example:    strings.TrimSpace(example),
		Tags:       tags,
	})
	return true
}

// DeleteAt removes the card at the given stable index. Out-of-range
// indices are a no-op; it returns whether a card was removed.
func (s *Store) DeleteAt(i int) bool {
	if i < 0 || i >= len(s.cards) {
		return false
	}
	s.cards = slices.Delete(s.cards, i, i+1)
	return true
}

// Shuffle permutes the collection uniformly at random. Stable indices
// are meaningless afterwards, so callers must clear index-keyed state.
func (s *Store) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// ResetToSeed replaces the collection with the original seed deck.
func (s *Store) ResetToSeed() {
	s.cards = slices.Clone(s.seed)
}

// Rand exposes the store's random source for quiz generation, so the
// whole app draws from a single seedable stream.
func (s *Store) Rand() *rand.Rand {
	return s.rng
}
