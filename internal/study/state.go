package study

import (
	"github.com/abhisek/lexi/internal/deck"
)

// State tracks the runtime state of study mode: the backing store, the
// active search query, the position within the filtered view, the
// front/back flip, and the known-card map keyed by stable index.
//
// Every mutation goes through one of the intent methods below; the
// presentation layer only reads.
type State struct {
	// Store is the authoritative card collection.
	Store *deck.Store

	// Query is the active search filter.
	Query string

	// Pos is the position within the filtered view.
	Pos int

	// Flipped is true when the card's back (definition side) is showing.
	Flipped bool

	// Known maps a card's stable index to its known flag.
	Known map[int]bool
}

// NewState creates study state over the given store.
func NewState(store *deck.Store) *State {
	return &State{
		Store: store,
		Known: make(map[int]bool),
	}
}

// View returns the filtered view for the current query.
func (s *State) View() []IndexedCard {
	return FilterCards(s.Store.Cards(), s.Query)
}

// Active returns the card at the current position, falling back to the
// first card if the position is out of range. The second return is
// false when the view is empty.
func (s *State) Active() (IndexedCard, bool) {
	view := s.View()
	if len(view) == 0 {
		return IndexedCard{}, false
	}
	if s.Pos < 0 || s.Pos >= len(view) {
		return view[0], true
	}
	return view[s.Pos], true
}

// SetPosition clamps the position into the filtered view and resets
// the flip to the front side. Ignored when the view is empty.
func (s *State) SetPosition(i int) {
	view := s.View()
	if len(view) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(view)-1 {
		i = len(view) - 1
	}
	s.Pos = i
	s.Flipped = false
}

// Navigate moves the position by delta, clamped to the view bounds.
func (s *State) Navigate(delta int) {
	s.SetPosition(s.Pos + delta)
}

// ToggleFlip flips between the card's front and back.
func (s *State) ToggleFlip() {
	s.Flipped = !s.Flipped
}

// SetSearch changes the query and re-clamps the position into the new
// view.
func (s *State) SetSearch(query string) {
	s.Query = query
	s.SetPosition(s.Pos)
}

// SetKnown sets or clears the known flag on the active card. Ignored
// when the view is empty.
func (s *State) SetKnown(known bool) {
	active, ok := s.Active()
	if !ok {
		return
	}
	if known {
		s.Known[active.Index] = true
	} else {
		delete(s.Known, active.Index)
	}
}

// ActiveKnown reports whether the active card is marked known.
func (s *State) ActiveKnown() bool {
	active, ok := s.Active()
	return ok && s.Known[active.Index]
}

// AddCard appends a new card to the store. Tags arrive as a
// comma-separated string. Returns whether a card was added.
func (s *State) AddCard(term, definition, example, tagsCSV string) bool {
	return s.Store.Add(term, definition, example, deck.ParseTags(tagsCSV))
}

// DeleteActive removes the active card from the store and renumbers
// the known map so flags on the remaining cards survive. Ignored when
// the view is empty.
func (s *State) DeleteActive() bool {
	active, ok := s.Active()
	if !ok {
		return false
	}
	if !s.Store.DeleteAt(active.Index) {
		return false
	}
	s.Known = renumberKnown(s.Known, active.Index)
	s.SetPosition(s.Pos)
	if len(s.View()) == 0 {
		s.Pos = 0
		s.Flipped = false
	}
	return true
}

// Shuffle reorders the deck at random. Stable indices stop meaning
// anything after a reorder, so every known flag is cleared and the
// position returns to the start.
func (s *State) Shuffle() {
	s.Store.Shuffle()
	s.Known = make(map[int]bool)
	s.Pos = 0
	s.Flipped = false
}

// Reset restores the seed deck and clears all derived study state.
func (s *State) Reset() {
	s.Store.ResetToSeed()
	s.Known = make(map[int]bool)
	s.Query = ""
	s.Pos = 0
	s.Flipped = false
}

// Progress summarizes known counts over the current filtered view.
func (s *State) Progress() Progress {
	return computeProgress(s.View(), s.Known)
}

// KnownCount returns how many cards in the whole deck are marked known.
func (s *State) KnownCount() int {
	n := 0
	for _, v := range s.Known {
		if v {
			n++
		}
	}
	return n
}
