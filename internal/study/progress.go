package study

import "math"

// Progress summarizes known-card counts over a filtered view.
type Progress struct {
	Total int
	Known int
	Pct   int
}

// computeProgress counts how many cards in the view are marked known.
// The percentage divisor is floored at 1 so an empty view yields 0%.
func computeProgress(view []IndexedCard, known map[int]bool) Progress {
	p := Progress{Total: len(view)}
	for _, ic := range view {
		if known[ic.Index] {
			p.Known++
		}
	}
	divisor := p.Total
	if divisor < 1 {
		divisor = 1
	}
	p.Pct = int(math.Round(float64(p.Known) / float64(divisor) * 100))
	return p
}

// renumberKnown remaps stable-index keys after the card at deleted was
// removed: the deleted entry is dropped and every key above it shifts
// down by one.
func renumberKnown(known map[int]bool, deleted int) map[int]bool {
	remapped := make(map[int]bool, len(known))
	for k, v := range known {
		switch {
		case k == deleted:
			// dropped
		case k > deleted:
			remapped[k-1] = v
		default:
			remapped[k] = v
		}
	}
	return remapped
}
