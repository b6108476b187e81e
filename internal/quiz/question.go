package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/lexi/internal/deck"
)

// DefaultQuestionCount is the number of questions requested for a
// standard quiz.
const DefaultQuestionCount = 5

// maxDistractors is the number of wrong options drawn per question.
const maxDistractors = 3

// Question is a single multiple-choice question.
type Question struct {
	// ID is unique within one quiz.
	ID string

	// Prompt presents the definition as the clue.
	Prompt string

	// Options holds the shuffled answer choices, the correct term among
	// them exactly once.
	Options []string

	// CorrectIndex is the position of the correct term within Options.
	CorrectIndex int

	// Explanation is the source card's example, empty if it has none.
	Explanation string
}

// Make derives a multiple-choice quiz from the full card collection.
// It is a pure function of its inputs: the same cards, count, and rng
// state always produce the same questions.
//
// Each selected card becomes one question whose wrong options are terms
// drawn from the other cards. Small collections degrade rather than
// fail: fewer cards than n means fewer questions, fewer than four
// distinct terms means fewer options per question, and an empty
// collection means an empty quiz.
func Make(cards []deck.Card, n int, rng *rand.Rand) []Question {
	if len(cards) == 0 {
		return nil
	}
	if n <= 0 {
		n = DefaultQuestionCount
	}

	selected := slices.Clone(cards)
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if n < len(selected) {
		selected = selected[:n]
	}

	questions := make([]Question, 0, len(selected))
	for ordinal, c := range selected {
		// Distractor pool: terms of every card whose term differs from
		// this card's. Duplicate terms in the deck stay duplicated here.
		pool := make([]string, 0, len(cards)-1)
		for _, other := range cards {
			if other.Term != c.Term {
				pool = append(pool, other.Term)
			}
		}
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		if len(pool) > maxDistractors {
			pool = pool[:maxDistractors]
		}

		options := append([]string{c.Term}, pool...)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, Question{
			ID:           fmt.Sprintf("q%d-%s", ordinal, c.Term),
			Prompt:       fmt.Sprintf("Which term matches this definition?\n\n%q", c.Definition),
			Options:      options,
			CorrectIndex: slices.Index(options, c.Term),
			Explanation:  c.Example,
		})
	}
	return questions
}
