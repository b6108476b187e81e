package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/app"
	"github.com/abhisek/lexi/internal/deck"
	"github.com/abhisek/lexi/internal/study"
)

// runApp loads the seed deck, wires the random source, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cards, err := deck.SeedCards()
	if err != nil {
		return fmt.Errorf("load seed deck: %w", err)
	}

	rng, err := newRand(cmd)
	if err != nil {
		return err
	}

	store := deck.NewStore(cards, rng)
	opts := app.Options{
		Study: study.NewState(store),
	}

	return app.Run(opts)
}

// newRand builds the app's single random source. All shuffling and
// quiz generation draws from it, so a fixed --seed reproduces a whole
// session's randomness.
func newRand(cmd *cobra.Command) (*rand.Rand, error) {
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, fmt.Errorf("read seed flag: %w", err)
	}
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil
	}
	return rand.New(rand.NewPCG(seed, seed)), nil
}
