package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/deck"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the seed deck",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List seed cards (optionally filtered by tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")

		cards, err := deck.SeedCards()
		if err != nil {
			return fmt.Errorf("load seed deck: %w", err)
		}

		if tag != "" {
			var filtered []deck.Card
			for _, c := range cards {
				for _, t := range c.Tags {
					if strings.EqualFold(t, tag) {
						filtered = append(filtered, c)
						break
					}
				}
			}
			if len(filtered) == 0 {
				return fmt.Errorf("no cards found for tag %q", tag)
			}
			cards = filtered
		}

		// Header.
		fmt.Printf("%-16s  %-50s  %s\n", "Term", "Definition", "Tags")
		fmt.Println(strings.Repeat("─", 90))

		for _, c := range cards {
			def := c.Definition
			if len(def) > 50 {
				def = def[:47] + "..."
			}
			fmt.Printf("%-16s  %-50s  %s\n", c.Term, def, strings.Join(c.Tags, ", "))
		}

		fmt.Printf("\n%d cards\n", len(cards))
		return nil
	},
}

func init() {
	deckListCmd.Flags().String("tag", "", "Filter by tag (e.g. adjective)")

	deckCmd.AddCommand(deckListCmd)
}
