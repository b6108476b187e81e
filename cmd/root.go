package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexi",
	Short: "Vocabulary flashcards for your terminal",
	Long:  "Lexi — terminal flashcard trainer: browse a vocabulary deck in study mode, then test yourself with generated multiple-choice quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for shuffles and quiz generation (0 = random)")

	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(versionCmd)
}
