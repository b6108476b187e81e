package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexi/internal/ui/components"
	"github.com/abhisek/lexi/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.session.ShowingResults {
		return s.renderResults(width)
	}
	if len(s.session.Questions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No questions — the deck is empty.\nAdd some cards first.")
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	total := len(s.session.Questions)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.session.Current+1, total)))
	b.WriteString("\n\n")

	boxWidth := width - 8
	if boxWidth > 72 {
		boxWidth = 72
	}
	box := theme.Card.Width(boxWidth).Render(s.mc.View())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box))
	b.WriteString("\n\n")

	answered := len(s.session.Answers)
	bar := components.NewProgressBar(
		fmt.Sprintf("Answered %d/%d", answered, total),
		float64(answered)/float64(total),
		false,
		boxWidth,
	)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))

	return b.String()
}

func (s *QuizScreen) renderResults(width int) string {
	var b strings.Builder

	score := s.session.Score()
	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Score: %d / %d", score.Correct, score.Total)))
	b.WriteString("\n\n")

	var lines strings.Builder
	for i, q := range s.session.Questions {
		correct := q.Options[q.CorrectIndex]
		chosen, answered := s.session.Answer(q.ID)

		switch {
		case answered && chosen == q.CorrectIndex:
			lines.WriteString(theme.Correct.Render("✓ ") + theme.Body.Render(correct))
		case answered:
			lines.WriteString(theme.Incorrect.Render("✗ ") + theme.Body.Render(correct))
			if chosen >= 0 && chosen < len(q.Options) {
				lines.WriteString(lipgloss.NewStyle().
					Foreground(theme.TextDim).
					Render(fmt.Sprintf("  (you chose %s)", q.Options[chosen])))
			}
		default:
			lines.WriteString(theme.Incorrect.Render("– ") + theme.Body.Render(correct))
			lines.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  (unanswered)"))
		}
		lines.WriteString("\n")

		if q.Explanation != "" {
			lines.WriteString(theme.Hint.Render("   " + q.Explanation))
			lines.WriteString("\n")
		}
		if i < len(s.session.Questions)-1 {
			lines.WriteString("\n")
		}
	}

	boxWidth := width - 8
	if boxWidth > 72 {
		boxWidth = 72
	}
	box := theme.Card.Width(boxWidth).Render(lines.String())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box))

	return b.String()
}
