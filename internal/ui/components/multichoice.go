package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexi/internal/ui/theme"
)

// optionLabels are the prefixes shown before each option.
var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders a multiple-choice question. The chosen answer is
// only marked, not judged, until Reveal is set — quiz results arrive at
// the end, not per question.
type MultiChoice struct {
	Prompt       string
	Options      []string
	CorrectIndex int

	// Cursor is the currently highlighted option.
	Cursor int

	// Chosen is the recorded answer index, -1 when unanswered.
	Chosen int

	// Reveal colors the correct and incorrect options.
	Reveal bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       0,
		Chosen:       -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. Choosing is the owning screen's job so it
// can record the answer in its session.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		cursor := "  "
		if i == m.Cursor && !m.Reveal {
			cursor = "▸ "
		}
		marker := " "
		if i == m.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", cursor, marker, label, opt)

		switch {
		case m.Reveal && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Reveal && i == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == m.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the chosen answer is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Chosen >= 0 && m.Chosen == m.CorrectIndex
}
