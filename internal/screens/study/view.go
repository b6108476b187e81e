package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexi/internal/ui/components"
	"github.com/abhisek/lexi/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.mode == modeAdd {
		return s.renderAddForm(width)
	}

	var b strings.Builder

	// Search box, shown while searching or when a filter is active.
	if s.mode == modeSearch || s.state.Query != "" {
		b.WriteString("  " + s.search.View())
		b.WriteString("\n\n")
	}

	view := s.state.View()
	if len(view) == 0 {
		b.WriteString(s.renderEmpty(width))
		return b.String()
	}

	active, _ := s.state.Active()

	// Card face: term on the front, definition and example on the back.
	var face strings.Builder
	if !s.state.Flipped {
		face.WriteString(lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(active.Card.Term))
		face.WriteString("\n\n")
		face.WriteString(theme.Hint.Render("space to reveal"))
	} else {
		face.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(active.Card.Definition))
		if active.Card.Example != "" {
			face.WriteString("\n\n")
			face.WriteString(theme.Hint.Render("“" + active.Card.Example + "”"))
		}
		if len(active.Card.Tags) != 0 {
			face.WriteString("\n\n")
			face.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("# " + strings.Join(active.Card.Tags, "  # ")))
		}
	}

	cardWidth := width - 8
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 20 {
		cardWidth = 20
	}
	card := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(face.String())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))
	b.WriteString("\n\n")

	// Position and known badge.
	status := fmt.Sprintf("%d / %d", s.state.Pos+1, len(view))
	if s.state.ActiveKnown() {
		status += "   " + theme.Correct.Render("✓ known")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(status))
	b.WriteString("\n\n")

	// Known progress over the filtered view.
	p := s.state.Progress()
	bar := components.NewProgressBar(
		fmt.Sprintf("Known %d/%d", p.Known, p.Total),
		float64(p.Pct)/100,
		true,
		cardWidth,
	)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
	}

	return b.String()
}

func (s *StudyScreen) renderEmpty(width int) string {
	msg := "No cards in the deck.\nPress A to add one."
	if s.state.Query != "" {
		msg = fmt.Sprintf("No cards match %q.\nEsc clears the search.", s.state.Query)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

func (s *StudyScreen) renderAddForm(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Add a card"))
	b.WriteString("\n\n")

	var fields strings.Builder
	for i := range s.form {
		fields.WriteString(s.form[i].View())
		fields.WriteString("\n\n")
	}
	if s.notice != "" {
		fields.WriteString(theme.Incorrect.Render(s.notice))
		fields.WriteString("\n")
	}

	formWidth := width - 8
	if formWidth > 64 {
		formWidth = 64
	}
	box := theme.Card.Width(formWidth).Render(fields.String())
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box))

	return b.String()
}
