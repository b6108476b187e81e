package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexi/internal/router"
	"github.com/abhisek/lexi/internal/screen"
	quizscreen "github.com/abhisek/lexi/internal/screens/quiz"
	studyscreen "github.com/abhisek/lexi/internal/screens/study"
	stud "github.com/abhisek/lexi/internal/study"
	"github.com/abhisek/lexi/internal/ui/components"
	"github.com/abhisek/lexi/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	state *stud.State
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the shared study state.
func New(state *stud.State) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY CARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: studyscreen.New(state)}
			}
		}},
		{Label: "TAKE A QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(state.Store)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		state: state,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("LEXI"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("vocabulary flashcards for your terminal"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%d cards in the deck, %d marked known", h.state.Store.Len(), h.state.KnownCount())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	return b.String()
}
