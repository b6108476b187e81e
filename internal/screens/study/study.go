package study

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexi/internal/router"
	"github.com/abhisek/lexi/internal/screen"
	quizscreen "github.com/abhisek/lexi/internal/screens/quiz"
	stud "github.com/abhisek/lexi/internal/study"
	"github.com/abhisek/lexi/internal/ui/components"
	"github.com/abhisek/lexi/internal/ui/layout"
)

// mode is the study screen's input mode.
type mode int

const (
	modeBrowse mode = iota // navigating cards
	modeSearch             // typing in the search box
	modeAdd                // filling the add-card form
)

// addFieldCount is the number of inputs on the add-card form:
// term, definition, example, tags.
const addFieldCount = 4

// StudyScreen implements screen.Screen for study mode.
type StudyScreen struct {
	state *stud.State

	mode   mode
	search components.TextInput

	form      [addFieldCount]components.TextInput
	formFocus int

	// notice is a one-shot status line shown after an operation.
	notice string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen over the shared study state.
func New(state *stud.State) *StudyScreen {
	s := &StudyScreen{
		state:  state,
		search: components.NewTextInput("", "Search term, definition, tags...", 60),
	}
	s.search.SetValue(state.Query)
	s.resetForm()
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear search"},
		}
	case modeAdd:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Navigate"},
			{Key: "Space", Description: "Flip"},
			{Key: "K", Description: "Known"},
			{Key: "/", Description: "Search"},
			{Key: "A", Description: "Add"},
			{Key: "D", Description: "Delete"},
			{Key: "S", Description: "Shuffle"},
			{Key: "R", Description: "Reset"},
			{Key: "Q", Description: "Quiz"},
		}
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}

	// Non-key messages (cursor blink) go to whichever input is live.
	switch s.mode {
	case modeSearch:
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	case modeAdd:
		var cmd tea.Cmd
		s.form[s.formFocus], cmd = s.form[s.formFocus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.notice = ""

	switch s.mode {
	case modeSearch:
		return s.handleSearchKey(msg)
	case modeAdd:
		return s.handleAddKey(msg)
	}
	return s.handleBrowseKey(msg)
}

func (s *StudyScreen) handleBrowseKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		s.state.Navigate(-1)
	case "right", "l":
		s.state.Navigate(1)
	case "space", "enter":
		s.state.ToggleFlip()
	case "K", "k":
		s.state.SetKnown(!s.state.ActiveKnown())
	case "/":
		s.mode = modeSearch
		return s, s.search.Focus()
	case "A", "a":
		s.mode = modeAdd
		s.resetForm()
		s.formFocus = 0
		return s, s.form[0].Focus()
	case "D", "d":
		if s.state.DeleteActive() {
			s.notice = "Card deleted"
		}
	case "S", "s":
		s.state.Shuffle()
		s.notice = "Deck shuffled — known flags cleared"
	case "R", "r":
		s.state.Reset()
		s.search.SetValue("")
		s.notice = "Deck reset to seed"
	case "Q", "q":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizscreen.New(s.state.Store)}
		}
	}
	return s, nil
}

func (s *StudyScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.mode = modeBrowse
		s.search.Blur()
		return s, nil
	case "esc":
		s.mode = modeBrowse
		s.search.SetValue("")
		s.search.Blur()
		s.state.SetSearch("")
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	// Filter live as the query changes.
	s.state.SetSearch(s.search.Value())
	return s, cmd
}

func (s *StudyScreen) handleAddKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowse
		s.form[s.formFocus].Blur()
		return s, nil
	case "tab", "down":
		return s, s.focusField((s.formFocus + 1) % addFieldCount)
	case "shift+tab", "up":
		return s, s.focusField((s.formFocus + addFieldCount - 1) % addFieldCount)
	case "enter":
		if s.formFocus < addFieldCount-1 {
			return s, s.focusField(s.formFocus + 1)
		}
		return s.saveCard()
	}

	var cmd tea.Cmd
	s.form[s.formFocus], cmd = s.form[s.formFocus].Update(msg)
	return s, cmd
}

// saveCard submits the add form. A blank term or definition is
// silently ignored, per the store's contract.
func (s *StudyScreen) saveCard() (screen.Screen, tea.Cmd) {
	added := s.state.AddCard(
		s.form[0].Value(),
		s.form[1].Value(),
		s.form[2].Value(),
		s.form[3].Value(),
	)
	if added {
		s.mode = modeBrowse
		s.form[s.formFocus].Blur()
		s.notice = "Card added"
		return s, nil
	}
	s.notice = "Term and definition are required"
	return s, s.focusField(0)
}

func (s *StudyScreen) focusField(i int) tea.Cmd {
	s.form[s.formFocus].Blur()
	s.formFocus = i
	return s.form[i].Focus()
}

func (s *StudyScreen) resetForm() {
	s.form[0] = components.NewTextInput("Term", "e.g. laconic", 40)
	s.form[1] = components.NewTextInput("Definition", "What does it mean?", 120)
	s.form[2] = components.NewTextInput("Example (optional)", "Use it in a sentence", 120)
	s.form[3] = components.NewTextInput("Tags (comma-separated)", "adjective, speech", 60)
	s.formFocus = 0
}
