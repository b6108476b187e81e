package quiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/abhisek/lexi/internal/deck"
	qz "github.com/abhisek/lexi/internal/quiz"
	"github.com/abhisek/lexi/internal/router"
	"github.com/abhisek/lexi/internal/screen"
	"github.com/abhisek/lexi/internal/ui/components"
	"github.com/abhisek/lexi/internal/ui/layout"
)

// QuizScreen implements screen.Screen for quiz mode.
type QuizScreen struct {
	store   *deck.Store
	session *qz.Session
	mc      components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen with a freshly generated quiz. The quiz
// always draws from the full deck, never a filtered view.
func New(store *deck.Store) *QuizScreen {
	s := &QuizScreen{store: store}
	s.startQuiz()
	return s
}

// startQuiz generates questions and replaces the session. A finished
// session is discarded here, never resumed.
func (s *QuizScreen) startQuiz() {
	questions := qz.Make(s.store.Cards(), qz.DefaultQuestionCount, s.store.Rand())
	s.session = qz.NewSession(uuid.New().String(), questions)
	s.syncQuestion()
}

// syncQuestion rebuilds the option component for the current question,
// restoring any recorded answer.
func (s *QuizScreen) syncQuestion() {
	q := s.session.CurrentQuestion()
	if q == nil {
		s.mc = components.MultiChoice{}
		return
	}
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	if chosen, ok := s.session.Answer(q.ID); ok {
		s.mc.Chosen = chosen
		s.mc.Cursor = chosen
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.ShowingResults {
		return []layout.KeyHint{
			{Key: "N", Description: "New quiz"},
			{Key: "Esc", Description: "Back to study"},
		}
	}
	if len(s.session.Questions) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to study"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "F", Description: "Finish"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.session.ShowingResults {
		return s.handleResultsKey(kmsg)
	}
	return s.handleQuestionKey(kmsg)
}

func (s *QuizScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n", "N":
		s.startQuiz()
		return s, nil
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.session.CurrentQuestion()
	if q == nil {
		// Empty quiz — nothing to answer.
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		s.choose(s.mc.Cursor)
		return s, nil
	case "1", "2", "3", "4":
		s.choose(int(msg.String()[0] - '1'))
		return s, nil
	case "right", "n":
		s.session.Advance()
		s.syncQuestion()
		return s, nil
	case "left", "p":
		s.session.Retreat()
		s.syncQuestion()
		return s, nil
	case "f", "F":
		s.session.ShowResults()
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

// choose records an answer for the current question.
func (s *QuizScreen) choose(idx int) {
	q := s.session.CurrentQuestion()
	if q == nil || idx < 0 || idx >= len(q.Options) {
		return
	}
	s.session.RecordAnswer(q.ID, idx)
	s.mc.Chosen = idx
	s.mc.Cursor = idx
}
