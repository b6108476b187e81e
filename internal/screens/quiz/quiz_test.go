package quiz

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexi/internal/deck"
	"github.com/abhisek/lexi/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStore() *deck.Store {
	cards := []deck.Card{
		{Term: "ephemeral", Definition: "short-lived"},
		{Term: "candid", Definition: "frank"},
		{Term: "tenacious", Definition: "persistent"},
		{Term: "pragmatic", Definition: "practical"},
		{Term: "ambiguous", Definition: "open to more than one interpretation"},
	}
	return deck.NewStore(cards, rand.New(rand.NewPCG(7, 11)))
}

func TestQuizScreen_StartsWithQuestions(t *testing.T) {
	s := New(testStore())

	if len(s.session.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(s.session.Questions))
	}
	if s.session.Current != 0 {
		t.Errorf("Current = %d, want 0", s.session.Current)
	}
	if s.session.ShowingResults {
		t.Error("expected question phase at start")
	}
}

func TestQuizScreen_AnswerByNumber(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	qs := scr.(*QuizScreen)

	q := qs.session.CurrentQuestion()
	chosen, ok := qs.session.Answer(q.ID)
	if !ok {
		t.Fatal("expected a recorded answer")
	}
	if chosen != 1 {
		t.Errorf("chosen = %d, want 1", chosen)
	}
	if qs.mc.Chosen != 1 {
		t.Errorf("component Chosen = %d, want 1", qs.mc.Chosen)
	}
}

func TestQuizScreen_AnswerByEnter(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)

	q := qs.session.CurrentQuestion()
	chosen, ok := qs.session.Answer(q.ID)
	if !ok {
		t.Fatal("expected a recorded answer")
	}
	if chosen != 1 {
		t.Errorf("chosen = %d, want 1", chosen)
	}
}

func TestQuizScreen_AnswerOverwrite(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('3'))
	qs = scr.(*QuizScreen)

	q := qs.session.CurrentQuestion()
	chosen, _ := qs.session.Answer(q.ID)
	if chosen != 2 {
		t.Errorf("chosen = %d, want 2 after overwrite", chosen)
	}
}

func TestQuizScreen_NavigationRestoresAnswer(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(specialKey(tea.KeyRight))
	qs = scr.(*QuizScreen)

	if qs.session.Current != 1 {
		t.Fatalf("Current = %d, want 1", qs.session.Current)
	}
	if qs.mc.Chosen != -1 {
		t.Errorf("fresh question Chosen = %d, want -1", qs.mc.Chosen)
	}

	scr, _ = qs.Update(specialKey(tea.KeyLeft))
	qs = scr.(*QuizScreen)
	if qs.session.Current != 0 {
		t.Fatalf("Current = %d, want 0", qs.session.Current)
	}
	if qs.mc.Chosen != 2 {
		t.Errorf("restored Chosen = %d, want 2", qs.mc.Chosen)
	}
}

func TestQuizScreen_AdvancePastLastShowsResults(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	qs := s
	for i := 0; i < len(qs.session.Questions); i++ {
		scr, _ = qs.Update(keyPress('1'))
		qs = scr.(*QuizScreen)
		scr, _ = qs.Update(specialKey(tea.KeyRight))
		qs = scr.(*QuizScreen)
	}

	if !qs.session.ShowingResults {
		t.Error("expected results after advancing past the last question")
	}
}

func TestQuizScreen_FinishEarly(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('f'))
	qs = scr.(*QuizScreen)

	if !qs.session.ShowingResults {
		t.Error("expected results after f with at least one answer")
	}
}

func TestQuizScreen_FinishRequiresAnswer(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('f'))
	qs := scr.(*QuizScreen)

	if qs.session.ShowingResults {
		t.Error("expected f to be ignored with no answers recorded")
	}
}

func TestQuizScreen_NewQuizFromResults(t *testing.T) {
	s := New(testStore())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('f'))
	qs = scr.(*QuizScreen)

	oldID := qs.session.ID
	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)

	if qs.session.ShowingResults {
		t.Error("expected question phase after starting a new quiz")
	}
	if qs.session.ID == oldID {
		t.Error("expected a fresh session ID")
	}
	if len(qs.session.Answers) != 0 {
		t.Errorf("expected no answers in new session, got %d", len(qs.session.Answers))
	}
}

func TestQuizScreen_SmallDeck(t *testing.T) {
	cards := []deck.Card{
		{Term: "ephemeral", Definition: "short-lived"},
		{Term: "candid", Definition: "frank"},
	}
	store := deck.NewStore(cards, rand.New(rand.NewPCG(1, 2)))
	s := New(store)

	if len(s.session.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(s.session.Questions))
	}
	for _, q := range s.session.Questions {
		if len(q.Options) != 2 {
			t.Errorf("len(Options) = %d, want 2", len(q.Options))
		}
	}
}

func TestQuizScreen_EmptyDeck(t *testing.T) {
	store := deck.NewStore(nil, rand.New(rand.NewPCG(1, 2)))
	s := New(store)

	if len(s.session.Questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(s.session.Questions))
	}

	// Keys other than esc are ignored.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)
	if len(qs.session.Answers) != 0 {
		t.Error("expected no answers on an empty quiz")
	}

	if s.View(80, 24) == "" {
		t.Error("expected non-empty empty-deck view")
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := New(testStore())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	qs := scr.(*QuizScreen)
	scr, _ = qs.Update(keyPress('f'))
	qs = scr.(*QuizScreen)
	if qs.View(80, 24) == "" {
		t.Error("expected non-empty results view")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := New(testStore())
	if len(s.KeyHints()) == 0 {
		t.Error("expected question-phase key hints")
	}

	s.session.RecordAnswer(s.session.Questions[0].ID, 0)
	s.session.ShowResults()
	if len(s.KeyHints()) != 2 {
		t.Errorf("expected 2 results-phase hints, got %d", len(s.KeyHints()))
	}
}
