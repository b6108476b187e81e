package home

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexi/internal/deck"
	"github.com/abhisek/lexi/internal/router"
	stud "github.com/abhisek/lexi/internal/study"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testState() *stud.State {
	cards := []deck.Card{
		{Term: "ephemeral", Definition: "short-lived"},
		{Term: "candid", Definition: "frank"},
	}
	return stud.NewState(deck.NewStore(cards, rand.New(rand.NewPCG(1, 2))))
}

func TestHomeScreen_SelectStudy(t *testing.T) {
	h := New(testState())

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from selecting STUDY CARDS")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg")
	}
}

func TestHomeScreen_SelectQuiz(t *testing.T) {
	h := New(testState())

	scr, _ := h.Update(keyPress('j'))
	hh := scr.(*HomeScreen)
	_, cmd := hh.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from selecting TAKE A QUIZ")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(testState())
	h.state.SetKnown(true)

	view := h.View(80, 24)
	if !strings.Contains(view, "LEXI") {
		t.Error("expected title in view")
	}
	if !strings.Contains(view, "2 cards in the deck, 1 marked known") {
		t.Errorf("expected deck stats in view, got:\n%s", view)
	}
}
