package quiz

// Session tracks one run through a generated quiz: the question
// sequence, the current question pointer, the recorded answers, and
// whether the results view has been reached.
//
// Results is a terminal state for a session. A new quiz gets a new
// Session; a finished one is discarded, never rewound.
type Session struct {
	// ID identifies this quiz run.
	ID string

	// Questions is the generated sequence, in selection order.
	Questions []Question

	// Current is the index of the question being shown.
	Current int

	// Answers maps question ID to the selected option index. A missing
	// key means unanswered.
	Answers map[string]int

	// ShowingResults is true once the session has reached the results
	// view.
	ShowingResults bool
}

// NewSession creates a session over the given questions. An empty
// question slice is valid and renders as a "no questions" state.
func NewSession(id string, questions []Question) *Session {
	return &Session{
		ID:        id,
		Questions: questions,
		Answers:   make(map[string]int),
	}
}

// CurrentQuestion returns the question at the pointer, nil if the quiz
// is empty or the pointer is out of range.
func (s *Session) CurrentQuestion() *Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// RecordAnswer stores the selected option for a question, overwriting
// any earlier answer.
func (s *Session) RecordAnswer(questionID string, optionIndex int) {
	s.Answers[questionID] = optionIndex
}

// Answer returns the recorded option for a question and whether one
// exists.
func (s *Session) Answer(questionID string) (int, bool) {
	i, ok := s.Answers[questionID]
	return i, ok
}

// Advance moves to the next question, or into the results view when
// already on the last question.
func (s *Session) Advance() {
	if s.Current >= len(s.Questions)-1 {
		s.ShowingResults = true
		return
	}
	s.Current++
}

// Retreat moves back one question, clamped at the first. It never
// leaves the results view.
func (s *Session) Retreat() {
	if s.ShowingResults {
		return
	}
	if s.Current > 0 {
		s.Current--
	}
}

// ShowResults jumps straight to the results view. Only meaningful once
// at least one answer has been recorded.
func (s *Session) ShowResults() {
	if len(s.Answers) == 0 {
		return
	}
	s.ShowingResults = true
}
