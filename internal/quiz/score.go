package quiz

// Score is a quiz result: how many answers matched the correct option
// out of how many questions.
type Score struct {
	Correct int
	Total   int
}

// Score tallies the session's recorded answers. Unanswered questions
// count against the total but never as correct.
func (s *Session) Score() Score {
	score := Score{Total: len(s.Questions)}
	for _, q := range s.Questions {
		if chosen, ok := s.Answers[q.ID]; ok && chosen == q.CorrectIndex {
			score.Correct++
		}
	}
	return score
}
