package models

type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
}

// CorrectAnswer returns the first answer flagged correct.
func (q *Question) CorrectAnswer() (Answer, bool) {
	for _, a := range q.Answers {
		if a.Correct {
			return a, true
		}
	}
	return Answer{}, false
}
