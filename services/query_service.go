package services

import (
	"slices"

	"flatquiz/models"
	"flatquiz/store"
)

type QueryService struct {
	store store.QuestionStore
}

func NewQueryService(store store.QuestionStore) *QueryService {
	return &QueryService{store: store}
}

type PublicQuestion struct {
	ID       int            `json:"id"`
	Question string         `json:"question"`
	Answers  []PublicAnswer `json:"answers"`
}

type PublicAnswer struct {
	Text string `json:"text"`
	// Don't include Correct for quiz takers
}

// ListPublic returns every stored question with correctness flags removed.
func (s *QueryService) ListPublic() []PublicQuestion {
	questions := s.store.LoadAll()

	public := make([]PublicQuestion, 0, len(questions))
	for _, q := range questions {
		answers := make([]PublicAnswer, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, PublicAnswer{Text: a.Text})
		}
		public = append(public, PublicQuestion{
			ID:       q.ID,
			Question: q.Question,
			Answers:  answers,
		})
	}
	return public
}

// LoadAllAdmin returns the full collection ordered by id.
func (s *QueryService) LoadAllAdmin() []models.Question {
	questions := s.store.LoadAll()
	slices.SortStableFunc(questions, func(a, b models.Question) int {
		return a.ID - b.ID
	})
	return questions
}

func (s *QueryService) GetQuestion(id int) (*models.Question, error) {
	questions := s.store.LoadAll()
	if i := indexOf(questions, id); i >= 0 {
		return &questions[i], nil
	}
	return nil, ErrNotFound
}

func indexOf(questions []models.Question, id int) int {
	return slices.IndexFunc(questions, func(q models.Question) bool {
		return q.ID == id
	})
}
