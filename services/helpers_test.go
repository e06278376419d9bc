package services

import (
	"context"
	"sync"

	"flatquiz/models"
)

// memStore is an in-memory QuestionStore that counts writes.
type memStore struct {
	questions []models.Question
	saves     int
	failSave  bool
}

func newMemStore(questions ...models.Question) *memStore {
	return &memStore{questions: cloneQuestions(questions)}
}

func (s *memStore) LoadAll() []models.Question {
	return cloneQuestions(s.questions)
}

func (s *memStore) SaveAll(questions []models.Question) bool {
	if s.failSave {
		return false
	}
	s.saves++
	s.questions = cloneQuestions(questions)
	return true
}

func cloneQuestions(questions []models.Question) []models.Question {
	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		q.Answers = append([]models.Answer(nil), q.Answers...)
		out = append(out, q)
	}
	return out
}

type publishedEvent struct {
	eventType string
	payload   interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType: eventType, payload: payload})
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.eventType)
	}
	return out
}

type fakeHistory struct {
	records []models.ScoreRecord
}

func (h *fakeHistory) Record(ctx context.Context, rec models.ScoreRecord) error {
	h.records = append([]models.ScoreRecord{rec}, h.records...)
	return nil
}

func (h *fakeHistory) Recent(ctx context.Context, limit int) ([]models.ScoreRecord, error) {
	if limit > len(h.records) {
		limit = len(h.records)
	}
	return h.records[:limit], nil
}

func singleQuestion() models.Question {
	return models.Question{
		ID:       1,
		Question: "Q",
		Answers: []models.Answer{
			{Text: "A", Correct: true},
			{Text: "B", Correct: false},
		},
	}
}
