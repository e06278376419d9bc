package services

import (
	"context"
	"log"
	"slices"
	"sync"

	"flatquiz/models"
	"flatquiz/store"
)

// QuestionService owns every mutation of the question collection. Mutations
// run one at a time; each still re-reads the store before writing.
type QuestionService struct {
	store     store.QuestionStore
	hub       *Hub
	publisher EventPublisher

	mu sync.Mutex
	// highest id issued or deleted by this process; keeps a deleted tail id
	// from being handed out again
	lastID int
}

func NewQuestionService(store store.QuestionStore, hub *Hub, publisher EventPublisher) *QuestionService {
	return &QuestionService{
		store:     store,
		hub:       hub,
		publisher: publisher,
	}
}

type QuestionRequest struct {
	Question string          `json:"question" binding:"required"`
	Answers  []AnswerRequest `json:"answers" binding:"required,min=1,dive"`
}

type AnswerRequest struct {
	Text    string `json:"text" binding:"required"`
	Correct bool   `json:"correct"`
}

func (r *QuestionRequest) answers() []models.Answer {
	answers := make([]models.Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, models.Answer{Text: a.Text, Correct: a.Correct})
	}
	return answers
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req *QuestionRequest) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.store.LoadAll()
	id := max(store.NextID(questions), s.lastID+1)
	question := models.Question{
		ID:       id,
		Question: req.Question,
		Answers:  req.answers(),
	}
	questions = append(questions, question)

	if !s.store.SaveAll(questions) {
		return nil, ErrPersistence
	}
	s.lastID = id

	s.announce(ctx, EventQuestionCreated, question)
	return &question, nil
}

// UpdateQuestion replaces the stored question wholesale; answers are not merged.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id int, req *QuestionRequest) (*models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.store.LoadAll()
	i := indexOf(questions, id)
	if i < 0 {
		return nil, ErrNotFound
	}

	questions[i] = models.Question{
		ID:       id,
		Question: req.Question,
		Answers:  req.answers(),
	}

	if !s.store.SaveAll(questions) {
		return nil, ErrPersistence
	}

	question := questions[i]
	s.announce(ctx, EventQuestionUpdated, question)
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.store.LoadAll()
	i := indexOf(questions, id)
	if i < 0 {
		return ErrNotFound
	}

	questions = slices.Delete(questions, i, i+1)
	if !s.store.SaveAll(questions) {
		return ErrPersistence
	}
	s.lastID = max(s.lastID, id)

	s.announce(ctx, EventQuestionDeleted, map[string]int{"id": id})
	return nil
}

func (s *QuestionService) announce(ctx context.Context, eventType string, payload interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(eventType, payload)
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
			log.Printf("Failed to publish %s event: %v", eventType, err)
		}
	}
}
