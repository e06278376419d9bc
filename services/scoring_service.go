package services

import (
	"context"
	"log"
	"time"

	"flatquiz/models"
	"flatquiz/store"
)

type ScoringService struct {
	store     store.QuestionStore
	history   ResultHistory
	publisher EventPublisher
}

func NewScoringService(store store.QuestionStore, history ResultHistory, publisher EventPublisher) *ScoringService {
	return &ScoringService{
		store:     store,
		history:   history,
		publisher: publisher,
	}
}

type SubmitRequest struct {
	Answers []models.Submission `json:"answers" binding:"required"`
}

// Submit grades each submission against the stored correct answer. Submissions
// for unknown questions are skipped without a result entry, and Total is
// always the size of the stored collection.
func (s *ScoringService) Submit(ctx context.Context, submissions []models.Submission) models.ScoreResult {
	questions := s.store.LoadAll()

	byID := make(map[int]*models.Question, len(questions))
	for i := range questions {
		if _, seen := byID[questions[i].ID]; !seen {
			byID[questions[i].ID] = &questions[i]
		}
	}

	result := models.ScoreResult{
		Total:   len(questions),
		Results: []models.SubmissionResult{},
	}
	for _, sub := range submissions {
		question, ok := byID[sub.QuestionID]
		if !ok {
			continue
		}

		correctAnswer, _ := question.CorrectAnswer()
		isCorrect := sub.SelectedAnswer == correctAnswer.Text
		if isCorrect {
			result.Score++
		}

		result.Results = append(result.Results, models.SubmissionResult{
			QuestionID:    sub.QuestionID,
			Correct:       isCorrect,
			CorrectAnswer: correctAnswer.Text,
		})
	}

	s.record(ctx, models.ScoreRecord{
		Score:    result.Score,
		Total:    result.Total,
		Answered: len(result.Results),
		GradedAt: time.Now().UTC(),
	})

	return result
}

func (s *ScoringService) record(ctx context.Context, rec models.ScoreRecord) {
	if s.history != nil {
		if err := s.history.Record(ctx, rec); err != nil {
			log.Printf("Failed to record score in history: %v", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, EventQuizSubmitted, rec); err != nil {
			log.Printf("Failed to publish %s event: %v", EventQuizSubmitted, err)
		}
	}
}

// Recent returns up to limit graded submissions, newest first.
func (s *ScoringService) Recent(ctx context.Context, limit int) ([]models.ScoreRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Recent(ctx, limit)
}
