package services

import "context"

const (
	EventQuestionCreated = "question.created"
	EventQuestionUpdated = "question.updated"
	EventQuestionDeleted = "question.deleted"
	EventQuizSubmitted   = "quiz.submitted"
)

// EventPublisher delivers domain events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}
