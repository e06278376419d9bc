package store

import (
	"errors"
	"fmt"
	"log"
	"os"

	"flatquiz/models"
)

// DefaultQuestions is the starter set written to a fresh store.
func DefaultQuestions() []models.Question {
	return []models.Question{
		{
			ID:       1,
			Question: "What is the capital of France?",
			Answers: []models.Answer{
				{Text: "Paris", Correct: true},
				{Text: "London"},
				{Text: "Rome"},
				{Text: "Berlin"},
			},
		},
		{
			ID:       2,
			Question: "Which language runs in a web browser?",
			Answers: []models.Answer{
				{Text: "JavaScript", Correct: true},
				{Text: "Python"},
				{Text: "C++"},
				{Text: "Java"},
			},
		},
		{
			ID:       3,
			Question: "Who painted the Mona Lisa?",
			Answers: []models.Answer{
				{Text: "Leonardo da Vinci", Correct: true},
				{Text: "Vincent Van Gogh"},
				{Text: "Pablo Picasso"},
				{Text: "Claude Monet"},
			},
		},
	}
}

// SeedIfMissing writes DefaultQuestions when the store file does not exist
// yet. An existing file, even an empty or corrupt one, is left alone.
func SeedIfMissing(s *FileStore) (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat questions file: %w", err)
	}

	if !s.SaveAll(DefaultQuestions()) {
		return false, errors.New("failed to write default questions")
	}
	log.Printf("Seeded %s with %d default questions", s.path, len(DefaultQuestions()))
	return true, nil
}
