package models

import "time"

type Submission struct {
	QuestionID     int    `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
}

type SubmissionResult struct {
	QuestionID    int    `json:"questionId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
}

type ScoreResult struct {
	Score   int                `json:"score"`
	Total   int                `json:"total"`
	Results []SubmissionResult `json:"results"`
}

// ScoreRecord is a graded submission kept in the recent results history.
type ScoreRecord struct {
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Answered int       `json:"answered"`
	GradedAt time.Time `json:"graded_at"`
}
