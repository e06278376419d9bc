package services

import "errors"

var (
	ErrNotFound        = errors.New("question not found")
	ErrPersistence     = errors.New("failed to save questions")
	ErrHistoryDisabled = errors.New("result history is not configured")
)
