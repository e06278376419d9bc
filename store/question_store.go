package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"flatquiz/models"
)

// QuestionStore is the persistence boundary for the question collection.
type QuestionStore interface {
	LoadAll() []models.Question
	SaveAll(questions []models.Question) bool
}

// FileStore keeps the whole collection as one JSON array on disk. Every call
// goes back to the file; nothing is cached between calls.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the collection and reports read or parse failures. A missing
// file is an empty collection.
func (s *FileStore) Load() ([]models.Question, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Question{}, nil
		}
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse questions file: %w", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}

// LoadAll is Load with failures logged and replaced by an empty collection.
func (s *FileStore) LoadAll() []models.Question {
	questions, err := s.Load()
	if err != nil {
		log.Printf("Error reading questions: %v", err)
		return []models.Question{}
	}
	return questions
}

// SaveAll replaces the persisted collection. The payload is written to a
// sibling .tmp file, synced, then renamed over the target.
func (s *FileStore) SaveAll(questions []models.Question) bool {
	if err := s.save(questions); err != nil {
		log.Printf("Error writing questions: %v", err)
		return false
	}
	return true
}

func (s *FileStore) save(questions []models.Question) error {
	if questions == nil {
		questions = []models.Question{}
	}
	payload, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open temp file: %w", err)
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("write temp file: %w", err)
		}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace questions file: %w", err)
	}
	return nil
}

// NextID returns 1 for an empty collection, otherwise the highest id plus one.
func NextID(questions []models.Question) int {
	maxID := 0
	for _, q := range questions {
		if q.ID > maxID {
			maxID = q.ID
		}
	}
	return maxID + 1
}
