package services

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"flatquiz/models"
	"flatquiz/store"
)

func newRequest(text string, answers ...AnswerRequest) *QuestionRequest {
	return &QuestionRequest{Question: text, Answers: answers}
}

func TestCreateQuestion_AssignsIDs(t *testing.T) {
	s := newMemStore()
	service := NewQuestionService(s, nil, nil)
	ctx := context.Background()

	first, err := service.CreateQuestion(ctx, newRequest("First", AnswerRequest{Text: "A", Correct: true}))
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := service.CreateQuestion(ctx, newRequest("Second", AnswerRequest{Text: "B", Correct: true}))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if s.saves != 2 || len(s.questions) != 2 {
		t.Errorf("Expected 2 saves and 2 stored questions, got %d and %d", s.saves, len(s.questions))
	}
}

func TestCreateQuestion_ContinuesFromExistingIDs(t *testing.T) {
	s := newMemStore(models.Question{ID: 3}, models.Question{ID: 7})
	service := NewQuestionService(s, nil, nil)

	q, err := service.CreateQuestion(context.Background(), newRequest("Next", AnswerRequest{Text: "x"}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.ID != 8 {
		t.Errorf("Expected id 8, got %d", q.ID)
	}
}

func TestCreateQuestion_PersistenceFailure(t *testing.T) {
	s := newMemStore()
	s.failSave = true
	publisher := &fakePublisher{}
	service := NewQuestionService(s, nil, publisher)

	_, err := service.CreateQuestion(context.Background(), newRequest("Q", AnswerRequest{Text: "A"}))
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("Expected ErrPersistence, got %v", err)
	}
	if len(publisher.types()) != 0 {
		t.Errorf("Expected no events after failed save, got %v", publisher.types())
	}
}

func TestUpdateQuestion_ReplacesWholesale(t *testing.T) {
	s := newMemStore(singleQuestion())
	service := NewQuestionService(s, nil, nil)

	updated, err := service.UpdateQuestion(context.Background(), 1, newRequest("Q2", AnswerRequest{Text: "C", Correct: true}))
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := models.Question{ID: 1, Question: "Q2", Answers: []models.Answer{{Text: "C", Correct: true}}}
	if !reflect.DeepEqual(*updated, want) {
		t.Errorf("Expected %+v, got %+v", want, *updated)
	}
	if !reflect.DeepEqual(s.questions, []models.Question{want}) {
		t.Errorf("stored collection not replaced: %+v", s.questions)
	}
}

func TestUpdateQuestion_NotFoundPerformsNoWrite(t *testing.T) {
	s := newMemStore(singleQuestion())
	service := NewQuestionService(s, nil, nil)

	_, err := service.UpdateQuestion(context.Background(), 42, newRequest("Q", AnswerRequest{Text: "A"}))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if s.saves != 0 {
		t.Errorf("Expected no writes, got %d", s.saves)
	}
}

func TestDeleteQuestion(t *testing.T) {
	s := newMemStore(singleQuestion(), models.Question{ID: 2, Question: "Two"})
	service := NewQuestionService(s, nil, nil)

	if err := service.DeleteQuestion(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(s.questions) != 1 || s.questions[0].ID != 2 {
		t.Errorf("Expected only question 2 to remain, got %+v", s.questions)
	}

	if err := service.DeleteQuestion(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
	if s.saves != 1 {
		t.Errorf("Expected 1 write, got %d", s.saves)
	}
}

func TestDeleteThenCreate_NeverReusesID(t *testing.T) {
	testCases := []struct {
		name     string
		deleteID int
	}{
		{"middle", 2},
		{"highest", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMemStore(models.Question{ID: 1}, models.Question{ID: 2}, models.Question{ID: 3})
			service := NewQuestionService(s, nil, nil)
			ctx := context.Background()

			if err := service.DeleteQuestion(ctx, tc.deleteID); err != nil {
				t.Fatalf("delete: %v", err)
			}
			q, err := service.CreateQuestion(ctx, newRequest("New", AnswerRequest{Text: "A"}))
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if q.ID == tc.deleteID {
				t.Errorf("deleted id %d was reused", tc.deleteID)
			}
			if q.ID != 4 {
				t.Errorf("Expected id 4, got %d", q.ID)
			}
		})
	}
}

func TestQuestionService_PublishesEvents(t *testing.T) {
	publisher := &fakePublisher{}
	service := NewQuestionService(newMemStore(), nil, publisher)
	ctx := context.Background()

	q, err := service.CreateQuestion(ctx, newRequest("Q", AnswerRequest{Text: "A", Correct: true}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.UpdateQuestion(ctx, q.ID, newRequest("Q!", AnswerRequest{Text: "A", Correct: true})); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := service.DeleteQuestion(ctx, q.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []string{EventQuestionCreated, EventQuestionUpdated, EventQuestionDeleted}
	if got := publisher.types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected events %v, got %v", want, got)
	}
}

func TestQuestionService_FileStoreRoundTrip(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "questions.json"))
	service := NewQuestionService(fs, nil, nil)
	query := NewQueryService(fs)
	ctx := context.Background()

	created, err := service.CreateQuestion(ctx, newRequest("Capital?", AnswerRequest{Text: "Paris", Correct: true}, AnswerRequest{Text: "Rome"}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh store on the same path sees the write.
	reloaded := store.NewFileStore(fs.Path()).LoadAll()
	if len(reloaded) != 1 || !reflect.DeepEqual(reloaded[0], *created) {
		t.Fatalf("unexpected persisted questions: %+v", reloaded)
	}

	public := query.ListPublic()
	if len(public) != 1 || len(public[0].Answers) != 2 {
		t.Fatalf("unexpected public view: %+v", public)
	}
}
