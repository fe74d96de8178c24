package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qa-service/internal/models"
	"qa-service/internal/store"
)

// MockQuestionStore is a mock implementation of store.QuestionStore.
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) CreateQuestion(ctx context.Context, title, description string) (*models.Question, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionStore) GetQuestions(ctx context.Context, opts store.ListOptions) ([]models.Question, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQuestionStore) DeleteQuestion(ctx context.Context, questionUUID string) error {
	args := m.Called(ctx, questionUUID)
	return args.Error(0)
}

// MockAnswerStore is a mock implementation of store.AnswerStore.
type MockAnswerStore struct {
	mock.Mock
}

func (m *MockAnswerStore) CreateAnswer(ctx context.Context, questionUUID, content string) (*models.Answer, error) {
	args := m.Called(ctx, questionUUID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

func (m *MockAnswerStore) GetAnswers(ctx context.Context, questionUUID string) ([]models.Answer, error) {
	args := m.Called(ctx, questionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Answer), args.Error(1)
}

func (m *MockAnswerStore) DeleteAnswer(ctx context.Context, answerUUID string) error {
	args := m.Called(ctx, answerUUID)
	return args.Error(0)
}
