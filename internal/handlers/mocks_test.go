package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"qa-service/internal/models"
	"qa-service/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockQuestionService is a mock implementation of service.QuestionService.
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, title, description string) (*models.Question, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionService) GetQuestions(ctx context.Context, opts store.ListOptions) ([]models.Question, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, questionUUID string) error {
	args := m.Called(ctx, questionUUID)
	return args.Error(0)
}

// MockAnswerService is a mock implementation of service.AnswerService.
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) CreateAnswer(ctx context.Context, questionUUID, content string) (*models.Answer, error) {
	args := m.Called(ctx, questionUUID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

func (m *MockAnswerService) GetAnswers(ctx context.Context, questionUUID string) ([]models.Answer, error) {
	args := m.Called(ctx, questionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Answer), args.Error(1)
}

func (m *MockAnswerService) DeleteAnswer(ctx context.Context, answerUUID string) error {
	args := m.Called(ctx, answerUUID)
	return args.Error(0)
}
