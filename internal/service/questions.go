package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"qa-service/internal/models"
	"qa-service/internal/store"
)

// QuestionService exposes question operations to the HTTP layer.
type QuestionService interface {
	CreateQuestion(ctx context.Context, title, description string) (*models.Question, error)
	GetQuestions(ctx context.Context, opts store.ListOptions) ([]models.Question, error)
	DeleteQuestion(ctx context.Context, questionUUID string) error
}

type questionService struct {
	questions store.QuestionStore
	logger    *zap.Logger
}

// NewQuestionService creates a QuestionService backed by the given store.
func NewQuestionService(questions store.QuestionStore, logger *zap.Logger) QuestionService {
	return &questionService{questions: questions, logger: logger}
}

func (s *questionService) CreateQuestion(ctx context.Context, title, description string) (*models.Question, error) {
	question, err := s.questions.CreateQuestion(ctx, title, description)
	if err != nil {
		s.logger.Error("unexpected error on create question", zap.Error(err))
		return nil, ErrInternal
	}
	return question, nil
}

func (s *questionService) GetQuestions(ctx context.Context, opts store.ListOptions) ([]models.Question, error) {
	questions, err := s.questions.GetQuestions(ctx, opts)
	if err != nil {
		s.logger.Error("failed to read questions", zap.Error(err))
		return nil, ErrInternal
	}
	return questions, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, questionUUID string) error {
	if err := s.questions.DeleteQuestion(ctx, questionUUID); err != nil {
		s.logger.Error("error on deleting question", zap.Error(err))
		if errors.Is(err, store.ErrInvalidID) {
			return &BadRequestError{Message: err.Error()}
		}
		return ErrInternal
	}
	return nil
}
