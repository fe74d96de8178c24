package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"qa-service/internal/models"
	"qa-service/internal/store"
)

// AnswerService exposes answer operations to the HTTP layer.
type AnswerService interface {
	CreateAnswer(ctx context.Context, questionUUID, content string) (*models.Answer, error)
	GetAnswers(ctx context.Context, questionUUID string) ([]models.Answer, error)
	DeleteAnswer(ctx context.Context, answerUUID string) error
}

type answerService struct {
	answers store.AnswerStore
	logger  *zap.Logger
}

// NewAnswerService creates an AnswerService backed by the given store.
func NewAnswerService(answers store.AnswerStore, logger *zap.Logger) AnswerService {
	return &answerService{answers: answers, logger: logger}
}

func (s *answerService) CreateAnswer(ctx context.Context, questionUUID, content string) (*models.Answer, error) {
	answer, err := s.answers.CreateAnswer(ctx, questionUUID, content)
	if err != nil {
		s.logger.Error("error on create answer", zap.Error(err))
		if errors.Is(err, store.ErrInvalidID) {
			return nil, &BadRequestError{Message: err.Error()}
		}
		return nil, ErrInternal
	}
	return answer, nil
}

func (s *answerService) GetAnswers(ctx context.Context, questionUUID string) ([]models.Answer, error) {
	answers, err := s.answers.GetAnswers(ctx, questionUUID)
	if err != nil {
		s.logger.Error("error on get answers", zap.Error(err))
		if errors.Is(err, store.ErrInvalidID) {
			return nil, &BadRequestError{Message: err.Error()}
		}
		return nil, ErrInternal
	}
	return answers, nil
}

func (s *answerService) DeleteAnswer(ctx context.Context, answerUUID string) error {
	if err := s.answers.DeleteAnswer(ctx, answerUUID); err != nil {
		s.logger.Error("error on delete answer", zap.Error(err))
		if errors.Is(err, store.ErrInvalidID) {
			return &BadRequestError{Message: err.Error()}
		}
		return ErrInternal
	}
	return nil
}
