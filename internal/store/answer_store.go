package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qa-service/internal/database"
	"qa-service/internal/models"
)

// AnswerStore is the persistence interface for answers.
type AnswerStore interface {
	CreateAnswer(ctx context.Context, questionUUID, content string) (*models.Answer, error)
	GetAnswers(ctx context.Context, questionUUID string) ([]models.Answer, error)
	DeleteAnswer(ctx context.Context, answerUUID string) error
}

type gormAnswerStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAnswerStore creates a GORM-backed AnswerStore.
func NewAnswerStore(db *gorm.DB, logger *zap.Logger) AnswerStore {
	return &gormAnswerStore{db: db, logger: logger}
}

func (s *gormAnswerStore) CreateAnswer(ctx context.Context, questionUUID, content string) (*models.Answer, error) {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, invalidIDError(err.Error())
	}

	answer := models.Answer{
		QuestionUUID: id.String(),
		Content:      content,
	}

	if err := s.db.WithContext(ctx).Create(&answer).Error; err != nil {
		// The referenced question does not exist.
		if database.IsForeignKeyViolation(err) {
			return nil, invalidIDError(fmt.Sprintf("question %s not found", id))
		}
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}

	s.logger.Info("created answer",
		zap.String("answer_uuid", answer.AnswerUUID),
		zap.String("question_uuid", answer.QuestionUUID))
	return &answer, nil
}

func (s *gormAnswerStore) GetAnswers(ctx context.Context, questionUUID string) ([]models.Answer, error) {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, invalidIDError(err.Error())
	}

	var answers []models.Answer
	if err := s.db.WithContext(ctx).
		Where("question_uuid = ?", id.String()).
		Order("created_at asc").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}
	return answers, nil
}

func (s *gormAnswerStore) DeleteAnswer(ctx context.Context, answerUUID string) error {
	id, err := uuid.Parse(answerUUID)
	if err != nil {
		return invalidIDError(err.Error())
	}

	if err := s.db.WithContext(ctx).Where("answer_uuid = ?", id.String()).Delete(&models.Answer{}).Error; err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}

	s.logger.Info("deleted answer", zap.String("answer_uuid", id.String()))
	return nil
}
