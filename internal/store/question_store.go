package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qa-service/internal/models"
)

// ListOptions controls pagination and ordering for question listings. The
// zero value returns every record in creation order.
type ListOptions struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// QuestionStore is the persistence interface for questions.
type QuestionStore interface {
	CreateQuestion(ctx context.Context, title, description string) (*models.Question, error)
	GetQuestions(ctx context.Context, opts ListOptions) ([]models.Question, error)
	DeleteQuestion(ctx context.Context, questionUUID string) error
}

type gormQuestionStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewQuestionStore creates a GORM-backed QuestionStore.
func NewQuestionStore(db *gorm.DB, logger *zap.Logger) QuestionStore {
	return &gormQuestionStore{db: db, logger: logger}
}

func (s *gormQuestionStore) CreateQuestion(ctx context.Context, title, description string) (*models.Question, error) {
	question := models.Question{
		Title:       title,
		Description: description,
	}

	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info("created question", zap.String("question_uuid", question.QuestionUUID))
	return &question, nil
}

// Sort fields are allow-listed; anything else falls back to created_at.
var questionSortFields = map[string]string{
	"created_at": "created_at",
	"title":      "title",
}

func (s *gormQuestionStore) GetQuestions(ctx context.Context, opts ListOptions) ([]models.Question, error) {
	sortField, ok := questionSortFields[strings.ToLower(opts.SortBy)]
	if !ok {
		sortField = "created_at"
	}
	sortOrder := strings.ToLower(opts.SortOrder)
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	query := s.db.WithContext(ctx).Model(&models.Question{}).Order(sortField + " " + sortOrder)

	if opts.PageSize > 0 {
		page := opts.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * opts.PageSize).Limit(opts.PageSize)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	return questions, nil
}

func (s *gormQuestionStore) DeleteQuestion(ctx context.Context, questionUUID string) error {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return invalidIDError(err.Error())
	}

	if err := s.db.WithContext(ctx).Where("question_uuid = ?", id.String()).Delete(&models.Question{}).Error; err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	s.logger.Info("deleted question", zap.String("question_uuid", id.String()))
	return nil
}
