package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qa-service/internal/database"
	"qa-service/internal/models"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
// Each test gets its own database, named after a random UUID so parallel
// tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Question{}, &models.Answer{}))

	t.Cleanup(func() {
		require.NoError(t, database.Close(db))
	})
	return db
}

func newTestStores(t *testing.T) (QuestionStore, AnswerStore, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	logger := zap.NewNop()
	return NewQuestionStore(db, logger), NewAnswerStore(db, logger), db
}
