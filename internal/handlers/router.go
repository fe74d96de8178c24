package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"qa-service/internal/service"
)

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(r *gin.Engine, questions service.QuestionService, answers service.AnswerService, db *gorm.DB) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	questionHandler := NewQuestionHandler(questions)
	r.POST("/question", questionHandler.CreateQuestion)
	r.GET("/questions", questionHandler.GetQuestions)
	r.DELETE("/question/:question_uuid", questionHandler.DeleteQuestion)

	answerHandler := NewAnswerHandler(answers)
	r.POST("/answer", answerHandler.CreateAnswer)
	r.GET("/answers/:question_uuid", answerHandler.GetAnswers)
	r.DELETE("/answer/:answer_uuid", answerHandler.DeleteAnswer)

	healthHandler := NewHealthHandler(db)
	r.GET("/health", healthHandler.Health)
}
