package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"qa-service/internal/models"
	"qa-service/internal/service"
	"qa-service/internal/store"
)

// --- Structs for Request Binding ---

type CreateQuestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// QuestionResponse is the wire shape of a question.
type QuestionResponse struct {
	QuestionUUID string `json:"question_uuid"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
}

func questionResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{
		QuestionUUID: q.QuestionUUID,
		Title:        q.Title,
		Description:  q.Description,
		CreatedAt:    q.CreatedAt.Format(time.RFC3339),
	}
}

// QuestionHandler handles question-related requests.
type QuestionHandler struct {
	questions service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// CreateQuestion handles POST /question.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questions.CreateQuestion(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, questionResponse(question))
}

// GetQuestions handles GET /questions. Pagination and sorting are optional;
// without them every question is returned, oldest first.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	opts := store.ListOptions{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if pageSizeStr := c.Query("page_size"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
			return
		}
		opts.PageSize = pageSize

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		opts.Page = page
	}

	questions, err := h.questions.GetQuestions(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		response = append(response, questionResponse(&questions[i]))
	}
	c.JSON(http.StatusOK, response)
}

// DeleteQuestion handles DELETE /question/:question_uuid.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.questions.DeleteQuestion(c.Request.Context(), c.Param("question_uuid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
