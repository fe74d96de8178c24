package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qa-service/internal/models"
	"qa-service/internal/service"
)

type CreateAnswerRequest struct {
	QuestionUUID string `json:"question_uuid" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// AnswerResponse is the wire shape of an answer.
type AnswerResponse struct {
	AnswerUUID   string `json:"answer_uuid"`
	QuestionUUID string `json:"question_uuid"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
}

func answerResponse(a *models.Answer) AnswerResponse {
	return AnswerResponse{
		AnswerUUID:   a.AnswerUUID,
		QuestionUUID: a.QuestionUUID,
		Content:      a.Content,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

// AnswerHandler handles answer-related requests.
type AnswerHandler struct {
	answers service.AnswerService
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(answers service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

// CreateAnswer handles POST /answer.
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answers.CreateAnswer(c.Request.Context(), req.QuestionUUID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, answerResponse(answer))
}

// GetAnswers handles GET /answers/:question_uuid.
func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	answers, err := h.answers.GetAnswers(c.Request.Context(), c.Param("question_uuid"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]AnswerResponse, 0, len(answers))
	for i := range answers {
		response = append(response, answerResponse(&answers[i]))
	}
	c.JSON(http.StatusOK, response)
}

// DeleteAnswer handles DELETE /answer/:answer_uuid.
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	if err := h.answers.DeleteAnswer(c.Request.Context(), c.Param("answer_uuid")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer deleted successfully"})
}
