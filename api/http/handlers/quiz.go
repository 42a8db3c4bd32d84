package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vidyamitra/backend/api/http/presenter"
	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/quiz"
)

type QuizHandler struct {
	useCase quiz.UseCase
}

func NewQuizHandler(useCase quiz.UseCase) *QuizHandler {
	return &QuizHandler{useCase: useCase}
}

type quizRequest struct {
	Topic string `json:"topic"`
}

// Generate produces a ten-question multiple-choice quiz for a topic.
// @Summary Generate a topic quiz
// @Tags    quiz
// @Accept  json
// @Produce json
// @Param   input body quizRequest true "quiz topic"
// @Success 200 {object} quiz.Quiz
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /quiz [post]
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "user not logged in")
	}

	var req quizRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return presenter.Error(c, http.StatusBadRequest, "topic is required")
	}

	q, err := h.useCase.Generate(c.Context(), req.Topic)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrMalformed):
			return presenter.Error(c, http.StatusInternalServerError, "quiz generation returned an invalid result")
		case errors.Is(err, llm.ErrUnavailable):
			return presenter.Error(c, http.StatusInternalServerError, "quiz generation is temporarily unavailable")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to generate quiz")
		}
	}

	return presenter.JSON(c, http.StatusOK, q)
}
