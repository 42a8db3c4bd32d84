package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vidyamitra/backend/api/http/presenter"
	"github.com/vidyamitra/backend/pkg/domainswitch"
	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/resume"
)

type DomainSwitchHandler struct {
	useCase domainswitch.UseCase
}

func NewDomainSwitchHandler(useCase domainswitch.UseCase) *DomainSwitchHandler {
	return &DomainSwitchHandler{useCase: useCase}
}

type domainSwitchRequest struct {
	TargetDomain string `json:"target_domain"`
}

// Analyze advises the caller on switching to a different career domain.
// @Summary Analyze a domain switch
// @Tags    domain-switch
// @Accept  json
// @Produce json
// @Param   input body domainSwitchRequest true "target domain"
// @Success 200 {object} domainswitch.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /domain_switch [post]
func (h *DomainSwitchHandler) Analyze(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "user not logged in")
	}

	var req domainSwitchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.TargetDomain) == "" {
		return presenter.Error(c, http.StatusBadRequest, "target_domain is required")
	}

	analysis, err := h.useCase.Analyze(c.Context(), userID, req.TargetDomain)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrProfileNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, llm.ErrMalformed):
			return presenter.Error(c, http.StatusInternalServerError, "domain analysis returned an invalid result")
		case errors.Is(err, llm.ErrUnavailable):
			return presenter.Error(c, http.StatusInternalServerError, "domain analysis is temporarily unavailable")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to analyze domain switch")
		}
	}

	return presenter.JSON(c, http.StatusOK, analysis)
}
