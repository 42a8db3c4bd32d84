package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vidyamitra/backend/api/http/presenter"
	"github.com/vidyamitra/backend/pkg/resume"
)

type ProfileHandler struct {
	store resume.ProfileStore
}

func NewProfileHandler(store resume.ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Get returns the caller's full stored candidate profile.
// @Summary Get candidate profile
// @Tags    profile
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "user not logged in")
	}
	if h.store == nil {
		return presenter.Error(c, http.StatusInternalServerError, "profile store unavailable")
	}

	profile, err := h.store.GetFullCandidateProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, resume.ErrProfileNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"data":    json.RawMessage(profile),
	})
}

// callerID extracts the authenticated user id set by the session middleware.
func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	return uuid.Parse(raw)
}
