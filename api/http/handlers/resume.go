package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vidyamitra/backend/api/http/presenter"
	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/resume"
)

type ResumeHandler struct {
	pipeline resume.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(pipeline resume.UseCase) *ResumeHandler {
	return &ResumeHandler{pipeline: pipeline, maxBytes: 15 << 20} // 15MB
}

// Upload accepts a resume document, extracts a structured profile from it,
// persists the result and returns the evaluation projection.
// @Summary Upload and process a resume
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file (PDF or DOCX)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "user not logged in")
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	started := time.Now()
	upload, err := h.pipeline.Process(c.Context(), userID, fh.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrDocumentUnreadable):
			return presenter.Error(c, http.StatusInternalServerError, "failed to read the uploaded document")
		case errors.Is(err, llm.ErrMalformed):
			return presenter.Error(c, http.StatusInternalServerError, "resume analysis returned an invalid result")
		case errors.Is(err, llm.ErrUnavailable):
			return presenter.Error(c, http.StatusInternalServerError, "resume analysis is temporarily unavailable")
		case errors.Is(err, resume.ErrPersistenceFailed), errors.Is(err, resume.ErrStoreUnavailable):
			return presenter.Error(c, http.StatusInternalServerError, "failed to save the processed resume")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to process resume")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message":         "Resume processed successfully",
		"data":            upload.Projection,
		"processing_time": time.Since(started).Seconds(),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
