package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

type ExperienceHandler struct {
	experienceUsecase *usecases.ExperienceUsecase
}

func NewExperienceHandler(experienceUsecase *usecases.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{experienceUsecase: experienceUsecase}
}

// ListExperience returns visible experience entries.
// GET /api/v1/experience
func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	items, err := h.experienceUsecase.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAllExperience returns every experience entry.
// GET /api/v1/experience/all
func (h *ExperienceHandler) ListAllExperience(c *gin.Context) {
	items, err := h.experienceUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateExperience creates an experience entry.
// POST /api/v1/experience
func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var input entities.CreateExperienceInput
	if !bindJSON(c, &input) {
		return
	}

	experience, err := h.experienceUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, experience)
}

// UpdateExperience merges the supplied fields onto an experience entry.
// PUT /api/v1/experience/:id
func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}
	var input entities.UpdateExperienceInput
	if !bindJSON(c, &input) {
		return
	}

	experience, err := h.experienceUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		resourceError(c, "experience", err)
		return
	}
	response.Success(c, http.StatusOK, experience)
}

// DeleteExperience removes an experience entry.
// DELETE /api/v1/experience/:id
func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}
	if err := h.experienceUsecase.Delete(c.Request.Context(), id); err != nil {
		resourceError(c, "experience", err)
		return
	}
	response.Message(c, http.StatusOK, "Experience deleted")
}

// ReorderExperience stores the submitted display order.
// PUT /api/v1/experience/reorder
func (h *ExperienceHandler) ReorderExperience(c *gin.Context) {
	var input entities.ReorderInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.experienceUsecase.Reorder(c.Request.Context(), input.Items); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Experience reordered")
}
