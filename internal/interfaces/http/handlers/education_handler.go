package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

type EducationHandler struct {
	educationUsecase *usecases.EducationUsecase
}

func NewEducationHandler(educationUsecase *usecases.EducationUsecase) *EducationHandler {
	return &EducationHandler{educationUsecase: educationUsecase}
}

// ListEducation returns visible education entries.
// GET /api/v1/education
func (h *EducationHandler) ListEducation(c *gin.Context) {
	items, err := h.educationUsecase.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAllEducation returns every education entry.
// GET /api/v1/education/all
func (h *EducationHandler) ListAllEducation(c *gin.Context) {
	items, err := h.educationUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateEducation creates an education entry.
// POST /api/v1/education
func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var input entities.CreateEducationInput
	if !bindJSON(c, &input) {
		return
	}

	education, err := h.educationUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, education)
}

// UpdateEducation merges the supplied fields onto an education entry.
// PUT /api/v1/education/:id
func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	id, ok := pathID(c, "education")
	if !ok {
		return
	}
	var input entities.UpdateEducationInput
	if !bindJSON(c, &input) {
		return
	}

	education, err := h.educationUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		resourceError(c, "education", err)
		return
	}
	response.Success(c, http.StatusOK, education)
}

// DeleteEducation removes an education entry.
// DELETE /api/v1/education/:id
func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, ok := pathID(c, "education")
	if !ok {
		return
	}
	if err := h.educationUsecase.Delete(c.Request.Context(), id); err != nil {
		resourceError(c, "education", err)
		return
	}
	response.Message(c, http.StatusOK, "Education deleted")
}

// ReorderEducation stores the submitted display order.
// PUT /api/v1/education/reorder
func (h *EducationHandler) ReorderEducation(c *gin.Context) {
	var input entities.ReorderInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.educationUsecase.Reorder(c.Request.Context(), input.Items); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Education reordered")
}
