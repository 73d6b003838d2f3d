package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetProfile returns the profile, or an empty object before one is saved.
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUsecase.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if profile == nil {
		response.Success(c, http.StatusOK, gin.H{})
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpsertProfile creates or updates the profile.
// PUT /api/v1/profile
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var input entities.UpsertProfileInput
	if !bindJSON(c, &input) {
		return
	}

	profile, err := h.profileUsecase.Upsert(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
