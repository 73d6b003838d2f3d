package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

type SkillHandler struct {
	skillUsecase *usecases.SkillUsecase
}

func NewSkillHandler(skillUsecase *usecases.SkillUsecase) *SkillHandler {
	return &SkillHandler{skillUsecase: skillUsecase}
}

// ListSkills returns visible skill groups.
// GET /api/v1/skills
func (h *SkillHandler) ListSkills(c *gin.Context) {
	items, err := h.skillUsecase.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAllSkills returns every skill group.
// GET /api/v1/skills/all
func (h *SkillHandler) ListAllSkills(c *gin.Context) {
	items, err := h.skillUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateSkill creates a skill group.
// POST /api/v1/skills
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var input entities.CreateSkillInput
	if !bindJSON(c, &input) {
		return
	}

	skill, err := h.skillUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, skill)
}

// UpdateSkill merges the supplied fields onto a skill group.
// PUT /api/v1/skills/:id
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, ok := pathID(c, "skill")
	if !ok {
		return
	}
	var input entities.UpdateSkillInput
	if !bindJSON(c, &input) {
		return
	}

	skill, err := h.skillUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		resourceError(c, "skill", err)
		return
	}
	response.Success(c, http.StatusOK, skill)
}

// DeleteSkill removes a skill group.
// DELETE /api/v1/skills/:id
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c, "skill")
	if !ok {
		return
	}
	if err := h.skillUsecase.Delete(c.Request.Context(), id); err != nil {
		resourceError(c, "skill", err)
		return
	}
	response.Message(c, http.StatusOK, "Skill deleted")
}

// ReorderSkills stores the submitted display order.
// PUT /api/v1/skills/reorder
func (h *SkillHandler) ReorderSkills(c *gin.Context) {
	var input entities.ReorderInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.skillUsecase.Reorder(c.Request.Context(), input.Items); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Skills reordered")
}
