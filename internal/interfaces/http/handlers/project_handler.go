package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

type ProjectHandler struct {
	projectUsecase *usecases.ProjectUsecase
}

func NewProjectHandler(projectUsecase *usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

// ListProjects returns published projects.
// GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	items, err := h.projectUsecase.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAllProjects returns every project.
// GET /api/v1/projects/all
func (h *ProjectHandler) ListAllProjects(c *gin.Context) {
	items, err := h.projectUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateProject creates a project.
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input entities.CreateProjectInput
	if !bindJSON(c, &input) {
		return
	}

	project, err := h.projectUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project)
}

// UpdateProject merges the supplied fields onto a project.
// PUT /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}
	var input entities.UpdateProjectInput
	if !bindJSON(c, &input) {
		return
	}

	project, err := h.projectUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		resourceError(c, "project", err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// DeleteProject removes a project.
// DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "project")
	if !ok {
		return
	}
	if err := h.projectUsecase.Delete(c.Request.Context(), id); err != nil {
		resourceError(c, "project", err)
		return
	}
	response.Message(c, http.StatusOK, "Project deleted")
}

// ReorderProjects stores the submitted display order.
// PUT /api/v1/projects/reorder
func (h *ProjectHandler) ReorderProjects(c *gin.Context) {
	var input entities.ReorderInput
	if !bindJSON(c, &input) {
		return
	}
	if err := h.projectUsecase.Reorder(c.Request.Context(), input.Items); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Projects reordered")
}
