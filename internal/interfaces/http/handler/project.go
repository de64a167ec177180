package handler

import (
	"github.com/gin-gonic/gin"

	projectapp "github.com/ongcloud/backend/internal/application/project"
)

// ProjectHandler handles project-related API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *projectapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *projectapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create registers a new project. NGO users create on behalf of their own
// NGO; administrators must name the creator NGO explicitly.
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req projectapp.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.projectService.Create(c.Request.Context(), &actor, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns every project.
func (h *ProjectHandler) List(c *gin.Context) {
	resp, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get returns a single project with its participants.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// CreateFull creates a project aggregate in one shot: the project, its
// creator and participant NGOs (created on demand by name), work plans with
// stages, coverage requests with their types, and spontaneous commitments.
// Everything runs in a single transaction.
func (h *ProjectHandler) CreateFull(c *gin.Context) {
	var req projectapp.CreateFullProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.projectService.CreateFull(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// AddParticipant attaches an NGO to a project. Administrator only.
func (h *ProjectHandler) AddParticipant(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	ongID, err := parseIDParam(c, "ong_id")
	if err != nil {
		h.BadRequest(c, "Invalid NGO ID")
		return
	}

	if err := h.projectService.AddParticipant(c.Request.Context(), &actor, projectID, ongID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"detail": "Participante agregado"})
}

// ListParticipants lists a project's participant NGOs in association order.
func (h *ProjectHandler) ListParticipants(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.projectService.ListParticipants(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListStages lists a project's stages across all of its work plans.
func (h *ProjectHandler) ListStages(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.projectService.ListStages(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// MarkStageCumplida marks a stage as completed. Only the creator NGO's users
// or an administrator may do this, and completion is one-way.
func (h *ProjectHandler) MarkStageCumplida(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	stageID, err := parseIDParam(c, "etapa_id")
	if err != nil {
		h.BadRequest(c, "Invalid stage ID")
		return
	}

	resp, err := h.projectService.MarkStageCumplida(c.Request.Context(), &actor, projectID, stageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListRequests lists a project's coverage requests with their type and any
// commitment already made against them.
func (h *ProjectHandler) ListRequests(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.projectService.ListRequests(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
