package handler

import (
	"github.com/gin-gonic/gin"

	boardapp "github.com/ongcloud/backend/internal/application/board"
)

// ObservationHandler handles oversight board observation endpoints
type ObservationHandler struct {
	BaseHandler
	observationService *boardapp.ObservationService
}

// NewObservationHandler creates a new ObservationHandler
func NewObservationHandler(observationService *boardapp.ObservationService) *ObservationHandler {
	return &ObservationHandler{observationService: observationService}
}

// Create records an observation on a project on behalf of the actor's board.
func (h *ObservationHandler) Create(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := parseIDParam(c, "proyecto_id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req boardapp.CreateObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.observationService.Create(c.Request.Context(), &actor, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListAll returns every observation on the platform. Administrator only.
func (h *ObservationHandler) ListAll(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.observationService.ListAll(c.Request.Context(), &actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListByProject returns a project's observations for an administrator or a
// user of the project's creator NGO.
func (h *ObservationHandler) ListByProject(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := parseIDParam(c, "proyecto_id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.observationService.ListByProject(c.Request.Context(), &actor, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListByProjectAdmin returns a project's observations for administrators.
func (h *ObservationHandler) ListByProjectAdmin(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := parseIDParam(c, "proyecto_id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.observationService.ListByProjectAdmin(c.Request.Context(), &actor, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
