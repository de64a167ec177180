package handler

import (
	"github.com/gin-gonic/gin"

	ngoapp "github.com/ongcloud/backend/internal/application/ngo"
)

// OngHandler handles NGO-related API endpoints
type OngHandler struct {
	BaseHandler
	ongService *ngoapp.OngService
}

// NewOngHandler creates a new OngHandler
func NewOngHandler(ongService *ngoapp.OngService) *OngHandler {
	return &OngHandler{ongService: ongService}
}

// Create registers a new NGO and optionally attaches existing users to it.
func (h *OngHandler) Create(c *gin.Context) {
	var req ngoapp.CreateOngRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.ongService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns every registered NGO.
func (h *OngHandler) List(c *gin.Context) {
	resp, err := h.ongService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Participate enrolls the acting user's NGO as a participant of a project.
func (h *OngHandler) Participate(c *gin.Context) {
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

	if err := h.ongService.Participate(c.Request.Context(), &actor, projectID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"detail": "Participación registrada"})
}

// ListCommitments lists commitments visible to the actor. Administrators see
// every commitment on the platform; NGO users see the ones tied to their
// NGO's projects.
func (h *OngHandler) ListCommitments(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.ongService.ListCommitments(c.Request.Context(), &actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Commit records the actor NGO's commitment against an open coverage request.
func (h *OngHandler) Commit(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	pedidoID, err := parseIDParam(c, "pedido_id")
	if err != nil {
		h.BadRequest(c, "Invalid coverage request ID")
		return
	}

	var req ngoapp.CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.ongService.Commit(c.Request.Context(), &actor, pedidoID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// MarkRealizado marks a commitment as fulfilled. Only the owning NGO or an
// administrator may do this, and only once.
func (h *OngHandler) MarkRealizado(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	compromisoID, err := parseIDParam(c, "compromiso_id")
	if err != nil {
		h.BadRequest(c, "Invalid commitment ID")
		return
	}

	resp, err := h.ongService.MarkRealizado(c.Request.Context(), &actor, compromisoID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
