package ngo

import (
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

// CreateOngRequest represents a request to create a new NGO
type CreateOngRequest struct {
	Nombre     string `json:"nombre" binding:"required,min=1,max=255"`
	UsuarioIDs []uint `json:"usuario_ids"`
}

// CommitRequest represents a request to commit to a coverage request
type CommitRequest struct {
	Descripcion string `json:"descripcion" binding:"required,min=1"`
}

// OngResponse represents an NGO in API responses
type OngResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// CommitmentResponse represents a commitment in API responses
type CommitmentResponse struct {
	ID          uint         `json:"id"`
	Descripcion string       `json:"descripcion"`
	Realizado   bool         `json:"realizado"`
	Ong         *OngResponse `json:"ong,omitempty"`
	PedidoID    *uint        `json:"pedido_id,omitempty"`
	ProyectoID  uint         `json:"proyecto_id"`
}

// ToOngResponse converts an NGO entity to its response shape
func ToOngResponse(o *ngo.Ong) *OngResponse {
	return &OngResponse{ID: o.ID, Nombre: o.Nombre}
}

// ToCommitmentResponse converts a commitment entity to its response shape
func ToCommitmentResponse(c *project.Commitment) *CommitmentResponse {
	resp := &CommitmentResponse{
		ID:          c.ID,
		Descripcion: c.Descripcion,
		Realizado:   c.Realizado,
		PedidoID:    c.CoverageRequestID,
		ProyectoID:  c.ProjectID,
	}
	if c.Ong != nil {
		resp.Ong = ToOngResponse(c.Ong)
	}
	return resp
}
