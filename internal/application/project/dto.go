package project

import (
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

// CreateProjectRequest represents a request to create a new project.
// CreadorID names the creator NGO when the administrator creates the
// project; regular users always create on behalf of their own NGO.
type CreateProjectRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	CreadorID *uint  `json:"creador_id"`
}

// NamedIn is a name-only nested input used by aggregate creation
type NamedIn struct {
	Nombre string `json:"nombre" binding:"required,min=1,max=255"`
}

// PedidoCoberturaIn is a nested coverage request input
type PedidoCoberturaIn struct {
	Descripcion   string  `json:"descripcion" binding:"required,min=1"`
	TipoCobertura NamedIn `json:"tipo_cobertura" binding:"required"`
}

// CompromisoIn is a nested commitment input
type CompromisoIn struct {
	Descripcion string `json:"descripcion" binding:"required,min=1"`
}

// CreateFullProjectRequest represents the aggregate creation payload:
// a project with its creator, participants, work plans, stages,
// coverage requests and spontaneous commitments in one call.
type CreateFullProjectRequest struct {
	Nombre            string              `json:"nombre" binding:"required,min=1,max=255"`
	Creador           NamedIn             `json:"creador" binding:"required"`
	OngsParticipantes []NamedIn           `json:"ongs_participantes"`
	PlanesTrabajo     []NamedIn           `json:"planes_trabajo"`
	Etapas            []NamedIn           `json:"etapas"`
	PedidosCobertura  []PedidoCoberturaIn `json:"pedidos_cobertura"`
	Compromisos       []CompromisoIn      `json:"compromisos"`
}

// ParticipantResponse represents a participant NGO in API responses
type ParticipantResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID            uint                  `json:"id"`
	Nombre        string                `json:"nombre"`
	CreadorID     uint                  `json:"creador_id"`
	Participantes []ParticipantResponse `json:"participantes,omitempty"`
}

// StageResponse represents a stage in API responses
type StageResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Cumplida bool   `json:"cumplida"`
}

// CoverageTypeResponse represents a coverage type in API responses
type CoverageTypeResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

// RequestCommitmentResponse is the commitment nested under a coverage request
type RequestCommitmentResponse struct {
	ID        uint                 `json:"id"`
	Realizado bool                 `json:"realizado"`
	Ong       *ParticipantResponse `json:"ong,omitempty"`
	PedidoID  *uint                `json:"pedido_id,omitempty"`
}

// CoverageRequestResponse represents a coverage request with its type
// and optional commitment
type CoverageRequestResponse struct {
	ID            uint                       `json:"id"`
	Descripcion   string                     `json:"descripcion"`
	TipoCobertura CoverageTypeResponse       `json:"tipo_cobertura"`
	Compromiso    *RequestCommitmentResponse `json:"compromiso,omitempty"`
}

// ToProjectResponse converts a project entity to its response shape
func ToProjectResponse(p *project.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		CreadorID: p.CreadorID,
	}
}

// ToParticipantResponse converts an NGO entity to the participant shape
func ToParticipantResponse(o *ngo.Ong) ParticipantResponse {
	return ParticipantResponse{ID: o.ID, Nombre: o.Nombre}
}

// ToStageResponse converts a stage entity to its response shape
func ToStageResponse(s *project.Stage) StageResponse {
	return StageResponse{ID: s.ID, Nombre: s.Nombre, Cumplida: s.Cumplida}
}

// ToCoverageRequestResponse converts a coverage request entity,
// including its preloaded type and commitment, to its response shape
func ToCoverageRequestResponse(r *project.CoverageRequest) CoverageRequestResponse {
	resp := CoverageRequestResponse{
		ID:          r.ID,
		Descripcion: r.Descripcion,
	}
	if r.CoverageType != nil {
		resp.TipoCobertura = CoverageTypeResponse{ID: r.CoverageType.ID, Nombre: r.CoverageType.Nombre}
	}
	if r.Commitment != nil {
		c := &RequestCommitmentResponse{
			ID:        r.Commitment.ID,
			Realizado: r.Commitment.Realizado,
			PedidoID:  r.Commitment.CoverageRequestID,
		}
		if r.Commitment.Ong != nil {
			ong := ToParticipantResponse(r.Commitment.Ong)
			c.Ong = &ong
		}
		resp.Compromiso = c
	}
	return resp
}
