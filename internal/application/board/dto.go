package board

import "github.com/ongcloud/backend/internal/domain/board"

// CreateObservationRequest represents a request to record an observation
type CreateObservationRequest struct {
	Descripcion string `json:"descripcion" binding:"required,min=1"`
}

// ObservationResponse represents an observation scoped to one project
type ObservationResponse struct {
	ID          uint   `json:"id"`
	Descripcion string `json:"descripcion"`
	Consejo     string `json:"consejo"`
}

// ObservationAdminResponse is the platform-wide listing shape,
// including the project name.
type ObservationAdminResponse struct {
	ID          uint   `json:"id"`
	Proyecto    string `json:"proyecto"`
	Descripcion string `json:"descripcion"`
	Consejo     string `json:"consejo"`
}

// ToObservationResponse converts an observation with its preloaded board
func ToObservationResponse(o *board.Observation) ObservationResponse {
	resp := ObservationResponse{ID: o.ID, Descripcion: o.Descripcion}
	if o.Board != nil {
		resp.Consejo = o.Board.Nombre
	}
	return resp
}

// ToObservationAdminResponse converts an observation with its preloaded
// board and project
func ToObservationAdminResponse(o *board.Observation) ObservationAdminResponse {
	resp := ObservationAdminResponse{ID: o.ID, Descripcion: o.Descripcion}
	if o.Board != nil {
		resp.Consejo = o.Board.Nombre
	}
	if o.Project != nil {
		resp.Proyecto = o.Project.Nombre
	}
	return resp
}
