package board

import "context"

// BoardRepository defines the interface for board persistence
type BoardRepository interface {
	// FindByID finds a board by its ID
	FindByID(ctx context.Context, id uint) (*Board, error)

	// FindByName finds a board by its unique name
	FindByName(ctx context.Context, nombre string) (*Board, error)

	// Save creates or updates a board
	Save(ctx context.Context, b *Board) error
}

// ObservationRepository defines the interface for observation persistence
type ObservationRepository interface {
	// FindAll returns all observations with their project and board preloaded
	FindAll(ctx context.Context) ([]Observation, error)

	// FindByProject returns the observations of a project with their board preloaded
	FindByProject(ctx context.Context, projectID uint) ([]Observation, error)

	// Save creates an observation
	Save(ctx context.Context, o *Observation) error
}
