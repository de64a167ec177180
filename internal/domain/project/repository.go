package project

import (
	"context"

	"github.com/ongcloud/backend/internal/domain/ngo"
)

// ProjectRepository defines the interface for project persistence,
// including the participation join relation, work plans and stages.
type ProjectRepository interface {
	// FindByID finds a project by its ID
	FindByID(ctx context.Context, id uint) (*Project, error)

	// FindByName finds a project by its unique name
	FindByName(ctx context.Context, nombre string) (*Project, error)

	// FindAll returns all projects ordered by creation
	FindAll(ctx context.Context) ([]Project, error)

	// ExistsByName checks whether a project with the given name exists
	ExistsByName(ctx context.Context, nombre string) (bool, error)

	// Save creates or updates a project
	Save(ctx context.Context, p *Project) error

	// AddParticipant records an NGO joining a project
	AddParticipant(ctx context.Context, projectID, ongID uint) error

	// IsParticipant checks whether the NGO already participates in the project
	IsParticipant(ctx context.Context, projectID, ongID uint) (bool, error)

	// ListParticipants returns the participant NGOs in association order
	ListParticipants(ctx context.Context, projectID uint) ([]ngo.Ong, error)

	// SaveWorkPlan creates a work plan under a project
	SaveWorkPlan(ctx context.Context, plan *WorkPlan) error

	// ListStages returns all stages of a project
	ListStages(ctx context.Context, projectID uint) ([]Stage, error)

	// FindStage finds a stage of a project by its ID
	FindStage(ctx context.Context, projectID, stageID uint) (*Stage, error)

	// SaveStage creates or updates a stage
	SaveStage(ctx context.Context, stage *Stage) error
}

// CoverageRepository defines the interface for coverage type and
// coverage request persistence.
type CoverageRepository interface {
	// FindTypeByName finds a coverage type by its unique name
	FindTypeByName(ctx context.Context, nombre string) (*CoverageType, error)

	// SaveType creates or updates a coverage type
	SaveType(ctx context.Context, t *CoverageType) error

	// FindRequestByID finds a coverage request with its type and commitment
	FindRequestByID(ctx context.Context, id uint) (*CoverageRequest, error)

	// ListRequestsByProject returns the coverage requests of a project
	// with their type and optional commitment preloaded
	ListRequestsByProject(ctx context.Context, projectID uint) ([]CoverageRequest, error)

	// SaveRequest creates or updates a coverage request
	SaveRequest(ctx context.Context, r *CoverageRequest) error
}

// CommitmentRepository defines the interface for commitment persistence
type CommitmentRepository interface {
	// FindByID finds a commitment by its ID
	FindByID(ctx context.Context, id uint) (*Commitment, error)

	// ExistsForRequest checks whether a coverage request already has a commitment
	ExistsForRequest(ctx context.Context, requestID uint) (bool, error)

	// FindAll returns all commitments with their NGO preloaded
	FindAll(ctx context.Context) ([]Commitment, error)

	// FindByOngProjects returns commitments tied to projects the given
	// NGO created or participates in
	FindByOngProjects(ctx context.Context, ongID uint) ([]Commitment, error)

	// Save creates or updates a commitment
	Save(ctx context.Context, c *Commitment) error
}
