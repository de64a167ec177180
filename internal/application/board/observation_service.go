package board

import (
	"context"

	appidentity "github.com/ongcloud/backend/internal/application/identity"
	"github.com/ongcloud/backend/internal/domain/board"
	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// ObservationService handles oversight-board observations on projects
type ObservationService struct {
	observationRepo board.ObservationRepository
	boardRepo       board.BoardRepository
	projectRepo     project.ProjectRepository
}

// NewObservationService creates a new ObservationService
func NewObservationService(
	observationRepo board.ObservationRepository,
	boardRepo board.BoardRepository,
	projectRepo project.ProjectRepository,
) *ObservationService {
	return &ObservationService{
		observationRepo: observationRepo,
		boardRepo:       boardRepo,
		projectRepo:     projectRepo,
	}
}

// Create records an observation on a project. Board members only.
func (s *ObservationService) Create(ctx context.Context, actor *appidentity.Actor, projectID uint, req CreateObservationRequest) (*ObservationResponse, error) {
	if !actor.IsBoardMember() {
		return nil, shared.NewDomainError("NO_BOARD_AFFILIATION", "Only board members can record observations")
	}

	proj, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	obs, err := board.NewObservation(req.Descripcion, proj.ID, *actor.BoardID)
	if err != nil {
		return nil, err
	}
	if err := s.observationRepo.Save(ctx, obs); err != nil {
		return nil, err
	}

	// Preload the board name for the response
	authoring, err := s.boardRepo.FindByID(ctx, *actor.BoardID)
	if err == nil {
		obs.Board = authoring
	}

	resp := ToObservationResponse(obs)
	return &resp, nil
}

// ListAll returns every observation with its project. Administrator only.
func (s *ObservationService) ListAll(ctx context.Context, actor *appidentity.Actor) ([]ObservationAdminResponse, error) {
	if !actor.Admin {
		return nil, shared.NewDomainError("FORBIDDEN", "Administrator access required")
	}

	observations, err := s.observationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ObservationAdminResponse, len(observations))
	for i := range observations {
		responses[i] = ToObservationAdminResponse(&observations[i])
	}
	return responses, nil
}

// ListByProject returns the observations of a project for the
// administrator or a user of the project's creator NGO.
func (s *ObservationService) ListByProject(ctx context.Context, actor *appidentity.Actor, projectID uint) ([]ObservationResponse, error) {
	proj, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !actor.Admin {
		if !actor.HasOng() || !proj.IsCreatedBy(*actor.OngID) {
			return nil, shared.NewDomainError("FORBIDDEN", "Only the creator NGO can view these observations")
		}
	}

	return s.listForProject(ctx, proj.ID)
}

// ListByProjectAdmin returns the observations of a project for the
// administrator only.
func (s *ObservationService) ListByProjectAdmin(ctx context.Context, actor *appidentity.Actor, projectID uint) ([]ObservationResponse, error) {
	if !actor.Admin {
		return nil, shared.NewDomainError("FORBIDDEN", "Administrator access required")
	}

	proj, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return s.listForProject(ctx, proj.ID)
}

func (s *ObservationService) listForProject(ctx context.Context, projectID uint) ([]ObservationResponse, error) {
	observations, err := s.observationRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]ObservationResponse, len(observations))
	for i := range observations {
		responses[i] = ToObservationResponse(&observations[i])
	}
	return responses, nil
}
