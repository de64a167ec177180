package project

import (
	"context"
	"errors"

	appidentity "github.com/ongcloud/backend/internal/application/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// ProjectService handles project-related business operations
type ProjectService struct {
	projectRepo  project.ProjectRepository
	ongRepo      ngo.OngRepository
	coverageRepo project.CoverageRepository
	txScope      TransactionScope
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.ProjectRepository,
	ongRepo ngo.OngRepository,
	coverageRepo project.CoverageRepository,
	txScope TransactionScope,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		ongRepo:      ongRepo,
		coverageRepo: coverageRepo,
		txScope:      txScope,
	}
}

// Create creates a new project. The creator is the actor's NGO; the
// administrator must name a creator NGO explicitly.
func (s *ProjectService) Create(ctx context.Context, actor *appidentity.Actor, req CreateProjectRequest) (*ProjectResponse, error) {
	var creadorID uint
	switch {
	case actor.Admin:
		if req.CreadorID == nil {
			return nil, shared.NewDomainError("INVALID_CREATOR", "The administrator must name a creator NGO")
		}
		creador, err := s.ongRepo.FindByID(ctx, *req.CreadorID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Creator NGO not found")
			}
			return nil, err
		}
		creadorID = creador.ID
	case actor.HasOng():
		creadorID = *actor.OngID
	default:
		return nil, shared.NewDomainError("NO_ONG_AFFILIATION", "User is not affiliated with an NGO")
	}

	var created *project.Project
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Projects().ExistsByName(ctx, req.Name)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "A project with this name already exists")
		}

		proj, err := project.NewProject(req.Name, creadorID)
		if err != nil {
			return err
		}
		if err := repos.Projects().Save(ctx, proj); err != nil {
			return err
		}
		// The creator NGO is the first participant of its own project.
		if err := repos.Projects().AddParticipant(ctx, proj.ID, creadorID); err != nil {
			return err
		}
		created = proj
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToProjectResponse(created), nil
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *ToProjectResponse(&projects[i])
	}
	return responses, nil
}

// GetByID returns a project with its participants
func (s *ProjectService) GetByID(ctx context.Context, id uint) (*ProjectResponse, error) {
	proj, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.projectRepo.ListParticipants(ctx, proj.ID)
	if err != nil {
		return nil, err
	}

	resp := ToProjectResponse(proj)
	resp.Participantes = make([]ParticipantResponse, len(participants))
	for i := range participants {
		resp.Participantes[i] = ToParticipantResponse(&participants[i])
	}
	return resp, nil
}

// CreateFull creates a project together with its creator, participants,
// work plans, stages, coverage requests and spontaneous commitments.
// NGOs and coverage types are upserted by name; everything runs in one
// transaction.
func (s *ProjectService) CreateFull(ctx context.Context, req CreateFullProjectRequest) (*ProjectResponse, error) {
	var created *project.Project

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.Projects().ExistsByName(ctx, req.Nombre)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "A project with this name already exists")
		}

		creador, err := s.findOrCreateOng(ctx, repos.Ongs(), req.Creador.Nombre)
		if err != nil {
			return err
		}

		proj, err := project.NewProject(req.Nombre, creador.ID)
		if err != nil {
			return err
		}
		if err := repos.Projects().Save(ctx, proj); err != nil {
			return err
		}
		// The creator NGO is the first participant of its own project.
		if err := repos.Projects().AddParticipant(ctx, proj.ID, creador.ID); err != nil {
			return err
		}

		for _, participant := range req.OngsParticipantes {
			ong, err := s.findOrCreateOng(ctx, repos.Ongs(), participant.Nombre)
			if err != nil {
				return err
			}
			joined, err := repos.Projects().IsParticipant(ctx, proj.ID, ong.ID)
			if err != nil {
				return err
			}
			if joined {
				continue
			}
			if err := repos.Projects().AddParticipant(ctx, proj.ID, ong.ID); err != nil {
				return err
			}
		}

		for _, planIn := range req.PlanesTrabajo {
			plan := &project.WorkPlan{Nombre: planIn.Nombre, ProjectID: proj.ID}
			if err := repos.Projects().SaveWorkPlan(ctx, plan); err != nil {
				return err
			}
		}

		for _, etapaIn := range req.Etapas {
			stage, err := project.NewStage(etapaIn.Nombre, proj.ID)
			if err != nil {
				return err
			}
			if err := repos.Projects().SaveStage(ctx, stage); err != nil {
				return err
			}
		}

		for _, pedidoIn := range req.PedidosCobertura {
			tipo, err := s.findOrCreateType(ctx, repos.Coverage(), pedidoIn.TipoCobertura.Nombre)
			if err != nil {
				return err
			}
			request, err := project.NewCoverageRequest(pedidoIn.Descripcion, proj.ID, tipo.ID)
			if err != nil {
				return err
			}
			if err := repos.Coverage().SaveRequest(ctx, request); err != nil {
				return err
			}
		}

		for _, compromisoIn := range req.Compromisos {
			commitment, err := project.NewCommitment(compromisoIn.Descripcion, proj.ID, nil, nil)
			if err != nil {
				return err
			}
			if err := repos.Commitments().Save(ctx, commitment); err != nil {
				return err
			}
		}

		created = proj
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToProjectResponse(created), nil
}

// AddParticipant records an NGO joining a project. Administrator only.
func (s *ProjectService) AddParticipant(ctx context.Context, actor *appidentity.Actor, projectID, ongID uint) error {
	if !actor.Admin {
		return shared.NewDomainError("FORBIDDEN", "Only the administrator can assign participants")
	}

	proj, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	ong, err := s.ongRepo.FindByID(ctx, ongID)
	if err != nil {
		return err
	}

	joined, err := s.projectRepo.IsParticipant(ctx, proj.ID, ong.ID)
	if err != nil {
		return err
	}
	if joined {
		return shared.NewDomainError("ALREADY_PARTICIPATING", "The NGO already participates in this project")
	}

	return s.projectRepo.AddParticipant(ctx, proj.ID, ong.ID)
}

// ListParticipants returns the participant NGOs in association order
func (s *ProjectService) ListParticipants(ctx context.Context, projectID uint) ([]ParticipantResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	participants, err := s.projectRepo.ListParticipants(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]ParticipantResponse, len(participants))
	for i := range participants {
		responses[i] = ToParticipantResponse(&participants[i])
	}
	return responses, nil
}

// ListStages returns all stages of a project
func (s *ProjectService) ListStages(ctx context.Context, projectID uint) ([]StageResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	stages, err := s.projectRepo.ListStages(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]StageResponse, len(stages))
	for i := range stages {
		responses[i] = ToStageResponse(&stages[i])
	}
	return responses, nil
}

// MarkStageCumplida marks a stage as completed. Allowed for users of
// the creator NGO and the administrator, once per stage.
func (s *ProjectService) MarkStageCumplida(ctx context.Context, actor *appidentity.Actor, projectID, stageID uint) (*StageResponse, error) {
	proj, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !actor.Admin {
		if !actor.HasOng() || !proj.IsCreatedBy(*actor.OngID) {
			return nil, shared.NewDomainError("FORBIDDEN", "Only the creator NGO can complete stages of this project")
		}
	}

	stage, err := s.projectRepo.FindStage(ctx, proj.ID, stageID)
	if err != nil {
		return nil, err
	}
	if err := stage.MarkCumplida(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.SaveStage(ctx, stage); err != nil {
		return nil, err
	}

	resp := ToStageResponse(stage)
	return &resp, nil
}

// ListRequests returns the coverage requests of a project with their
// type and optional commitment
func (s *ProjectService) ListRequests(ctx context.Context, projectID uint) ([]CoverageRequestResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	requests, err := s.coverageRepo.ListRequestsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]CoverageRequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToCoverageRequestResponse(&requests[i])
	}
	return responses, nil
}

func (s *ProjectService) findOrCreateOng(ctx context.Context, repo ngo.OngRepository, nombre string) (*ngo.Ong, error) {
	existing, err := repo.FindByName(ctx, nombre)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	created, err := ngo.NewOng(nombre)
	if err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *ProjectService) findOrCreateType(ctx context.Context, repo project.CoverageRepository, nombre string) (*project.CoverageType, error) {
	existing, err := repo.FindTypeByName(ctx, nombre)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	created, err := project.NewCoverageType(nombre)
	if err != nil {
		return nil, err
	}
	if err := repo.SaveType(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
