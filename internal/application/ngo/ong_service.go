package ngo

import (
	"context"
	"errors"

	appidentity "github.com/ongcloud/backend/internal/application/identity"
	appproject "github.com/ongcloud/backend/internal/application/project"
	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// OngService handles NGO-related business operations, including the
// commitment flows performed on behalf of an NGO.
type OngService struct {
	ongRepo        ngo.OngRepository
	userRepo       identity.UserRepository
	projectRepo    project.ProjectRepository
	coverageRepo   project.CoverageRepository
	commitmentRepo project.CommitmentRepository
	txScope        appproject.TransactionScope
}

// NewOngService creates a new OngService
func NewOngService(
	ongRepo ngo.OngRepository,
	userRepo identity.UserRepository,
	projectRepo project.ProjectRepository,
	coverageRepo project.CoverageRepository,
	commitmentRepo project.CommitmentRepository,
	txScope appproject.TransactionScope,
) *OngService {
	return &OngService{
		ongRepo:        ongRepo,
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		coverageRepo:   coverageRepo,
		commitmentRepo: commitmentRepo,
		txScope:        txScope,
	}
}

// Create creates a new NGO and attaches the listed users to it. The
// whole sequence runs in one transaction so a rejected attachment
// leaves no NGO behind.
func (s *OngService) Create(ctx context.Context, req CreateOngRequest) (*OngResponse, error) {
	var created *ngo.Ong
	err := s.txScope.Execute(ctx, func(repos appproject.TransactionalRepositories) error {
		exists, err := repos.Ongs().ExistsByName(ctx, req.Nombre)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "An NGO with this name already exists")
		}

		org, err := ngo.NewOng(req.Nombre)
		if err != nil {
			return err
		}
		if err := repos.Ongs().Save(ctx, org); err != nil {
			return err
		}

		if len(req.UsuarioIDs) > 0 {
			users, err := repos.Users().FindByIDs(ctx, req.UsuarioIDs)
			if err != nil {
				return err
			}
			for i := range users {
				if err := users[i].AssignOng(org.ID); err != nil {
					return err
				}
				if err := repos.Users().Save(ctx, &users[i]); err != nil {
					return err
				}
			}
		}

		created = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToOngResponse(created), nil
}

// List returns all NGOs
func (s *OngService) List(ctx context.Context) ([]OngResponse, error) {
	ongs, err := s.ongRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]OngResponse, len(ongs))
	for i := range ongs {
		responses[i] = *ToOngResponse(&ongs[i])
	}
	return responses, nil
}

// Participate adds the actor's NGO as a participant of the project
func (s *OngService) Participate(ctx context.Context, actor *appidentity.Actor, projectID uint) error {
	if !actor.HasOng() {
		return shared.NewDomainError("NO_ONG_AFFILIATION", "User is not affiliated with an NGO")
	}

	proj, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	joined, err := s.projectRepo.IsParticipant(ctx, proj.ID, *actor.OngID)
	if err != nil {
		return err
	}
	if joined {
		return shared.NewDomainError("ALREADY_PARTICIPATING", "The NGO already participates in this project")
	}

	return s.projectRepo.AddParticipant(ctx, proj.ID, *actor.OngID)
}

// ListCommitments returns the commitments visible to the actor: all of
// them for the administrator, those tied to the NGO's projects otherwise.
func (s *OngService) ListCommitments(ctx context.Context, actor *appidentity.Actor) ([]CommitmentResponse, error) {
	var (
		commitments []project.Commitment
		err         error
	)
	switch {
	case actor.Admin:
		commitments, err = s.commitmentRepo.FindAll(ctx)
	case actor.HasOng():
		commitments, err = s.commitmentRepo.FindByOngProjects(ctx, *actor.OngID)
	default:
		return nil, shared.NewDomainError("NO_ONG_AFFILIATION", "User is not affiliated with an NGO")
	}
	if err != nil {
		return nil, err
	}

	responses := make([]CommitmentResponse, len(commitments))
	for i := range commitments {
		responses[i] = *ToCommitmentResponse(&commitments[i])
	}
	return responses, nil
}

// Commit records the actor's NGO committing to a coverage request. A
// request can carry at most one commitment.
func (s *OngService) Commit(ctx context.Context, actor *appidentity.Actor, pedidoID uint, req CommitRequest) (*CommitmentResponse, error) {
	if !actor.HasOng() {
		return nil, shared.NewDomainError("NO_ONG_AFFILIATION", "User is not affiliated with an NGO")
	}

	request, err := s.coverageRepo.FindRequestByID(ctx, pedidoID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Coverage request not found")
		}
		return nil, err
	}

	taken, err := s.commitmentRepo.ExistsForRequest(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_COMMITTED", "The coverage request already has a commitment")
	}

	requestID := request.ID
	commitment, err := project.NewCommitment(req.Descripcion, request.ProjectID, actor.OngID, &requestID)
	if err != nil {
		return nil, err
	}
	if err := s.commitmentRepo.Save(ctx, commitment); err != nil {
		return nil, err
	}

	return ToCommitmentResponse(commitment), nil
}

// MarkRealizado marks a commitment as fulfilled. Only the owning NGO
// or the administrator may do so, and only once.
func (s *OngService) MarkRealizado(ctx context.Context, actor *appidentity.Actor, compromisoID uint) (*CommitmentResponse, error) {
	commitment, err := s.commitmentRepo.FindByID(ctx, compromisoID)
	if err != nil {
		return nil, err
	}

	if !actor.Admin {
		if !actor.HasOng() || !commitment.IsOwnedBy(*actor.OngID) {
			return nil, shared.NewDomainError("FORBIDDEN", "Only the committing NGO can fulfill this commitment")
		}
	}

	if err := commitment.MarkRealizado(); err != nil {
		return nil, err
	}
	if err := s.commitmentRepo.Save(ctx, commitment); err != nil {
		return nil, err
	}

	return ToCommitmentResponse(commitment), nil
}
