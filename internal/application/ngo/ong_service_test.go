package ngo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appidentity "github.com/ongcloud/backend/internal/application/identity"
	appproject "github.com/ongcloud/backend/internal/application/project"
	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

type serviceMocks struct {
	ongRepo        *MockOngRepository
	userRepo       *MockUserRepository
	projectRepo    *MockProjectRepository
	coverageRepo   *MockCoverageRepository
	commitmentRepo *MockCommitmentRepository
}

func newService() (*OngService, *serviceMocks) {
	m := &serviceMocks{
		ongRepo:        new(MockOngRepository),
		userRepo:       new(MockUserRepository),
		projectRepo:    new(MockProjectRepository),
		coverageRepo:   new(MockCoverageRepository),
		commitmentRepo: new(MockCommitmentRepository),
	}
	scope := appproject.NewNoOpTransactionScope(m.ongRepo, m.userRepo, m.projectRepo, m.coverageRepo, m.commitmentRepo)
	return NewOngService(m.ongRepo, m.userRepo, m.projectRepo, m.coverageRepo, m.commitmentRepo, scope), m
}

func ongActor(ongID uint) *appidentity.Actor {
	return &appidentity.Actor{UserID: 1, Email: "ana@ejemplo.com", OngID: &ongID}
}

func adminActor() *appidentity.Actor {
	return &appidentity.Actor{UserID: 99, Email: "admin@ejemplo.com", Admin: true}
}

func unaffiliatedActor() *appidentity.Actor {
	return &appidentity.Actor{UserID: 2, Email: "luis@ejemplo.com"}
}

func assertConflictCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestOngServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates NGO", func(t *testing.T) {
		svc, m := newService()
		m.ongRepo.On("ExistsByName", ctx, "ONG Esperanza").Return(false, nil)
		m.ongRepo.On("Save", ctx, mock.AnythingOfType("*ngo.Ong")).Return(nil)

		resp, err := svc.Create(ctx, CreateOngRequest{Nombre: "ONG Esperanza"})

		require.NoError(t, err)
		assert.Equal(t, "ONG Esperanza", resp.Nombre)
		m.ongRepo.AssertExpectations(t)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		svc, m := newService()
		m.ongRepo.On("ExistsByName", ctx, "ONG Esperanza").Return(true, nil)

		_, err := svc.Create(ctx, CreateOngRequest{Nombre: "ONG Esperanza"})

		assertConflictCode(t, err, "ALREADY_EXISTS")
	})

	t.Run("attaching a board member conflicts", func(t *testing.T) {
		svc, m := newService()
		boardID := uint(1)
		member := identity.User{Nombre: "Carla", Email: "carla@ejemplo.com", BoardID: &boardID}
		member.ID = 3
		m.ongRepo.On("ExistsByName", ctx, "ONG Delta").Return(false, nil)
		m.ongRepo.On("Save", ctx, mock.AnythingOfType("*ngo.Ong")).Return(nil)
		m.userRepo.On("FindByIDs", ctx, []uint{3}).Return([]identity.User{member}, nil)

		_, err := svc.Create(ctx, CreateOngRequest{Nombre: "ONG Delta", UsuarioIDs: []uint{3}})

		assertConflictCode(t, err, "INVALID_AFFILIATION")
		m.userRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	})
}

func TestOngServiceParticipate(t *testing.T) {
	ctx := context.Background()

	t.Run("joins a project", func(t *testing.T) {
		svc, m := newService()
		proj := &project.Project{Nombre: "Agua Potable", CreadorID: 9}
		proj.ID = 4
		m.projectRepo.On("FindByID", ctx, uint(4)).Return(proj, nil)
		m.projectRepo.On("IsParticipant", ctx, uint(4), uint(2)).Return(false, nil)
		m.projectRepo.On("AddParticipant", ctx, uint(4), uint(2)).Return(nil)

		err := svc.Participate(ctx, ongActor(2), 4)

		require.NoError(t, err)
		m.projectRepo.AssertExpectations(t)
	})

	t.Run("forbidden without NGO affiliation", func(t *testing.T) {
		svc, _ := newService()

		err := svc.Participate(ctx, unaffiliatedActor(), 4)

		assertConflictCode(t, err, "NO_ONG_AFFILIATION")
	})

	t.Run("joining twice conflicts", func(t *testing.T) {
		svc, m := newService()
		proj := &project.Project{Nombre: "Agua Potable", CreadorID: 9}
		proj.ID = 4
		m.projectRepo.On("FindByID", ctx, uint(4)).Return(proj, nil)
		m.projectRepo.On("IsParticipant", ctx, uint(4), uint(2)).Return(true, nil)

		err := svc.Participate(ctx, ongActor(2), 4)

		assertConflictCode(t, err, "ALREADY_PARTICIPATING")
	})
}

func TestOngServiceListCommitments(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees all commitments", func(t *testing.T) {
		svc, m := newService()
		m.commitmentRepo.On("FindAll", ctx).Return([]project.Commitment{}, nil)

		_, err := svc.ListCommitments(ctx, adminActor())

		require.NoError(t, err)
		m.commitmentRepo.AssertExpectations(t)
	})

	t.Run("NGO user sees commitments of its projects", func(t *testing.T) {
		svc, m := newService()
		m.commitmentRepo.On("FindByOngProjects", ctx, uint(2)).Return([]project.Commitment{}, nil)

		_, err := svc.ListCommitments(ctx, ongActor(2))

		require.NoError(t, err)
		m.commitmentRepo.AssertExpectations(t)
	})

	t.Run("forbidden without NGO affiliation", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.ListCommitments(ctx, unaffiliatedActor())

		assertConflictCode(t, err, "NO_ONG_AFFILIATION")
	})
}

func TestOngServiceCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("commits to an open coverage request", func(t *testing.T) {
		svc, m := newService()
		request := &project.CoverageRequest{Descripcion: "Atención médica", ProjectID: 4, CoverageTypeID: 1}
		request.ID = 7
		m.coverageRepo.On("FindRequestByID", ctx, uint(7)).Return(request, nil)
		m.commitmentRepo.On("ExistsForRequest", ctx, uint(7)).Return(false, nil)
		m.commitmentRepo.On("Save", ctx, mock.AnythingOfType("*project.Commitment")).Return(nil)

		resp, err := svc.Commit(ctx, ongActor(2), 7, CommitRequest{Descripcion: "Enviamos un equipo"})

		require.NoError(t, err)
		assert.Equal(t, uint(7), *resp.PedidoID)
		assert.Equal(t, uint(4), resp.ProyectoID)
		assert.False(t, resp.Realizado)
	})

	t.Run("second commitment on a request conflicts", func(t *testing.T) {
		svc, m := newService()
		request := &project.CoverageRequest{Descripcion: "Atención médica", ProjectID: 4, CoverageTypeID: 1}
		request.ID = 7
		m.coverageRepo.On("FindRequestByID", ctx, uint(7)).Return(request, nil)
		m.commitmentRepo.On("ExistsForRequest", ctx, uint(7)).Return(true, nil)

		_, err := svc.Commit(ctx, ongActor(2), 7, CommitRequest{Descripcion: "Enviamos un equipo"})

		assertConflictCode(t, err, "ALREADY_COMMITTED")
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		svc, m := newService()
		m.coverageRepo.On("FindRequestByID", ctx, uint(99)).Return(nil, shared.ErrNotFound)

		_, err := svc.Commit(ctx, ongActor(2), 99, CommitRequest{Descripcion: "Enviamos un equipo"})

		assertConflictCode(t, err, "NOT_FOUND")
	})
}

func TestOngServiceMarkRealizado(t *testing.T) {
	ctx := context.Background()

	newCommitment := func(t *testing.T, ongID uint) *project.Commitment {
		t.Helper()
		c, err := project.NewCommitment("Enviamos un equipo", 4, &ongID, nil)
		require.NoError(t, err)
		c.ID = 11
		return c
	}

	t.Run("owner NGO fulfills its commitment", func(t *testing.T) {
		svc, m := newService()
		c := newCommitment(t, 2)
		m.commitmentRepo.On("FindByID", ctx, uint(11)).Return(c, nil)
		m.commitmentRepo.On("Save", ctx, c).Return(nil)

		resp, err := svc.MarkRealizado(ctx, ongActor(2), 11)

		require.NoError(t, err)
		assert.True(t, resp.Realizado)
	})

	t.Run("admin can fulfill any commitment", func(t *testing.T) {
		svc, m := newService()
		c := newCommitment(t, 2)
		m.commitmentRepo.On("FindByID", ctx, uint(11)).Return(c, nil)
		m.commitmentRepo.On("Save", ctx, c).Return(nil)

		_, err := svc.MarkRealizado(ctx, adminActor(), 11)

		require.NoError(t, err)
	})

	t.Run("another NGO is forbidden", func(t *testing.T) {
		svc, m := newService()
		c := newCommitment(t, 2)
		m.commitmentRepo.On("FindByID", ctx, uint(11)).Return(c, nil)

		_, err := svc.MarkRealizado(ctx, ongActor(3), 11)

		assertConflictCode(t, err, "FORBIDDEN")
	})

	t.Run("second fulfillment conflicts", func(t *testing.T) {
		svc, m := newService()
		c := newCommitment(t, 2)
		require.NoError(t, c.MarkRealizado())
		m.commitmentRepo.On("FindByID", ctx, uint(11)).Return(c, nil)

		_, err := svc.MarkRealizado(ctx, ongActor(2), 11)

		assertConflictCode(t, err, "ALREADY_FULFILLED")
	})
}
