package ngo

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

type MockOngRepository struct {
	mock.Mock
}

func (m *MockOngRepository) FindByID(ctx context.Context, id uint) (*ngo.Ong, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ngo.Ong), args.Error(1)
}

func (m *MockOngRepository) FindByName(ctx context.Context, nombre string) (*ngo.Ong, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ngo.Ong), args.Error(1)
}

func (m *MockOngRepository) FindAll(ctx context.Context) ([]ngo.Ong, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ngo.Ong), args.Error(1)
}

func (m *MockOngRepository) ExistsByName(ctx context.Context, nombre string) (bool, error) {
	args := m.Called(ctx, nombre)
	return args.Bool(0), args.Error(1)
}

func (m *MockOngRepository) Save(ctx context.Context, o *ngo.Ong) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]identity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByName(ctx context.Context, nombre string) (*project.Project, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) ExistsByName(ctx context.Context, nombre string) (bool, error) {
	args := m.Called(ctx, nombre)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) AddParticipant(ctx context.Context, projectID, ongID uint) error {
	args := m.Called(ctx, projectID, ongID)
	return args.Error(0)
}

func (m *MockProjectRepository) IsParticipant(ctx context.Context, projectID, ongID uint) (bool, error) {
	args := m.Called(ctx, projectID, ongID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) ListParticipants(ctx context.Context, projectID uint) ([]ngo.Ong, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ngo.Ong), args.Error(1)
}

func (m *MockProjectRepository) SaveWorkPlan(ctx context.Context, plan *project.WorkPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockProjectRepository) ListStages(ctx context.Context, projectID uint) ([]project.Stage, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Stage), args.Error(1)
}

func (m *MockProjectRepository) FindStage(ctx context.Context, projectID, stageID uint) (*project.Stage, error) {
	args := m.Called(ctx, projectID, stageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Stage), args.Error(1)
}

func (m *MockProjectRepository) SaveStage(ctx context.Context, stage *project.Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

type MockCoverageRepository struct {
	mock.Mock
}

func (m *MockCoverageRepository) FindTypeByName(ctx context.Context, nombre string) (*project.CoverageType, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.CoverageType), args.Error(1)
}

func (m *MockCoverageRepository) SaveType(ctx context.Context, t *project.CoverageType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockCoverageRepository) FindRequestByID(ctx context.Context, id uint) (*project.CoverageRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.CoverageRequest), args.Error(1)
}

func (m *MockCoverageRepository) ListRequestsByProject(ctx context.Context, projectID uint) ([]project.CoverageRequest, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.CoverageRequest), args.Error(1)
}

func (m *MockCoverageRepository) SaveRequest(ctx context.Context, r *project.CoverageRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockCommitmentRepository struct {
	mock.Mock
}

func (m *MockCommitmentRepository) FindByID(ctx context.Context, id uint) (*project.Commitment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Commitment), args.Error(1)
}

func (m *MockCommitmentRepository) ExistsForRequest(ctx context.Context, requestID uint) (bool, error) {
	args := m.Called(ctx, requestID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommitmentRepository) FindAll(ctx context.Context) ([]project.Commitment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Commitment), args.Error(1)
}

func (m *MockCommitmentRepository) FindByOngProjects(ctx context.Context, ongID uint) ([]project.Commitment, error) {
	args := m.Called(ctx, ongID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Commitment), args.Error(1)
}

func (m *MockCommitmentRepository) Save(ctx context.Context, c *project.Commitment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
