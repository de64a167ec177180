package project

import (
	"context"

	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

// TransactionScope provides transactional access to the repositories
// involved in aggregate project creation. All repository operations
// performed inside Execute share one database transaction and commit
// or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories scoped
// to the current transaction.
type TransactionalRepositories interface {
	// Ongs returns the NGO repository scoped to the current transaction
	Ongs() ngo.OngRepository
	// Users returns the user repository scoped to the current transaction
	Users() identity.UserRepository
	// Projects returns the project repository scoped to the current transaction
	Projects() project.ProjectRepository
	// Coverage returns the coverage repository scoped to the current transaction
	Coverage() project.CoverageRepository
	// Commitments returns the commitment repository scoped to the current transaction
	Commitments() project.CommitmentRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests where atomicity is exercised elsewhere.
type NoOpTransactionScope struct {
	ongRepo        ngo.OngRepository
	userRepo       identity.UserRepository
	projectRepo    project.ProjectRepository
	coverageRepo   project.CoverageRepository
	commitmentRepo project.CommitmentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	ongRepo ngo.OngRepository,
	userRepo identity.UserRepository,
	projectRepo project.ProjectRepository,
	coverageRepo project.CoverageRepository,
	commitmentRepo project.CommitmentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		ongRepo:        ongRepo,
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		coverageRepo:   coverageRepo,
		commitmentRepo: commitmentRepo,
	}
}

// Execute runs the function directly against the wrapped repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Ongs returns the NGO repository
func (s *NoOpTransactionScope) Ongs() ngo.OngRepository { return s.ongRepo }

// Users returns the user repository
func (s *NoOpTransactionScope) Users() identity.UserRepository { return s.userRepo }

// Projects returns the project repository
func (s *NoOpTransactionScope) Projects() project.ProjectRepository { return s.projectRepo }

// Coverage returns the coverage repository
func (s *NoOpTransactionScope) Coverage() project.CoverageRepository { return s.coverageRepo }

// Commitments returns the commitment repository
func (s *NoOpTransactionScope) Commitments() project.CommitmentRepository { return s.commitmentRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
