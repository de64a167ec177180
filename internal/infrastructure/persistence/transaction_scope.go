package persistence

import (
	"context"

	"gorm.io/gorm"

	appproject "github.com/ongcloud/backend/internal/application/project"
	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

// GormTransactionScope implements the project transaction scope on top
// of Database.Transaction. Every repository handed to the callback is
// bound to the same *gorm.DB transaction.
type GormTransactionScope struct {
	database *Database
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(database *Database) *GormTransactionScope {
	return &GormTransactionScope{database: database}
}

// Execute runs fn inside one database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appproject.TransactionalRepositories) error) error {
	return s.database.Transaction(func(tx *gorm.DB) error {
		return fn(&transactionalRepositories{tx: tx})
	})
}

type transactionalRepositories struct {
	tx *gorm.DB
}

func (r *transactionalRepositories) Ongs() ngo.OngRepository {
	return NewGormOngRepository(r.tx)
}

func (r *transactionalRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

func (r *transactionalRepositories) Projects() project.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

func (r *transactionalRepositories) Coverage() project.CoverageRepository {
	return NewGormCoverageRepository(r.tx)
}

func (r *transactionalRepositories) Commitments() project.CommitmentRepository {
	return NewGormCommitmentRepository(r.tx)
}

var _ appproject.TransactionScope = (*GormTransactionScope)(nil)
