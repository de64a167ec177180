package persistence

import (
	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/board"
	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
)

// AutoMigrate creates or updates the schema for all domain models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ngo.Ong{},
		&board.Board{},
		&identity.User{},
		&project.Project{},
		&project.Participation{},
		&project.WorkPlan{},
		&project.Stage{},
		&project.CoverageType{},
		&project.CoverageRequest{},
		&project.Commitment{},
		&board.Observation{},
	)
}
