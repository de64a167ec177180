package project

import (
	"strings"
	"time"

	"github.com/ongcloud/backend/internal/domain/shared"
)

// Stage (etapa) is a project milestone with a one-way completion flag
type Stage struct {
	shared.BaseEntity
	Nombre    string `gorm:"type:varchar(255);not null"`
	Cumplida  bool   `gorm:"not null;default:false"`
	ProjectID uint   `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Stage) TableName() string {
	return "etapas"
}

// NewStage creates a new, not yet completed stage for a project
func NewStage(nombre string, projectID uint) (*Stage, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Stage name cannot be empty")
	}
	return &Stage{Nombre: nombre, ProjectID: projectID}, nil
}

// MarkCumplida flips the completion flag. Completion is one-way: a
// second attempt is a conflict, never a silent no-op.
func (s *Stage) MarkCumplida() error {
	if s.Cumplida {
		return shared.NewDomainError("ALREADY_COMPLETED", "Stage is already marked as completed")
	}
	s.Cumplida = true
	s.UpdatedAt = time.Now()
	return nil
}
