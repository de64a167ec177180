package board

import (
	"strings"

	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// Board (consejo directivo) is an oversight body whose members author
// observations on projects.
type Board struct {
	shared.BaseEntity
	Nombre string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Board) TableName() string {
	return "consejos_directivos"
}

// NewBoard creates a new oversight board
func NewBoard(nombre string) (*Board, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Board name cannot be empty")
	}
	return &Board{Nombre: nombre}, nil
}

// Observation is a board-authored note on a project. Observations are
// immutable once created.
type Observation struct {
	shared.BaseEntity
	Descripcion string           `gorm:"type:text;not null"`
	ProjectID   uint             `gorm:"not null;index"`
	Project     *project.Project `gorm:"foreignKey:ProjectID"`
	BoardID     uint             `gorm:"not null;index"`
	Board       *Board           `gorm:"foreignKey:BoardID"`
}

// TableName returns the table name for GORM
func (Observation) TableName() string {
	return "observaciones"
}

// NewObservation creates a new observation authored by a board
func NewObservation(descripcion string, projectID, boardID uint) (*Observation, error) {
	descripcion = strings.TrimSpace(descripcion)
	if descripcion == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Observation description cannot be empty")
	}
	return &Observation{
		Descripcion: descripcion,
		ProjectID:   projectID,
		BoardID:     boardID,
	}, nil
}
