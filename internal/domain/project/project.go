package project

import (
	"strings"
	"time"

	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// Project is the aggregate root of the project context. A project is
// created by exactly one NGO (immutable after creation) and can be
// joined by any number of participant NGOs.
type Project struct {
	shared.BaseEntity
	Nombre    string   `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreadorID uint     `gorm:"not null;index"`
	Creador   *ngo.Ong `gorm:"foreignKey:CreadorID"`

	PlanesTrabajo    []WorkPlan        `gorm:"foreignKey:ProjectID"`
	Etapas           []Stage           `gorm:"foreignKey:ProjectID"`
	PedidosCobertura []CoverageRequest `gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "proyectos"
}

// NewProject creates a new project owned by the given creator NGO
func NewProject(nombre string, creadorID uint) (*Project, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if creadorID == 0 {
		return nil, shared.NewDomainError("INVALID_CREATOR", "Project requires a creator NGO")
	}
	return &Project{Nombre: nombre, CreadorID: creadorID}, nil
}

// IsCreatedBy reports whether the given NGO is the project's creator
func (p *Project) IsCreatedBy(ongID uint) bool {
	return p.CreadorID == ongID
}

// Participation is the explicit NGO-to-project join relation. Rows
// carry their own key so listings preserve insertion order.
type Participation struct {
	ID        uint `gorm:"primaryKey"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_participa_proyecto_ong,priority:1"`
	OngID     uint `gorm:"not null;uniqueIndex:idx_participa_proyecto_ong,priority:2"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (Participation) TableName() string {
	return "ong_proyecto_participa"
}

// WorkPlan is a named plan of work belonging to one project
type WorkPlan struct {
	shared.BaseEntity
	Nombre    string `gorm:"type:varchar(255);not null"`
	ProjectID uint   `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (WorkPlan) TableName() string {
	return "planes_trabajo"
}
