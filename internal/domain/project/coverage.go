package project

import (
	"strings"

	"github.com/ongcloud/backend/internal/domain/shared"
)

// CoverageType categorizes coverage requests (e.g., "Salud", "Educación")
type CoverageType struct {
	shared.BaseEntity
	Nombre string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (CoverageType) TableName() string {
	return "tipos_cobertura"
}

// NewCoverageType creates a new coverage type
func NewCoverageType(nombre string) (*CoverageType, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Coverage type name cannot be empty")
	}
	return &CoverageType{Nombre: nombre}, nil
}

// CoverageRequest (pedido de cobertura) is a need declared by a
// project, categorized by a coverage type and fulfilled by at most one
// commitment.
type CoverageRequest struct {
	shared.BaseEntity
	Descripcion    string        `gorm:"type:text;not null"`
	ProjectID      uint          `gorm:"not null;index"`
	CoverageTypeID uint          `gorm:"not null;index"`
	CoverageType   *CoverageType `gorm:"foreignKey:CoverageTypeID"`
	Commitment     *Commitment   `gorm:"foreignKey:CoverageRequestID"`
}

// TableName returns the table name for GORM
func (CoverageRequest) TableName() string {
	return "pedidos_cobertura"
}

// NewCoverageRequest creates a new coverage request under a project
func NewCoverageRequest(descripcion string, projectID, coverageTypeID uint) (*CoverageRequest, error) {
	descripcion = strings.TrimSpace(descripcion)
	if descripcion == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Coverage request description cannot be empty")
	}
	return &CoverageRequest{
		Descripcion:    descripcion,
		ProjectID:      projectID,
		CoverageTypeID: coverageTypeID,
	}, nil
}

// IsFulfilled reports whether the request already has a commitment
func (r *CoverageRequest) IsFulfilled() bool {
	return r.Commitment != nil
}
