package ngo

import (
	"strings"

	"github.com/ongcloud/backend/internal/domain/shared"
)

// Ong represents a non-governmental organization. NGOs create projects
// and participate in projects created by others.
type Ong struct {
	shared.BaseEntity
	Nombre string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Ong) TableName() string {
	return "ongs"
}

// NewOng creates a new NGO with the given unique name
func NewOng(nombre string) (*Ong, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "NGO name cannot be empty")
	}
	if len(nombre) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "NGO name cannot exceed 255 characters")
	}
	return &Ong{Nombre: nombre}, nil
}
