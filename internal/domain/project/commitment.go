package project

import (
	"strings"
	"time"

	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// Commitment (compromiso) is an NGO's pledge to fulfill a coverage
// request of a project. Its fulfillment flag is one-way.
type Commitment struct {
	shared.BaseEntity
	Descripcion       string   `gorm:"type:text;not null"`
	Realizado         bool     `gorm:"not null;default:false"`
	ProjectID         uint     `gorm:"not null;index"`
	OngID             *uint    `gorm:"index"`
	Ong               *ngo.Ong `gorm:"foreignKey:OngID"`
	CoverageRequestID *uint    `gorm:"uniqueIndex"`
}

// TableName returns the table name for GORM
func (Commitment) TableName() string {
	return "compromisos"
}

// NewCommitment creates a commitment by an NGO against a coverage request
func NewCommitment(descripcion string, projectID uint, ongID, requestID *uint) (*Commitment, error) {
	descripcion = strings.TrimSpace(descripcion)
	if descripcion == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Commitment description cannot be empty")
	}
	return &Commitment{
		Descripcion:       descripcion,
		ProjectID:         projectID,
		OngID:             ongID,
		CoverageRequestID: requestID,
	}, nil
}

// IsOwnedBy reports whether the commitment belongs to the given NGO
func (c *Commitment) IsOwnedBy(ongID uint) bool {
	return c.OngID != nil && *c.OngID == ongID
}

// MarkRealizado flips the fulfillment flag. A second attempt is a
// conflict.
func (c *Commitment) MarkRealizado() error {
	if c.Realizado {
		return shared.NewDomainError("ALREADY_FULFILLED", "Commitment is already marked as fulfilled")
	}
	c.Realizado = true
	c.UpdatedAt = time.Now()
	return nil
}
