package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// GormCommitmentRepository implements project.CommitmentRepository using GORM
type GormCommitmentRepository struct {
	db *gorm.DB
}

// NewGormCommitmentRepository creates a new GormCommitmentRepository
func NewGormCommitmentRepository(db *gorm.DB) *GormCommitmentRepository {
	return &GormCommitmentRepository{db: db}
}

// FindByID finds a commitment by its ID
func (r *GormCommitmentRepository) FindByID(ctx context.Context, id uint) (*project.Commitment, error) {
	var commitment project.Commitment
	if err := r.db.WithContext(ctx).
		Preload("Ong").
		First(&commitment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commitment, nil
}

// ExistsForRequest checks whether a coverage request already has a commitment
func (r *GormCommitmentRepository) ExistsForRequest(ctx context.Context, requestID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&project.Commitment{}).
		Where("coverage_request_id = ?", requestID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns all commitments with their NGO preloaded
func (r *GormCommitmentRepository) FindAll(ctx context.Context) ([]project.Commitment, error) {
	var commitments []project.Commitment
	if err := r.db.WithContext(ctx).
		Preload("Ong").
		Order("id ASC").
		Find(&commitments).Error; err != nil {
		return nil, err
	}
	return commitments, nil
}

// FindByOngProjects returns commitments tied to projects the given NGO
// created or participates in
func (r *GormCommitmentRepository) FindByOngProjects(ctx context.Context, ongID uint) ([]project.Commitment, error) {
	var commitments []project.Commitment
	if err := r.db.WithContext(ctx).
		Preload("Ong").
		Where("project_id IN (?)",
			r.db.Model(&project.Project{}).Select("id").Where("creador_id = ?", ongID),
		).
		Or("project_id IN (?)",
			r.db.Model(&project.Participation{}).Select("project_id").Where("ong_id = ?", ongID),
		).
		Order("id ASC").
		Find(&commitments).Error; err != nil {
		return nil, err
	}
	return commitments, nil
}

// Save creates or updates a commitment
func (r *GormCommitmentRepository) Save(ctx context.Context, commitment *project.Commitment) error {
	return r.db.WithContext(ctx).Save(commitment).Error
}

var _ project.CommitmentRepository = (*GormCommitmentRepository)(nil)
