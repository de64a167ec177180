package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// GormCoverageRepository implements project.CoverageRepository using GORM
type GormCoverageRepository struct {
	db *gorm.DB
}

// NewGormCoverageRepository creates a new GormCoverageRepository
func NewGormCoverageRepository(db *gorm.DB) *GormCoverageRepository {
	return &GormCoverageRepository{db: db}
}

// FindTypeByName finds a coverage type by its unique name
func (r *GormCoverageRepository) FindTypeByName(ctx context.Context, nombre string) (*project.CoverageType, error) {
	var tipo project.CoverageType
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&tipo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tipo, nil
}

// SaveType creates or updates a coverage type
func (r *GormCoverageRepository) SaveType(ctx context.Context, tipo *project.CoverageType) error {
	return r.db.WithContext(ctx).Save(tipo).Error
}

// FindRequestByID finds a coverage request with its type and commitment
func (r *GormCoverageRepository) FindRequestByID(ctx context.Context, id uint) (*project.CoverageRequest, error) {
	var request project.CoverageRequest
	if err := r.db.WithContext(ctx).
		Preload("CoverageType").
		Preload("Commitment").
		Preload("Commitment.Ong").
		First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ListRequestsByProject returns the coverage requests of a project with
// their type and optional commitment preloaded
func (r *GormCoverageRepository) ListRequestsByProject(ctx context.Context, projectID uint) ([]project.CoverageRequest, error) {
	var requests []project.CoverageRequest
	if err := r.db.WithContext(ctx).
		Preload("CoverageType").
		Preload("Commitment").
		Preload("Commitment.Ong").
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// SaveRequest creates or updates a coverage request
func (r *GormCoverageRepository) SaveRequest(ctx context.Context, request *project.CoverageRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

var _ project.CoverageRepository = (*GormCoverageRepository)(nil)
