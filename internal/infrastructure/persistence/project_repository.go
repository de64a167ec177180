package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/project"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// GormProjectRepository implements project.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	var proj project.Project
	if err := r.db.WithContext(ctx).First(&proj, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &proj, nil
}

// FindByName finds a project by its unique name
func (r *GormProjectRepository) FindByName(ctx context.Context, nombre string) (*project.Project, error) {
	var proj project.Project
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&proj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &proj, nil
}

// FindAll returns all projects ordered by creation
func (r *GormProjectRepository) FindAll(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ExistsByName checks whether a project with the given name exists
func (r *GormProjectRepository) ExistsByName(ctx context.Context, nombre string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&project.Project{}).
		Where("nombre = ?", nombre).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, proj *project.Project) error {
	return r.db.WithContext(ctx).Save(proj).Error
}

// AddParticipant records an NGO joining a project
func (r *GormProjectRepository) AddParticipant(ctx context.Context, projectID, ongID uint) error {
	row := project.Participation{ProjectID: projectID, OngID: ongID}
	return r.db.WithContext(ctx).Create(&row).Error
}

// IsParticipant checks whether the NGO already participates in the project
func (r *GormProjectRepository) IsParticipant(ctx context.Context, projectID, ongID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&project.Participation{}).
		Where("project_id = ? AND ong_id = ?", projectID, ongID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListParticipants returns the participant NGOs in association order
func (r *GormProjectRepository) ListParticipants(ctx context.Context, projectID uint) ([]ngo.Ong, error) {
	var ongs []ngo.Ong
	if err := r.db.WithContext(ctx).
		Joins("JOIN ong_proyecto_participa ON ong_proyecto_participa.ong_id = ongs.id").
		Where("ong_proyecto_participa.project_id = ?", projectID).
		Order("ong_proyecto_participa.id ASC").
		Find(&ongs).Error; err != nil {
		return nil, err
	}
	return ongs, nil
}

// SaveWorkPlan creates a work plan under a project
func (r *GormProjectRepository) SaveWorkPlan(ctx context.Context, plan *project.WorkPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// ListStages returns all stages of a project
func (r *GormProjectRepository) ListStages(ctx context.Context, projectID uint) ([]project.Stage, error) {
	var stages []project.Stage
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// FindStage finds a stage of a project by its ID
func (r *GormProjectRepository) FindStage(ctx context.Context, projectID, stageID uint) (*project.Stage, error) {
	var stage project.Stage
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND id = ?", projectID, stageID).
		First(&stage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stage, nil
}

// SaveStage creates or updates a stage
func (r *GormProjectRepository) SaveStage(ctx context.Context, stage *project.Stage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

var _ project.ProjectRepository = (*GormProjectRepository)(nil)
