package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/board"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// GormBoardRepository implements board.BoardRepository using GORM
type GormBoardRepository struct {
	db *gorm.DB
}

// NewGormBoardRepository creates a new GormBoardRepository
func NewGormBoardRepository(db *gorm.DB) *GormBoardRepository {
	return &GormBoardRepository{db: db}
}

// FindByID finds a board by its ID
func (r *GormBoardRepository) FindByID(ctx context.Context, id uint) (*board.Board, error) {
	var b board.Board
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByName finds a board by its unique name
func (r *GormBoardRepository) FindByName(ctx context.Context, nombre string) (*board.Board, error) {
	var b board.Board
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Save creates or updates a board
func (r *GormBoardRepository) Save(ctx context.Context, b *board.Board) error {
	return r.db.WithContext(ctx).Save(b).Error
}

var _ board.BoardRepository = (*GormBoardRepository)(nil)

// GormObservationRepository implements board.ObservationRepository using GORM
type GormObservationRepository struct {
	db *gorm.DB
}

// NewGormObservationRepository creates a new GormObservationRepository
func NewGormObservationRepository(db *gorm.DB) *GormObservationRepository {
	return &GormObservationRepository{db: db}
}

// FindAll returns all observations with their project and board preloaded
func (r *GormObservationRepository) FindAll(ctx context.Context) ([]board.Observation, error) {
	var observations []board.Observation
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Board").
		Order("id ASC").
		Find(&observations).Error; err != nil {
		return nil, err
	}
	return observations, nil
}

// FindByProject returns the observations of a project with their board preloaded
func (r *GormObservationRepository) FindByProject(ctx context.Context, projectID uint) ([]board.Observation, error) {
	var observations []board.Observation
	if err := r.db.WithContext(ctx).
		Preload("Board").
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&observations).Error; err != nil {
		return nil, err
	}
	return observations, nil
}

// Save creates an observation
func (r *GormObservationRepository) Save(ctx context.Context, o *board.Observation) error {
	return r.db.WithContext(ctx).Save(o).Error
}

var _ board.ObservationRepository = (*GormObservationRepository)(nil)
