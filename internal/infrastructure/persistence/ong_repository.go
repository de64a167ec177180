package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/ngo"
	"github.com/ongcloud/backend/internal/domain/shared"
)

// GormOngRepository implements ngo.OngRepository using GORM
type GormOngRepository struct {
	db *gorm.DB
}

// NewGormOngRepository creates a new GormOngRepository
func NewGormOngRepository(db *gorm.DB) *GormOngRepository {
	return &GormOngRepository{db: db}
}

// FindByID finds an NGO by its ID
func (r *GormOngRepository) FindByID(ctx context.Context, id uint) (*ngo.Ong, error) {
	var org ngo.Ong
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// FindByName finds an NGO by its unique name
func (r *GormOngRepository) FindByName(ctx context.Context, nombre string) (*ngo.Ong, error) {
	var org ngo.Ong
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// FindAll returns all NGOs ordered by creation
func (r *GormOngRepository) FindAll(ctx context.Context) ([]ngo.Ong, error) {
	var ongs []ngo.Ong
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ongs).Error; err != nil {
		return nil, err
	}
	return ongs, nil
}

// ExistsByName checks whether an NGO with the given name exists
func (r *GormOngRepository) ExistsByName(ctx context.Context, nombre string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ngo.Ong{}).
		Where("nombre = ?", nombre).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an NGO
func (r *GormOngRepository) Save(ctx context.Context, org *ngo.Ong) error {
	return r.db.WithContext(ctx).Save(org).Error
}

var _ ngo.OngRepository = (*GormOngRepository)(nil)
