package ngo

import "context"

// OngRepository defines the interface for NGO persistence
type OngRepository interface {
	// FindByID finds an NGO by its ID
	FindByID(ctx context.Context, id uint) (*Ong, error)

	// FindByName finds an NGO by its unique name
	FindByName(ctx context.Context, nombre string) (*Ong, error)

	// FindAll returns all NGOs ordered by creation
	FindAll(ctx context.Context) ([]Ong, error)

	// ExistsByName checks whether an NGO with the given name exists
	ExistsByName(ctx context.Context, nombre string) (bool, error)

	// Save creates or updates an NGO
	Save(ctx context.Context, ong *Ong) error
}
