package identity

import "context"

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail finds a user by its unique email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByIDs finds all users whose ID is in the given set
	FindByIDs(ctx context.Context, ids []uint) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
