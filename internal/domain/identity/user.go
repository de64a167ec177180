package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/ongcloud/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an authenticated identity. A user is optionally
// affiliated with exactly one NGO or one oversight board, never both.
type User struct {
	shared.BaseEntity
	Nombre       string `gorm:"type:varchar(100);not null"`
	Apellido     string `gorm:"type:varchar(100);not null"`
	Edad         int    `gorm:"not null;default:0"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	OngID        *uint  `gorm:"index"`
	BoardID      *uint  `gorm:"index"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(nombre, apellido string, edad int, email, password string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(nombre) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		Nombre:       strings.TrimSpace(nombre),
		Apellido:     strings.TrimSpace(apellido),
		Edad:         edad,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
	}, nil
}

// VerifyPassword compares a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// AssignOng affiliates the user with an NGO. A user cannot belong to
// both an NGO and a board.
func (u *User) AssignOng(ongID uint) error {
	if u.BoardID != nil {
		return shared.NewDomainError("INVALID_AFFILIATION", "User already belongs to a board")
	}
	u.OngID = &ongID
	u.UpdatedAt = time.Now()
	return nil
}

// AssignBoard affiliates the user with an oversight board
func (u *User) AssignBoard(boardID uint) error {
	if u.OngID != nil {
		return shared.NewDomainError("INVALID_AFFILIATION", "User already belongs to an NGO")
	}
	u.BoardID = &boardID
	u.UpdatedAt = time.Now()
	return nil
}

// HasOng reports whether the user is affiliated with an NGO
func (u *User) HasOng() bool {
	return u.OngID != nil
}

// IsBoardMember reports whether the user belongs to an oversight board
func (u *User) IsBoardMember() bool {
	return u.BoardID != nil
}

// hashPassword hashes a plaintext password using bcrypt
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 3 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 3 characters")
	}
	return nil
}
