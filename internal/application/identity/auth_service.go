package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/ongcloud/backend/internal/domain/identity"
	"github.com/ongcloud/backend/internal/domain/shared"
	"github.com/ongcloud/backend/internal/infrastructure/auth"
)

// AuthService handles authentication and actor resolution
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	adminEmail string
}

// NewAuthService creates a new AuthService. adminEmail identifies the
// platform administrator account.
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, adminEmail string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		adminEmail: strings.ToLower(adminEmail),
	}
}

// Login verifies credentials and issues an access token. The same
// error is returned for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(req.Username))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Incorrect email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Incorrect email or password")
	}

	token, err := s.jwtService.GenerateToken(user.Email)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}, nil
}

// ResolveActor loads the user behind a validated token subject and
// builds the application-level actor.
func (s *AuthService) ResolveActor(ctx context.Context, email string) (*Actor, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Unknown identity")
		}
		return nil, err
	}

	return &Actor{
		UserID:  user.ID,
		Email:   user.Email,
		OngID:   user.OngID,
		BoardID: user.BoardID,
		Admin:   user.Email == s.adminEmail,
	}, nil
}
