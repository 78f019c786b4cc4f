package user

import (
	"context"

	userRepo "hotelbooking/database/repository/user"
	"hotelbooking/models"
	"hotelbooking/utils"
)

// AuthResponse contains only the user's ID and the session token.
type AuthResponse struct {
	ID    string `json:"userId"`
	Token string `json:"-"`
}

// UserService defines business logic for user operations.
type UserService interface {
	// RegisterUser validates the registration, creates the user and issues a session token.
	RegisterUser(ctx context.Context, reg models.UserRegistration) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and issues a session token.
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	// RevokeToken denylists a session token until it would have expired.
	RevokeToken(ctx context.Context, token string) error
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	// GetAllUsers lists users without password hashes.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenManager
	// Denylist is optional; without it logout only clears the cookie.
	Denylist utils.TokenDenylist
}
