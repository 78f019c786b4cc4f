package user

import (
	"context"
	"errors"
	"strings"
	"time"

	userRepo "hotelbooking/database/repository/user"
	"hotelbooking/models"
	"hotelbooking/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser hashes the password, persists the user and returns the new
// user's ID and token. Field rules are enforced by the binding tags on
// UserRegistration; only cross-record checks happen here.
func (s *DefaultUserService) RegisterUser(ctx context.Context, reg models.UserRegistration) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, &user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, utils.NewConflictError("User already exists")
		}
		return nil, utils.NewInternalError("Something went wrong", err)
	}

	token, err := s.Tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}

	utils.GetLogger().Info("User registered", zap.String("userId", user.ID))
	return &AuthResponse{ID: user.ID, Token: token}, nil
}

// AuthenticateUser verifies the user's credentials. Unknown emails and wrong
// passwords get the same answer.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: Failed to fetch user", zap.Error(err))
		return nil, utils.NewInternalError("Something went wrong", err)
	}
	if userRec == nil {
		return nil, utils.NewValidationError("Invalid login details")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewValidationError("Invalid login details")
	}

	token, err := s.Tokens.GenerateToken(userRec.ID)
	if err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}
	return &AuthResponse{ID: userRec.ID, Token: token}, nil
}

// RevokeToken is best effort: an unparseable token has nothing left to revoke.
func (s *DefaultUserService) RevokeToken(ctx context.Context, token string) error {
	if s.Denylist == nil || token == "" {
		return nil
	}
	_, exp, err := s.Tokens.ExtractIDFromToken(token)
	if err != nil {
		return nil
	}
	if err := s.Denylist.Revoke(ctx, utils.HashToken(token), time.Until(exp)); err != nil {
		return utils.NewInternalError("Something went wrong", err)
	}
	return nil
}
