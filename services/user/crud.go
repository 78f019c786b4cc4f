package user

import (
	"context"

	"hotelbooking/models"
	"hotelbooking/utils"
)

// GetUserByID returns the safe view of a user.
func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return user, nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Something went wrong", err)
	}
	return users, nil
}
