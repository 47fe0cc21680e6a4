// Package service contains the business logic of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService provides user business logic, including the followers listing.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetByID returns one user.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Create stores a new user.
func (s *UserService) Create(ctx context.Context, user *models.User) error {
	return s.userRepo.Create(ctx, user)
}

// Update merges the given fields into an existing user.
func (s *UserService) Update(ctx context.Context, id uint, firstName, lastName, email string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if email != "" {
		user.Email = email
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

// GetFollowers returns one page of the user's active followers, newest
// follow first, plus the total count of active followers.
func (s *UserService) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerEntry, int64, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, models.NewNotFoundError("User not found")
	}

	follows, total, err := s.followRepo.ListFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	followers := make([]models.FollowerEntry, 0, len(follows))
	for _, follow := range follows {
		followers = append(followers, models.FollowerEntry{
			ID:         follow.Follower.ID,
			FirstName:  follow.Follower.FirstName,
			LastName:   follow.Follower.LastName,
			Email:      follow.Follower.Email,
			FollowDate: follow.CreatedAt,
		})
	}
	return followers, total, nil
}
