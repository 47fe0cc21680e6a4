// Package service contains the business logic of the application.
package service

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService provides follow/unfollow business logic.
//
// Follows are soft-deleted: unfollowing retires the edge (isActive=false,
// unfollowedAt stamped) instead of removing the row, so the activity
// timeline can replay follow history. Following the same user again after an
// unfollow inserts a fresh edge; retired rows accumulate as history.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a new active edge from follower to following.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	// Self-follow is rejected before any existence check.
	if followerID == followingID {
		return nil, models.NewValidationError("Users cannot follow themselves")
	}

	followerExists, err := s.userRepo.Exists(ctx, followerID)
	if err != nil {
		return nil, err
	}
	if !followerExists {
		return nil, models.NewValidationError("Follower user does not exist")
	}

	followingExists, err := s.userRepo.Exists(ctx, followingID)
	if err != nil {
		return nil, err
	}
	if !followingExists {
		return nil, models.NewValidationError("Following user does not exist")
	}

	existing, err := s.followRepo.GetActiveEdge(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Follow relationship already exists")
	}

	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		IsActive:    true,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// Unfollow retires the active edge identified by its natural key.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	follow, err := s.followRepo.GetActiveEdge(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if follow == nil {
		return models.NewNotFoundError("Follow relationship not found")
	}

	return s.followRepo.Deactivate(ctx, follow, time.Now().UTC())
}

// ListActive returns all active follow edges.
func (s *FollowService) ListActive(ctx context.Context) ([]models.Follow, error) {
	return s.followRepo.ListActive(ctx)
}

// GetByID returns one follow edge, active or retired.
func (s *FollowService) GetByID(ctx context.Context, id uint) (*models.Follow, error) {
	return s.followRepo.GetByID(ctx, id)
}

// Delete hard-deletes an edge by surrogate id. Administrative path only;
// it bypasses the soft-delete convention and erases history.
func (s *FollowService) Delete(ctx context.Context, id uint) error {
	return s.followRepo.Delete(ctx, id)
}
