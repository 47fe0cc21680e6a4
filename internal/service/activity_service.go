// Package service contains the business logic of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// ActivityService produces the merged activity timeline for one user.
type ActivityService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

// NewActivityService returns a new ActivityService.
func NewActivityService(userRepo repository.UserRepository, activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// GetUserActivity returns one page of the user's merged timeline plus the
// total count of qualifying events across all kinds. Unknown users are a
// not-found error, matching the followers listing.
func (s *ActivityService) GetUserActivity(ctx context.Context, userID uint, filter models.ActivityFilter, limit, offset int) ([]models.ActivityEvent, int64, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, models.NewNotFoundError("User not found")
	}

	return s.activityRepo.GetUserActivity(ctx, userID, filter, limit, offset)
}
