// Package service contains the business logic of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// LikeService provides like/unlike business logic. A user can like a post
// at most once; unliking hard-deletes the row, no history is kept.
type LikeService struct {
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository, userRepo repository.UserRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// Like records that the user liked the post.
func (s *LikeService) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, models.NewValidationError("User does not exist")
	}

	postExists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !postExists {
		return nil, models.NewValidationError("Post does not exist")
	}

	existing, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("User has already liked this post")
	}

	like := &models.Like{
		UserID: userID,
		PostID: postID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// Unlike removes the like identified by its natural key.
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint) error {
	like, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	if like == nil {
		return models.NewNotFoundError("Like not found")
	}

	return s.likeRepo.Delete(ctx, like.ID)
}

// List returns all likes with their user and post loaded.
func (s *LikeService) List(ctx context.Context) ([]models.Like, error) {
	return s.likeRepo.List(ctx)
}

// GetByID returns one like.
func (s *LikeService) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	return s.likeRepo.GetByID(ctx, id)
}

// Delete hard-deletes a like by surrogate id.
func (s *LikeService) Delete(ctx context.Context, id uint) error {
	return s.likeRepo.Delete(ctx, id)
}
