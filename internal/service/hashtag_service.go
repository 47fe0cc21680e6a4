// Package service contains the business logic of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// HashtagService provides hashtag and post-tagging business logic.
type HashtagService struct {
	hashtagRepo repository.HashtagRepository
	postRepo    repository.PostRepository
}

// NewHashtagService returns a new HashtagService.
func NewHashtagService(hashtagRepo repository.HashtagRepository, postRepo repository.PostRepository) *HashtagService {
	return &HashtagService{
		hashtagRepo: hashtagRepo,
		postRepo:    postRepo,
	}
}

// Create stores a new hashtag. Names are unique, compared case-insensitively.
func (s *HashtagService) Create(ctx context.Context, name string) (*models.Hashtag, error) {
	existing, err := s.hashtagRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Hashtag with this name already exists")
	}

	hashtag := &models.Hashtag{Name: name}
	if err := s.hashtagRepo.Create(ctx, hashtag); err != nil {
		return nil, err
	}
	return hashtag, nil
}

// Update renames a hashtag, keeping names unique across other rows.
func (s *HashtagService) Update(ctx context.Context, id uint, name string) (*models.Hashtag, error) {
	hashtag, err := s.hashtagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		existing, err := s.hashtagRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, models.NewValidationError("Hashtag with this name already exists")
		}
		hashtag.Name = name
	}

	if err := s.hashtagRepo.Update(ctx, hashtag); err != nil {
		return nil, err
	}
	return hashtag, nil
}

// List returns all hashtags.
func (s *HashtagService) List(ctx context.Context) ([]models.Hashtag, error) {
	return s.hashtagRepo.List(ctx)
}

// GetByID returns one hashtag.
func (s *HashtagService) GetByID(ctx context.Context, id uint) (*models.Hashtag, error) {
	return s.hashtagRepo.GetByID(ctx, id)
}

// Delete removes a hashtag.
func (s *HashtagService) Delete(ctx context.Context, id uint) error {
	return s.hashtagRepo.Delete(ctx, id)
}

// TagPost attaches a hashtag to a post. Each (post, hashtag) pair can exist
// at most once.
func (s *HashtagService) TagPost(ctx context.Context, postID, hashtagID uint) (*models.PostHashtag, error) {
	postExists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !postExists {
		return nil, models.NewValidationError("Post does not exist")
	}

	hashtagExists, err := s.hashtagRepo.Exists(ctx, hashtagID)
	if err != nil {
		return nil, err
	}
	if !hashtagExists {
		return nil, models.NewValidationError("Hashtag does not exist")
	}

	existing, err := s.hashtagRepo.GetPostHashtagByPair(ctx, postID, hashtagID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("This post is already tagged with this hashtag")
	}

	ph := &models.PostHashtag{
		PostID:    postID,
		HashtagID: hashtagID,
	}
	if err := s.hashtagRepo.CreatePostHashtag(ctx, ph); err != nil {
		return nil, err
	}
	return ph, nil
}

// UntagPost removes the association identified by its natural key.
func (s *HashtagService) UntagPost(ctx context.Context, postID, hashtagID uint) error {
	ph, err := s.hashtagRepo.GetPostHashtagByPair(ctx, postID, hashtagID)
	if err != nil {
		return err
	}
	if ph == nil {
		return models.NewNotFoundError("Post hashtag relationship not found")
	}

	return s.hashtagRepo.DeletePostHashtag(ctx, ph.ID)
}

// ListPostHashtags returns all post-hashtag associations.
func (s *HashtagService) ListPostHashtags(ctx context.Context) ([]models.PostHashtag, error) {
	return s.hashtagRepo.ListPostHashtags(ctx)
}

// GetPostHashtagByID returns one association.
func (s *HashtagService) GetPostHashtagByID(ctx context.Context, id uint) (*models.PostHashtag, error) {
	return s.hashtagRepo.GetPostHashtagByID(ctx, id)
}

// DeletePostHashtag removes an association by surrogate id.
func (s *HashtagService) DeletePostHashtag(ctx context.Context, id uint) error {
	return s.hashtagRepo.DeletePostHashtag(ctx, id)
}
