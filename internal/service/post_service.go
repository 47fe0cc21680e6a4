// Package service contains the business logic of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// PostService provides post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create stores a new post after verifying the author exists.
func (s *PostService) Create(ctx context.Context, content string, authorID uint) (*models.Post, error) {
	exists, err := s.userRepo.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewValidationError("Author does not exist")
	}

	post := &models.Post{
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces the content of an existing post.
func (s *PostService) Update(ctx context.Context, id uint, content string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if content != "" {
		post.Content = content
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns all posts with author and like count.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetByID returns one post with author and like count.
func (s *PostService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}

// ListByHashtag returns a page of posts carrying the named hashtag
// (case-insensitive), each annotated with its like count.
func (s *PostService) ListByHashtag(ctx context.Context, tag string, limit, offset int) ([]models.Post, error) {
	posts, err := s.postRepo.ListByHashtag(ctx, tag, limit, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	counts, err := s.postRepo.LikeCountsByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].LikeCount = counts[posts[i].ID]
	}
	return posts, nil
}
