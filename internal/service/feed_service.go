// Package service contains the business logic of the application.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FeedService builds the personalized feed: posts authored by accounts the
// requesting user actively follows, newest first.
type FeedService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(userRepo repository.UserRepository, followRepo repository.FollowRepository, postRepo repository.PostRepository) *FeedService {
	return &FeedService{
		userRepo:   userRepo,
		followRepo: followRepo,
		postRepo:   postRepo,
	}
}

// GetFeed returns one page of feed posts plus the total count of posts by
// followed authors. A user following nobody gets an empty page with total 0.
//
// A nonexistent user is a validation error here, not a not-found: the feed
// endpoint has always answered 400 for it and clients depend on that.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, limit, offset int) ([]models.FeedPost, int64, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, models.NewValidationError("User does not exist")
	}

	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []models.FeedPost{}, 0, nil
	}

	posts, total, err := s.postRepo.ListByAuthors(ctx, followingIDs, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		feed = append(feed, models.FeedPost{
			ID:        post.ID,
			Content:   post.Content,
			CreatedAt: post.CreatedAt,
			UpdatedAt: post.UpdatedAt,
			Author:    post.Author.Summary(),
			LikeCount: len(post.Likes),
			Hashtags:  hashtagNames(post.PostHashtags),
		})
	}
	return feed, total, nil
}

// hashtagNames extracts the deduplicated tag names attached to a post.
func hashtagNames(phs []models.PostHashtag) []string {
	names := make([]string, 0, len(phs))
	seen := make(map[string]struct{}, len(phs))
	for _, ph := range phs {
		if ph.Hashtag.Name == "" {
			continue
		}
		if _, ok := seen[ph.Hashtag.Name]; ok {
			continue
		}
		seen[ph.Hashtag.Name] = struct{}{}
		names = append(names, ph.Hashtag.Name)
	}
	return names
}
