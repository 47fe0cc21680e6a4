// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	// ListByAuthors returns one page of posts by the given authors, newest
	// first, with the associations the feed shape needs preloaded. The count
	// covers all matching rows, not the page.
	ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]models.Post, int64, error)
	// ListByHashtag returns posts tagged with the named hashtag,
	// case-insensitively, paginated at the storage layer.
	ListByHashtag(ctx context.Context, tag string, limit, offset int) ([]models.Post, error)
	LikeCountsByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}
	post.LikeCount = len(post.Likes)
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range posts {
		posts[i].LikeCount = len(posts[i].Likes)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post not found")
	}
	return nil
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]models.Post, int64, error) {
	defer observability.TrackQuery("feed_page", "posts")()

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id IN ?", authorIDs).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Preload("Author").
		Preload("Likes").
		Preload("PostHashtags.Hashtag").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	for i := range posts {
		posts[i].LikeCount = len(posts[i].Likes)
	}
	return posts, total, nil
}

func (r *postRepository) ListByHashtag(ctx context.Context, tag string, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
		Where("LOWER(hashtags.name) = LOWER(?)", tag).
		Preload("Author").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) LikeCountsByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint
		Count  int
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
