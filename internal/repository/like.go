// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	GetByID(ctx context.Context, id uint) (*models.Like, error)
	// GetByUserAndPost returns the like for the natural key pair, or nil when none exists.
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error)
	List(ctx context.Context) ([]models.Like, error)
	Delete(ctx context.Context, id uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("User has already liked this post")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Like not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) List(ctx context.Context) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Like{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Like not found")
	}
	return nil
}
