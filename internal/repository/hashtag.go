// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// HashtagRepository defines persistence operations for hashtags and their
// post associations.
type HashtagRepository interface {
	Create(ctx context.Context, hashtag *models.Hashtag) error
	GetByID(ctx context.Context, id uint) (*models.Hashtag, error)
	// GetByName matches case-insensitively; storage stays case-sensitive.
	GetByName(ctx context.Context, name string) (*models.Hashtag, error)
	List(ctx context.Context) ([]models.Hashtag, error)
	Update(ctx context.Context, hashtag *models.Hashtag) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	CreatePostHashtag(ctx context.Context, ph *models.PostHashtag) error
	GetPostHashtagByID(ctx context.Context, id uint) (*models.PostHashtag, error)
	// GetPostHashtagByPair returns the association for the natural key pair, or nil when none exists.
	GetPostHashtagByPair(ctx context.Context, postID, hashtagID uint) (*models.PostHashtag, error)
	ListPostHashtags(ctx context.Context) ([]models.PostHashtag, error)
	DeletePostHashtag(ctx context.Context, id uint) error
}

type hashtagRepository struct {
	db *gorm.DB
}

// NewHashtagRepository creates a new hashtag repository
func NewHashtagRepository(db *gorm.DB) HashtagRepository {
	return &hashtagRepository{db: db}
}

func (r *hashtagRepository) Create(ctx context.Context, hashtag *models.Hashtag) error {
	if err := r.db.WithContext(ctx).Create(hashtag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Hashtag with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *hashtagRepository) GetByID(ctx context.Context, id uint) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	if err := r.db.WithContext(ctx).
		Preload("PostHashtags").
		First(&hashtag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Hashtag not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &hashtag, nil
}

func (r *hashtagRepository) GetByName(ctx context.Context, name string) (*models.Hashtag, error) {
	var hashtag models.Hashtag
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&hashtag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &hashtag, nil
}

func (r *hashtagRepository) List(ctx context.Context) ([]models.Hashtag, error) {
	var hashtags []models.Hashtag
	if err := r.db.WithContext(ctx).
		Preload("PostHashtags").
		Find(&hashtags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return hashtags, nil
}

func (r *hashtagRepository) Update(ctx context.Context, hashtag *models.Hashtag) error {
	if err := r.db.WithContext(ctx).Save(hashtag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Hashtag with this name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *hashtagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Hashtag{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Hashtag not found")
	}
	return nil
}

func (r *hashtagRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Hashtag{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *hashtagRepository) CreatePostHashtag(ctx context.Context, ph *models.PostHashtag) error {
	if err := r.db.WithContext(ctx).Create(ph).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("This post is already tagged with this hashtag")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *hashtagRepository) GetPostHashtagByID(ctx context.Context, id uint) (*models.PostHashtag, error) {
	var ph models.PostHashtag
	if err := r.db.WithContext(ctx).
		Preload("Post").
		Preload("Hashtag").
		First(&ph, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post hashtag relationship not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &ph, nil
}

func (r *hashtagRepository) GetPostHashtagByPair(ctx context.Context, postID, hashtagID uint) (*models.PostHashtag, error) {
	var ph models.PostHashtag
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND hashtag_id = ?", postID, hashtagID).
		First(&ph).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &ph, nil
}

func (r *hashtagRepository) ListPostHashtags(ctx context.Context) ([]models.PostHashtag, error) {
	var phs []models.PostHashtag
	if err := r.db.WithContext(ctx).
		Preload("Post").
		Preload("Hashtag").
		Find(&phs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return phs, nil
}

func (r *hashtagRepository) DeletePostHashtag(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PostHashtag{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post hashtag relationship not found")
	}
	return nil
}
