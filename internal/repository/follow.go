// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	GetByID(ctx context.Context, id uint) (*models.Follow, error)
	// GetActiveEdge returns the active edge for the ordered pair, or nil when none exists.
	GetActiveEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	ListActive(ctx context.Context) ([]models.Follow, error)
	// Deactivate retires an edge: isActive=false, unfollowedAt stamped. The row survives.
	Deactivate(ctx context.Context, follow *models.Follow, at time.Time) error
	// Delete removes the row outright. Administrative escape hatch only;
	// the unfollow path must use Deactivate so history is preserved.
	Delete(ctx context.Context, id uint) error
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.Follow, int64, error)
	GetFollowingIDs(ctx context.Context, followerID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		// Concurrent creates can both pass the existence check; the unique
		// index on (follower, following, is_active) is the actual safety net.
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Follow relationship already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) GetByID(ctx context.Context, id uint) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Follower").
		Preload("Following").
		First(&follow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Follow relationship not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *followRepository) GetActiveEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ? AND is_active = ?", followerID, followingID, true).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no active edge
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *followRepository) ListActive(ctx context.Context) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Follower").
		Preload("Following").
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) Deactivate(ctx context.Context, follow *models.Follow, at time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(follow).
		Updates(map[string]interface{}{
			"is_active":     false,
			"unfollowed_at": at,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Follow{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Follow relationship not found")
	}
	return nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.Follow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ? AND is_active = ?", userID, true).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Where("following_id = ? AND is_active = ?", userID, true).
		Preload("Follower").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return follows, total, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND is_active = ?", followerID, true).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
