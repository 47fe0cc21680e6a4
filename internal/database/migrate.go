package database

import (
	"fmt"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// RegisteredModels lists every model covered by auto-migration, dependency
// order first so foreign keys resolve.
func RegisteredModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Like{},
		&models.Hashtag{},
		&models.PostHashtag{},
	}
}

// Migrate runs GORM auto-migration for all registered models, then applies
// the constraints GORM tags cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(RegisteredModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	// One active edge per ordered pair; retired rows are unconstrained so a
	// user can follow and unfollow the same account repeatedly. Partial
	// index syntax is shared by PostgreSQL and SQLite.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_follows_active_edge ON follows (follower_id, following_id) WHERE is_active",
	).Error; err != nil {
		return fmt.Errorf("creating follows active edge index: %w", err)
	}
	return nil
}
