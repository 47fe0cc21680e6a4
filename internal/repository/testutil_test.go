package repository

import (
	"testing"
	"time"

	"ripple/internal/database"
	"ripple/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, first, last, email string) models.User {
	t.Helper()
	user := models.User{FirstName: first, LastName: last, Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, content string, at time.Time) models.Post {
	t.Helper()
	post := models.Post{Content: content, AuthorID: authorID}
	post.CreatedAt = at
	post.UpdatedAt = at
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func createTestLike(t *testing.T, db *gorm.DB, userID, postID uint, at time.Time) models.Like {
	t.Helper()
	like := models.Like{UserID: userID, PostID: postID}
	like.CreatedAt = at
	if err := db.Create(&like).Error; err != nil {
		t.Fatalf("create like: %v", err)
	}
	return like
}

func createTestFollow(t *testing.T, db *gorm.DB, followerID, followingID uint, at time.Time) models.Follow {
	t.Helper()
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID, IsActive: true}
	follow.CreatedAt = at
	if err := db.Create(&follow).Error; err != nil {
		t.Fatalf("create follow: %v", err)
	}
	return follow
}

func createRetiredFollow(t *testing.T, db *gorm.DB, followerID, followingID uint, at, unfollowedAt time.Time) models.Follow {
	t.Helper()
	follow := models.Follow{
		FollowerID:   followerID,
		FollowingID:  followingID,
		IsActive:     false,
		UnfollowedAt: &unfollowedAt,
	}
	follow.CreatedAt = at
	if err := db.Create(&follow).Error; err != nil {
		t.Fatalf("create retired follow: %v", err)
	}
	return follow
}
