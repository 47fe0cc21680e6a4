package server

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	srv, err := newServer(&config.Config{Port: "0"}, db, nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, db
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func seedUser(t *testing.T, db *gorm.DB, first, last, email string) models.User {
	t.Helper()
	user := models.User{FirstName: first, LastName: last, Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint, content string, at time.Time) models.Post {
	t.Helper()
	post := models.Post{Content: content, AuthorID: authorID}
	post.CreatedAt = at
	post.UpdatedAt = at
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func seedFollow(t *testing.T, db *gorm.DB, followerID, followingID uint, at time.Time) models.Follow {
	t.Helper()
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID, IsActive: true}
	follow.CreatedAt = at
	if err := db.Create(&follow).Error; err != nil {
		t.Fatalf("seed follow: %v", err)
	}
	return follow
}
