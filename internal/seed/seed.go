// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var hashtagNames = []string{
	"golang", "coding", "coffee", "music", "travel", "fitness", "books",
	"photography", "gaming", "food", "movies", "nature", "startup", "devops",
}

// Seed populates the database with test data: users, posts, a follow mesh
// with some retired edges, likes and hashtags.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	posts, err := createPosts(db, r, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	follows, err := createFollows(db, r, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("%d follow relationships created", follows)

	likes, err := createLikes(db, r, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("%d likes created", likes)

	tags, err := createHashtags(db, r, posts)
	if err != nil {
		return fmt.Errorf("failed to create hashtags: %w", err)
	}
	log.Printf("%d hashtags created and attached", tags)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE post_hashtags, hashtags, likes, follows, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// backdated returns a random timestamp within the last 90 days.
func backdated(r *rand.Rand) time.Time {
	offset := time.Duration(r.Intn(90*24)) * time.Hour
	return time.Now().UTC().Add(-offset)
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		user := models.User{
			FirstName: first,
			LastName:  last,
			Email: fmt.Sprintf("%s.%s.%d@%s",
				strings.ToLower(first), strings.ToLower(last), i, gofakeit.DomainName()),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, r *rand.Rand, users []models.User, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		post := models.Post{
			Content:  gofakeit.Paragraph(1, 2, 8, " "),
			AuthorID: author.ID,
		}
		post.CreatedAt = backdated(r)
		post.UpdatedAt = post.CreatedAt
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createFollows builds a follow mesh: each user follows a handful of others.
// Roughly one in five edges is retired again so activity timelines contain
// unfollow events.
func createFollows(db *gorm.DB, r *rand.Rand, users []models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	created := 0
	for _, follower := range users {
		targets := r.Intn(5) + 1
		seen := map[uint]bool{follower.ID: true}
		for j := 0; j < targets; j++ {
			following := users[r.Intn(len(users))]
			if seen[following.ID] {
				continue
			}
			seen[following.ID] = true

			follow := models.Follow{
				FollowerID:  follower.ID,
				FollowingID: following.ID,
				IsActive:    true,
			}
			follow.CreatedAt = backdated(r)

			if r.Intn(5) == 0 {
				unfollowedAt := follow.CreatedAt.Add(time.Duration(r.Intn(72)+1) * time.Hour)
				follow.IsActive = false
				follow.UnfollowedAt = &unfollowedAt
			}

			if err := db.Create(&follow).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createLikes(db *gorm.DB, r *rand.Rand, users []models.User, posts []models.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	created := 0
	for _, user := range users {
		likes := r.Intn(6)
		seen := map[uint]bool{}
		for j := 0; j < likes; j++ {
			post := posts[r.Intn(len(posts))]
			if seen[post.ID] {
				continue
			}
			seen[post.ID] = true

			like := models.Like{
				UserID: user.ID,
				PostID: post.ID,
			}
			// Likes land after the post they target.
			like.CreatedAt = post.CreatedAt.Add(time.Duration(r.Intn(48)+1) * time.Hour)
			if err := db.Create(&like).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createHashtags(db *gorm.DB, r *rand.Rand, posts []models.Post) (int, error) {
	hashtags := make([]models.Hashtag, 0, len(hashtagNames))
	for _, name := range hashtagNames {
		tag := models.Hashtag{Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return 0, err
		}
		hashtags = append(hashtags, tag)
	}

	for _, post := range posts {
		count := r.Intn(3)
		seen := map[uint]bool{}
		for j := 0; j < count; j++ {
			tag := hashtags[r.Intn(len(hashtags))]
			if seen[tag.ID] {
				continue
			}
			seen[tag.ID] = true

			ph := models.PostHashtag{
				PostID:    post.ID,
				HashtagID: tag.ID,
			}
			if err := db.Create(&ph).Error; err != nil {
				return len(hashtags), err
			}
		}
	}
	return len(hashtags), nil
}
