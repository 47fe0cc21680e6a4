package service

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"
)

func TestGetFeedMissingUserIsValidationError(t *testing.T) {
	t.Parallel()

	svc := NewFeedService(&userRepoStub{
		existsFn: func(context.Context, uint) (bool, error) { return false, nil },
	}, &followRepoStub{}, &postRepoStub{})

	_, _, err := svc.GetFeed(context.Background(), 1, 10, 0)
	if !models.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetFeedFollowingNobody(t *testing.T) {
	t.Parallel()

	svc := NewFeedService(&userRepoStub{}, &followRepoStub{
		getFollowingIDsFn: func(context.Context, uint) ([]uint, error) {
			return nil, nil
		},
	}, &postRepoStub{
		listByAuthorsFn: func(context.Context, []uint, int, int) ([]models.Post, int64, error) {
			t.Fatal("post listing should not run for an empty following set")
			return nil, 0, nil
		},
	})

	feed, total, err := svc.GetFeed(context.Background(), 1, 10, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if feed == nil {
		t.Fatal("feed should be an empty slice, not nil")
	}
	if len(feed) != 0 || total != 0 {
		t.Fatalf("expected empty feed, got %d posts total %d", len(feed), total)
	}
}

func TestGetFeedShapesPosts(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	author := models.User{ID: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	posts := []models.Post{
		{
			ID:        10,
			Content:   "hello world",
			AuthorID:  2,
			Author:    author,
			CreatedAt: now,
			UpdatedAt: now,
			Likes:     []models.Like{{ID: 1, UserID: 3, PostID: 10}, {ID: 2, UserID: 4, PostID: 10}},
			PostHashtags: []models.PostHashtag{
				{ID: 1, PostID: 10, HashtagID: 1, Hashtag: models.Hashtag{ID: 1, Name: "golang"}},
				{ID: 2, PostID: 10, HashtagID: 1, Hashtag: models.Hashtag{ID: 1, Name: "golang"}},
				{ID: 3, PostID: 10, HashtagID: 2, Hashtag: models.Hashtag{ID: 2, Name: "coffee"}},
			},
		},
	}

	var requestedAuthors []uint
	svc := NewFeedService(&userRepoStub{}, &followRepoStub{
		getFollowingIDsFn: func(context.Context, uint) ([]uint, error) {
			return []uint{2}, nil
		},
	}, &postRepoStub{
		listByAuthorsFn: func(_ context.Context, authorIDs []uint, _, _ int) ([]models.Post, int64, error) {
			requestedAuthors = authorIDs
			return posts, 25, nil
		},
	})

	feed, total, err := svc.GetFeed(context.Background(), 1, 10, 0)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if total != 25 {
		t.Fatalf("expected total 25, got %d", total)
	}
	if len(requestedAuthors) != 1 || requestedAuthors[0] != 2 {
		t.Fatalf("expected posts by author 2, requested %v", requestedAuthors)
	}
	if len(feed) != 1 {
		t.Fatalf("expected one feed post, got %d", len(feed))
	}

	fp := feed[0]
	if fp.ID != 10 || fp.Content != "hello world" {
		t.Fatalf("wrong post: %+v", fp)
	}
	if fp.Author.ID != 2 || fp.Author.FirstName != "Ada" {
		t.Fatalf("wrong author summary: %+v", fp.Author)
	}
	if fp.LikeCount != 2 {
		t.Fatalf("expected like count 2, got %d", fp.LikeCount)
	}
	if len(fp.Hashtags) != 2 || fp.Hashtags[0] != "golang" || fp.Hashtags[1] != "coffee" {
		t.Fatalf("expected deduplicated hashtags, got %v", fp.Hashtags)
	}
}
