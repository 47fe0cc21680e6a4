package service

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"
)

func TestFollowSelfIsRejected(t *testing.T) {
	t.Parallel()

	svc := NewFollowService(&followRepoStub{}, &userRepoStub{
		existsFn: func(context.Context, uint) (bool, error) {
			t.Fatal("existence check should not run for self-follow")
			return false, nil
		},
	})

	_, err := svc.Follow(context.Background(), 7, 7)
	if !models.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFollowMissingFollower(t *testing.T) {
	t.Parallel()

	svc := NewFollowService(&followRepoStub{}, &userRepoStub{
		existsFn: func(_ context.Context, id uint) (bool, error) {
			return id != 1, nil
		},
	})

	_, err := svc.Follow(context.Background(), 1, 2)
	if !models.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Follower user does not exist" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestFollowDuplicateActiveEdge(t *testing.T) {
	t.Parallel()

	svc := NewFollowService(&followRepoStub{
		getActiveEdgeFn: func(context.Context, uint, uint) (*models.Follow, error) {
			return &models.Follow{ID: 42, FollowerID: 1, FollowingID: 2, IsActive: true}, nil
		},
	}, &userRepoStub{})

	_, err := svc.Follow(context.Background(), 1, 2)
	if !models.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Follow relationship already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestFollowCreatesActiveEdge(t *testing.T) {
	t.Parallel()

	var created *models.Follow
	svc := NewFollowService(&followRepoStub{
		createFn: func(_ context.Context, f *models.Follow) error {
			created = f
			return nil
		},
	}, &userRepoStub{})

	follow, err := svc.Follow(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if created == nil {
		t.Fatal("expected repository create to be called")
	}
	if !follow.IsActive {
		t.Fatal("new edge should be active")
	}
	if follow.FollowerID != 1 || follow.FollowingID != 2 {
		t.Fatalf("wrong edge: %d -> %d", follow.FollowerID, follow.FollowingID)
	}
	if follow.UnfollowedAt != nil {
		t.Fatal("new edge should not carry an unfollow timestamp")
	}
}

func TestUnfollowWithoutActiveEdge(t *testing.T) {
	t.Parallel()

	svc := NewFollowService(&followRepoStub{}, &userRepoStub{})

	err := svc.Unfollow(context.Background(), 1, 2)
	if !models.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestUnfollowDeactivatesEdge(t *testing.T) {
	t.Parallel()

	edge := &models.Follow{ID: 9, FollowerID: 1, FollowingID: 2, IsActive: true}
	var deactivated *models.Follow
	var stampedAt time.Time

	svc := NewFollowService(&followRepoStub{
		getActiveEdgeFn: func(context.Context, uint, uint) (*models.Follow, error) {
			return edge, nil
		},
		deactivateFn: func(_ context.Context, f *models.Follow, at time.Time) error {
			deactivated = f
			stampedAt = at
			return nil
		},
	}, &userRepoStub{})

	before := time.Now().UTC()
	if err := svc.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if deactivated != edge {
		t.Fatal("expected the active edge to be deactivated")
	}
	if stampedAt.Before(before) {
		t.Fatalf("unfollow timestamp %v predates call", stampedAt)
	}
}

// Re-following after an unfollow must create a fresh edge rather than fail
// on the retired row.
func TestRefollowAfterUnfollow(t *testing.T) {
	t.Parallel()

	retired := false
	svc := NewFollowService(&followRepoStub{
		getActiveEdgeFn: func(context.Context, uint, uint) (*models.Follow, error) {
			if retired {
				return nil, nil
			}
			return &models.Follow{ID: 1, FollowerID: 1, FollowingID: 2, IsActive: true}, nil
		},
		deactivateFn: func(context.Context, *models.Follow, time.Time) error {
			retired = true
			return nil
		},
	}, &userRepoStub{})

	if err := svc.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	follow, err := svc.Follow(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("re-follow: %v", err)
	}
	if !follow.IsActive {
		t.Fatal("re-follow should produce an active edge")
	}
}
