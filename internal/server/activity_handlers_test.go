package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ripple/internal/models"
)

type activityEnvelope struct {
	Data       []models.ActivityEvent `json:"data"`
	Pagination models.Pagination      `json:"pagination"`
}

func TestGetUserActivityReturnsMergedTimeline(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)

	alice := seedUser(t, db, "Alice", "Adams", "alice@example.com")
	bob := seedUser(t, db, "Bob", "Brown", "bob@example.com")

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	seedPost(t, db, alice.ID, "first", base)
	bobPost := seedPost(t, db, bob.ID, "bob post", base.Add(time.Hour))
	like := models.Like{UserID: alice.ID, PostID: bobPost.ID}
	like.CreatedAt = base.Add(24 * time.Hour)
	if err := db.Create(&like).Error; err != nil {
		t.Fatalf("seed like: %v", err)
	}
	seedFollow(t, db, alice.ID, bob.ID, base.Add(48*time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/1/activity", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env activityEnvelope
	decodeBody(t, resp, &env)

	if env.Pagination.Total != 3 {
		t.Fatalf("expected total 3, got %d", env.Pagination.Total)
	}
	if env.Pagination.Limit != 10 || env.Pagination.Offset != 0 {
		t.Fatalf("unexpected pagination defaults: %+v", env.Pagination)
	}
	if len(env.Data) != 3 {
		t.Fatalf("expected 3 events, got %d", len(env.Data))
	}

	wantKinds := []models.ActivityKind{
		models.ActivityKindFollow,
		models.ActivityKindLike,
		models.ActivityKindPost,
	}
	for i, want := range wantKinds {
		if env.Data[i].Kind != want {
			t.Fatalf("event %d: expected %s, got %s", i, want, env.Data[i].Kind)
		}
	}
}

func TestGetUserActivityUnknownUser(t *testing.T) {
	t.Parallel()

	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/999/activity", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	if body.Message != "User not found" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestGetUserActivityRejectsBadType(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)
	seedUser(t, db, "Alice", "Adams", "alice@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/1/activity?type=comment", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetUserActivityDateWindow(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)
	alice := seedUser(t, db, "Alice", "Adams", "alice@example.com")

	// One post per day over five days; the window selects the middle three.
	for d := 1; d <= 5; d++ {
		seedPost(t, db, alice.ID, "post", time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC))
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/users/1/activity?startDate=2024-03-02&endDate=2024-03-04", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var env activityEnvelope
	decodeBody(t, resp, &env)
	if env.Pagination.Total != 3 {
		t.Fatalf("expected total 3, got %d", env.Pagination.Total)
	}
	for _, ev := range env.Data {
		if ev.Timestamp.Day() < 2 || ev.Timestamp.Day() > 4 {
			t.Fatalf("event outside window: %v", ev.Timestamp)
		}
	}
}

func TestGetUserActivityRejectsBadDate(t *testing.T) {
	t.Parallel()

	app, db := setupTestApp(t)
	seedUser(t, db, "Alice", "Adams", "alice@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/users/1/activity?startDate=03-02-2024", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
