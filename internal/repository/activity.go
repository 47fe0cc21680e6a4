// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"

	"gorm.io/gorm"
)

// ActivityRepository merges a user's post/like/follow/unfollow streams into
// one timestamp-ordered timeline.
type ActivityRepository interface {
	GetUserActivity(ctx context.Context, userID uint, filter models.ActivityFilter, limit, offset int) ([]models.ActivityEvent, int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// activityRow is one row of the merged union before hydration.
type activityRow struct {
	Kind string
	ID   uint
}

// kindQuery returns the per-kind SELECT contributing to the union. Every
// subquery yields (kind, id, event_at) where event_at is the column the
// date filter and the merge ordering apply to: created_at for
// post/like/follow, unfollowed_at for unfollow.
func kindQuery(kind models.ActivityKind, userID uint, filter models.ActivityFilter) (string, []interface{}) {
	var (
		sql  string
		args []interface{}
	)

	switch kind {
	case models.ActivityKindPost:
		sql = "SELECT 'post' AS kind, id, created_at AS event_at FROM posts WHERE author_id = ?"
		args = append(args, userID)
	case models.ActivityKindLike:
		sql = "SELECT 'like' AS kind, id, created_at AS event_at FROM likes WHERE user_id = ?"
		args = append(args, userID)
	case models.ActivityKindFollow:
		sql = "SELECT 'follow' AS kind, id, created_at AS event_at FROM follows WHERE follower_id = ? AND is_active = ?"
		args = append(args, userID, true)
	case models.ActivityKindUnfollow:
		sql = "SELECT 'unfollow' AS kind, id, unfollowed_at AS event_at FROM follows WHERE follower_id = ? AND is_active = ? AND unfollowed_at IS NOT NULL"
		args = append(args, userID, false)
	}

	if filter.Start != nil {
		sql += " AND " + eventColumn(kind) + " >= ?"
		args = append(args, *filter.Start)
	}
	if filter.End != nil {
		sql += " AND " + eventColumn(kind) + " <= ?"
		args = append(args, *filter.End)
	}

	return sql, args
}

func eventColumn(kind models.ActivityKind) string {
	if kind == models.ActivityKindUnfollow {
		return "unfollowed_at"
	}
	return "created_at"
}

// GetUserActivity runs the merge in the database: the per-kind queries are
// unioned, ordered by event timestamp descending (kind then id break ties so
// pagination stays stable), and paginated over the merged sequence. The
// returned total counts the full merged set, independent of limit/offset.
func (r *activityRepository) GetUserActivity(ctx context.Context, userID uint, filter models.ActivityFilter, limit, offset int) ([]models.ActivityEvent, int64, error) {
	defer observability.TrackQuery("union_select", "activity")()

	var (
		parts []string
		args  []interface{}
	)
	for _, kind := range filter.Kinds() {
		sql, kindArgs := kindQuery(kind, userID, filter)
		parts = append(parts, sql)
		args = append(args, kindArgs...)
	}
	union := strings.Join(parts, " UNION ALL ")

	var total int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM ("+union+") AS merged", args...).
		Scan(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var rows []activityRow
	pageArgs := append(append([]interface{}{}, args...), limit, offset)
	if err := r.db.WithContext(ctx).
		Raw("SELECT kind, id FROM ("+union+") AS merged ORDER BY event_at DESC, kind ASC, id ASC LIMIT ? OFFSET ?", pageArgs...).
		Scan(&rows).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	observability.TimelineMergeRows.Observe(float64(len(rows)))

	events, err := r.hydrate(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// hydrate turns the paginated (kind, id) rows back into kind-specific
// payloads. Only the page is hydrated, so the cost stays proportional to the
// requested page size.
func (r *activityRepository) hydrate(ctx context.Context, rows []activityRow) ([]models.ActivityEvent, error) {
	var postIDs, likeIDs, followIDs []uint
	for _, row := range rows {
		switch models.ActivityKind(row.Kind) {
		case models.ActivityKindPost:
			postIDs = append(postIDs, row.ID)
		case models.ActivityKindLike:
			likeIDs = append(likeIDs, row.ID)
		case models.ActivityKindFollow, models.ActivityKindUnfollow:
			followIDs = append(followIDs, row.ID)
		}
	}

	posts := make(map[uint]models.Post, len(postIDs))
	if len(postIDs) > 0 {
		var found []models.Post
		if err := r.db.WithContext(ctx).Preload("Author").Where("id IN ?", postIDs).Find(&found).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		for _, p := range found {
			posts[p.ID] = p
		}
	}

	likes := make(map[uint]models.Like, len(likeIDs))
	if len(likeIDs) > 0 {
		var found []models.Like
		if err := r.db.WithContext(ctx).Preload("User").Where("id IN ?", likeIDs).Find(&found).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		for _, l := range found {
			likes[l.ID] = l
		}
	}

	follows := make(map[uint]models.Follow, len(followIDs))
	if len(followIDs) > 0 {
		var found []models.Follow
		if err := r.db.WithContext(ctx).Preload("Following").Where("id IN ?", followIDs).Find(&found).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		for _, f := range found {
			follows[f.ID] = f
		}
	}

	events := make([]models.ActivityEvent, 0, len(rows))
	for _, row := range rows {
		kind := models.ActivityKind(row.Kind)
		switch kind {
		case models.ActivityKindPost:
			p, ok := posts[row.ID]
			if !ok {
				continue
			}
			author := p.Author.Summary()
			events = append(events, models.ActivityEvent{
				Kind:      kind,
				ID:        p.ID,
				Timestamp: p.CreatedAt,
				Content:   p.Content,
				Author:    &author,
			})
		case models.ActivityKindLike:
			l, ok := likes[row.ID]
			if !ok {
				continue
			}
			user := l.User.Summary()
			events = append(events, models.ActivityEvent{
				Kind:      kind,
				ID:        l.ID,
				Timestamp: l.CreatedAt,
				PostID:    l.PostID,
				User:      &user,
			})
		case models.ActivityKindFollow, models.ActivityKindUnfollow:
			f, ok := follows[row.ID]
			if !ok {
				continue
			}
			ts := f.CreatedAt
			if kind == models.ActivityKindUnfollow && f.UnfollowedAt != nil {
				ts = *f.UnfollowedAt
			}
			target := f.Following.Summary()
			active := f.IsActive
			events = append(events, models.ActivityEvent{
				Kind:      kind,
				ID:        f.ID,
				Timestamp: ts,
				IsActive:  &active,
				Target:    &target,
			})
		}
	}
	return events, nil
}
