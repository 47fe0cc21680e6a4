package models

import "time"

// ActivityKind tags one entry of the merged activity timeline.
type ActivityKind string

const (
	// ActivityKindPost is a post authored by the user.
	ActivityKindPost ActivityKind = "post"
	// ActivityKindLike is a like placed by the user.
	ActivityKindLike ActivityKind = "like"
	// ActivityKindFollow is a currently active follow edge of the user.
	ActivityKindFollow ActivityKind = "follow"
	// ActivityKindUnfollow is a retired follow edge of the user.
	ActivityKindUnfollow ActivityKind = "unfollow"
)

// AllActivityKinds lists every kind in the order used for deterministic
// tie-breaking of equal timestamps.
var AllActivityKinds = []ActivityKind{
	ActivityKindFollow,
	ActivityKindLike,
	ActivityKindPost,
	ActivityKindUnfollow,
}

// ParseActivityKind validates a type filter string.
func ParseActivityKind(s string) (ActivityKind, bool) {
	switch ActivityKind(s) {
	case ActivityKindPost, ActivityKindLike, ActivityKindFollow, ActivityKindUnfollow:
		return ActivityKind(s), true
	}
	return "", false
}

// ActivityEvent is one tagged variant of the merged timeline. Only the
// fields belonging to the event's kind are populated:
//
//	post     -> Content, Author
//	like     -> PostID, User
//	follow   -> IsActive (true), Target
//	unfollow -> IsActive (false), Target
//
// Timestamp is the event's effective time: CreatedAt for post/like/follow,
// UnfollowedAt for unfollow.
type ActivityEvent struct {
	Kind      ActivityKind `json:"type"`
	ID        uint         `json:"id"`
	Timestamp time.Time    `json:"timestamp"`

	Content string       `json:"content,omitempty"`
	Author  *UserSummary `json:"author,omitempty"`

	PostID uint         `json:"postId,omitempty"`
	User   *UserSummary `json:"user,omitempty"`

	IsActive *bool        `json:"isActive,omitempty"`
	Target   *UserSummary `json:"target,omitempty"`
}

// ActivityFilter bounds the timeline query. Kind narrows the merge to a
// single event kind; Start/End are inclusive bounds on the effective
// timestamp.
type ActivityFilter struct {
	Kind  *ActivityKind
	Start *time.Time
	End   *time.Time
}

// Kinds returns the kinds selected by the filter.
func (f ActivityFilter) Kinds() []ActivityKind {
	if f.Kind != nil {
		return []ActivityKind{*f.Kind}
	}
	return AllActivityKinds
}
