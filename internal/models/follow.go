// Package models contains data structures for the application's domain models.
package models

import "time"

// Follow represents a directed follower relationship between two users.
//
// An unfollow never deletes the row: it flips IsActive to false and stamps
// UnfollowedAt, so follow history survives for the activity timeline. A
// partial unique index (see database.Migrate) allows at most one active edge
// per ordered pair while any number of retired rows accumulate.
type Follow struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FollowerID   uint       `gorm:"not null;index:idx_follows_edge" json:"followerId"`
	FollowingID  uint       `gorm:"not null;index:idx_follows_edge" json:"followingId"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	UnfollowedAt *time.Time `json:"unfollowedAt"`
	CreatedAt    time.Time  `json:"createdAt"`

	// Relationships
	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
