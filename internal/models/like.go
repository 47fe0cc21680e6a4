// Package models contains data structures for the application's domain models.
package models

import "time"

// Like represents a user liking a post. Unlike follows, likes keep no
// history: an unlike hard-deletes the row.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}
