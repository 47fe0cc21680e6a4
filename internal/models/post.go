// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a piece of content authored by a user.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	AuthorID uint   `gorm:"not null;index" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	// LikeCount is not persisted; computed at query time
	LikeCount int       `gorm:"-" json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Likes        []Like        `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	PostHashtags []PostHashtag `gorm:"foreignKey:PostID" json:"postHashtags,omitempty"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}

// FeedPost is the shape of a post inside the /feed response.
type FeedPost struct {
	ID        uint        `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Author    UserSummary `json:"author"`
	LikeCount int         `json:"likeCount"`
	Hashtags  []string    `json:"hashtags"`
}
