// Package models contains data structures for the application's domain models.
package models

import "time"

// Hashtag represents a tag that can be attached to posts. Names are stored
// case-sensitively but looked up case-insensitively.
type Hashtag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	PostHashtags []PostHashtag `gorm:"foreignKey:HashtagID" json:"postHashtags,omitempty"`
}

// TableName specifies the table name for GORM
func (Hashtag) TableName() string {
	return "hashtags"
}

// PostHashtag is the join entity attaching a hashtag to a post.
type PostHashtag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_post_hashtags_pair" json:"postId"`
	HashtagID uint      `gorm:"not null;index;uniqueIndex:idx_post_hashtags_pair" json:"hashtagId"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Post    Post    `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Hashtag Hashtag `gorm:"foreignKey:HashtagID" json:"hashtag,omitempty"`
}

// TableName specifies the table name for GORM
func (PostHashtag) TableName() string {
	return "post_hashtags"
}
