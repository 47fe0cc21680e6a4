// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an account that can author posts and follow other accounts.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Posts []Post `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserSummary is the trimmed user shape embedded in feed and activity payloads.
type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Summary returns the trimmed representation of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// FollowerEntry is one row of a user's follower listing.
type FollowerEntry struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	FollowDate time.Time `json:"followDate"`
}
