// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Name is unique and immutable after
// registration. PasswordRecord holds the salted credential record and is
// opaque to everything except the auth package.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"unique;not null" json:"name"`
	PasswordRecord string         `gorm:"not null" json:"-"`
	Email          string         `json:"email,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Posts          []Post         `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
