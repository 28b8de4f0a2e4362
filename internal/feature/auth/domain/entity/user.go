// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and display metadata.
type User struct {
	// ID is the unique identifier for the user.
	// It is assigned by the store on creation and never changes.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name. It is not unique.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored lowercased.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Avatar is a gravatar URL derived from the email at creation time.
	// Display metadata only, not security relevant.
	Avatar string `gorm:"size:512"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
