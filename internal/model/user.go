// Package model defines the GORM models and their public views.
package model

import "time"

// User is the identity record. Each identifying attribute is optional per
// deployment variant and unique when present; NULL columns do not collide
// on the unique indexes.
type User struct {
	ID           int64   `gorm:"primaryKey"`
	Username     *string `gorm:"uniqueIndex;size:50"`
	Email        *string `gorm:"uniqueIndex;size:255"`
	PhoneNumber  *string `gorm:"uniqueIndex;size:15"`
	CitizenID    *string `gorm:"uniqueIndex;size:13"`
	PasswordHash string  `gorm:"not null"`
	FirstName    string  `gorm:"size:50"`
	LastName     string  `gorm:"size:50"`
	IsActive     bool    `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the client-facing view of a User. It never carries the
// password hash.
type PublicUser struct {
	ID          int64     `json:"id"`
	Username    *string   `json:"username,omitempty"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CitizenID   *string   `json:"citizen_id,omitempty"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		CitizenID:   u.CitizenID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
