package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"_id" gorm:"primaryKey"`
	LoginName    string    `json:"login_name" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	Occupation   string    `json:"occupation,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// UserProjection is the minimal identity returned wherever a user is
// referenced by other data (login response, user list, comment authors).
type UserProjection struct {
	ID        uint   `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserProfile is the full public profile, without credentials.
type UserProfile struct {
	ID          uint   `json:"_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Location:    u.Location,
		Description: u.Description,
		Occupation:  u.Occupation,
	}
}
