package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName     string    `json:"firstName" gorm:"not null"`
	LastName      string    `json:"lastName" gorm:"not null"`
	Email         string    `json:"email" gorm:"unique;not null"`
	Password      string    `json:"-" gorm:"not null"`
	Phone         string    `json:"phone"`
	ProfileImage  string    `json:"profileImage"`
	Bio           string    `json:"bio" gorm:"type:text"`
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	EmailVerified bool      `json:"emailVerified" gorm:"default:false"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserSummary is the bounded slice of user fields embedded in event and
// booking listings.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profileImage,omitempty"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profileImage"`
}
