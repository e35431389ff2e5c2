package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account from the 'users' table.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserCity links a user to a city they searched for. The link is referential
// only: deleting a city leaves the row behind and listing skips it.
type UserCity struct {
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_cities_pair"`
	CityID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_cities_pair"`
	CreatedAt time.Time
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued JWT back to the caller.
type TokenResponse struct {
	Token string `json:"token"`
}
