package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered farmer account.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	FullName     string    `json:"fullName" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Mobile       string    `json:"mobile" gorm:"uniqueIndex;size:10;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView is the public projection returned by auth endpoints.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Mobile   string    `json:"mobile"`
}

// View strips everything a client has no business seeing.
func (u *User) View() UserView {
	return UserView{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Mobile:   u.Mobile,
	}
}
