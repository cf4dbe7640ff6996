// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	Name         string `json:"name" gorm:"size:100"`

	// Relationships
	Sessions []Session    `json:"-" gorm:"foreignKey:UserID"`
	Alerts   []PriceAlert `json:"alerts,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// Session is an opaque server-side token authenticating subsequent requests.
// Expiry is fixed at creation; expired rows are removed lazily on read.
type Session struct {
	BaseModel
	Token     string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
