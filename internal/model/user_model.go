package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"` // id dari Supabase auth, bukan generate sendiri
	Email       string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	FullName    string    `gorm:"type:varchar(255)" json:"full_name"`
	Preferences string    `gorm:"type:jsonb;default:'{}'" json:"preferences"` // {"categories":[],"location":"","salary_min":0}
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
