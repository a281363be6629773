package model

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index:idx_app_user_applied" json:"user_id"`
	JobID      uuid.UUID `gorm:"type:uuid;index" json:"job_id"`
	EmployerID uuid.UUID `gorm:"type:uuid" json:"employer_id"` // denormalized biar dedup tidak perlu join
	AppliedAt  time.Time `gorm:"index:idx_app_user_applied" json:"applied_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
