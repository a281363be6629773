package model

import (
	"time"

	"github.com/google/uuid"
)

type BatchRun struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Status       string     `gorm:"type:varchar(50)" json:"status"` // "running", "completed", "failed"
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at"`
	UsersTotal   int        `json:"users_total"`
	UsersMatched int        `json:"users_matched"`
	UsersFailed  int        `json:"users_failed"`
	JobsScored   int        `json:"jobs_scored"`
	ErrorMessage string     `gorm:"type:text" json:"error_message"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (b *BatchRun) TableName() string {
	return "batch_runs"
}
