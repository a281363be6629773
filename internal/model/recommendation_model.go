package model

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is one row of a user's assembled result set. JobKey is a
// string, not uuid, because fallback entries carry synthetic "fallback_NNN" ids.
type Recommendation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	BatchRunID uuid.UUID `gorm:"type:uuid;index" json:"batch_run_id"`
	JobKey     string    `gorm:"type:varchar(64)" json:"job_key"`
	Section    string    `gorm:"type:varchar(50)" json:"section"`
	Position   int       `json:"position"` // urutan dalam flat result, mulai 0
	Score      float64   `gorm:"type:float" json:"score"`
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	Location   string    `gorm:"type:varchar(100)" json:"location"`
	IsFallback bool      `json:"is_fallback"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *Recommendation) TableName() string {
	return "recommendations"
}
