package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Job struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployerID    uuid.UUID       `gorm:"type:uuid;index" json:"employer_id"`
	Title         string          `json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	Category      string          `gorm:"type:varchar(100);index" json:"category"`
	Location      string          `gorm:"type:varchar(100)" json:"location"`
	LocationScore float64         `gorm:"type:float" json:"location_score"` // 0-1, kedekatan lokasi
	SalaryMin     int             `json:"salary_min"`
	SalaryMax     int             `json:"salary_max"`
	FlexibleHours bool            `json:"flexible_hours"`
	WeekendWork   bool            `json:"weekend_work"`
	Popularity    int             `json:"popularity"` // cache jumlah aplikasi
	Status        string          `gorm:"type:varchar(50);default:active" json:"status"` // "active", "closed"
	Embedding     pgvector.Vector `gorm:"type:vector(3072)" json:"-"`                    // pakai pgvector
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
