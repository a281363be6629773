package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	EmployerID    string  `json:"employer_id" validate:"required,uuid4"`
	Title         string  `json:"title" validate:"required,min=3,max=255"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"required,max=100"`
	Location      string  `json:"location" validate:"max=100"`
	LocationScore float64 `json:"location_score" validate:"gte=0,lte=1"`
	SalaryMin     int     `json:"salary_min" validate:"gte=0"`
	SalaryMax     int     `json:"salary_max" validate:"gte=0,gtefield=SalaryMin"`
	FlexibleHours bool    `json:"flexible_hours"`
	WeekendWork   bool    `json:"weekend_work"`
}

type UpdateJobRequest struct {
	Title         string  `json:"title" validate:"omitempty,min=3,max=255"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"omitempty,max=100"`
	Location      string  `json:"location" validate:"omitempty,max=100"`
	LocationScore float64 `json:"location_score" validate:"gte=0,lte=1"`
	SalaryMin     int     `json:"salary_min" validate:"gte=0"`
	SalaryMax     int     `json:"salary_max" validate:"gte=0"`
	FlexibleHours *bool   `json:"flexible_hours"`
	WeekendWork   *bool   `json:"weekend_work"`
	Status        string  `json:"status" validate:"omitempty,oneof=active closed"`
}

type JobDTO struct {
	ID            uuid.UUID `json:"id"`
	EmployerID    uuid.UUID `json:"employer_id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	SalaryMin     int       `json:"salary_min"`
	SalaryMax     int       `json:"salary_max"`
	FlexibleHours bool      `json:"flexible_hours"`
	WeekendWork   bool      `json:"weekend_work"`
	Popularity    int       `json:"popularity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ApplyRequest struct {
	JobID string `json:"job_id" validate:"required,uuid4"`
}
