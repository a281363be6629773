package repository

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) CreateApplication(app *model.Application) error {
	return r.db.Create(app).Error
}

// RecentByUser returns applications inside the dedup lookback window.
func (r *ApplicationRepository) RecentByUser(userID uuid.UUID, since time.Time) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Where("user_id = ? AND applied_at >= ?", userID, since).Find(&apps).Error
	return apps, err
}

// CountPerDay aggregates application counts for analytics.
func (r *ApplicationRepository) CountPerDay(since time.Time) ([]DailyCount, error) {
	var rows []DailyCount
	err := r.db.Model(&model.Application{}).
		Select("DATE(applied_at) AS day, COUNT(*) AS total").
		Where("applied_at >= ?", since).
		Group("DATE(applied_at)").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

type DailyCount struct {
	Day   time.Time `json:"day"`
	Total int64     `json:"total"`
}
