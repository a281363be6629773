package usecase

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/repository"
	"gorm.io/gorm"
)

type AnalyticsUsecase struct {
	db      *gorm.DB
	appRepo *repository.ApplicationRepository
	runRepo *repository.BatchRunRepository
}

func NewAnalyticsUsecase(db *gorm.DB, appRepo *repository.ApplicationRepository, runRepo *repository.BatchRunRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{db: db, appRepo: appRepo, runRepo: runRepo}
}

type CategoryCount struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

type JobStats struct {
	TotalActive   int64           `json:"total_active"`
	TotalClosed   int64           `json:"total_closed"`
	PerCategory   []CategoryCount `json:"per_category"`
	AvgSalaryMin  float64         `json:"avg_salary_min"`
	FlexibleCount int64           `json:"flexible_count"`
}

func (uc *AnalyticsUsecase) Jobs() (*JobStats, error) {
	var stats JobStats
	if err := uc.db.Model(&model.Job{}).Where("status = ?", "active").Count(&stats.TotalActive).Error; err != nil {
		return nil, err
	}
	if err := uc.db.Model(&model.Job{}).Where("status = ?", "closed").Count(&stats.TotalClosed).Error; err != nil {
		return nil, err
	}
	if err := uc.db.Model(&model.Job{}).
		Select("category, COUNT(*) AS total").
		Where("status = ?", "active").
		Group("category").
		Order("total DESC").
		Scan(&stats.PerCategory).Error; err != nil {
		return nil, err
	}
	if err := uc.db.Model(&model.Job{}).
		Where("status = ? AND salary_min > 0", "active").
		Select("COALESCE(AVG(salary_min), 0)").
		Scan(&stats.AvgSalaryMin).Error; err != nil {
		return nil, err
	}
	if err := uc.db.Model(&model.Job{}).
		Where("status = ? AND flexible_hours = ?", "active", true).
		Count(&stats.FlexibleCount).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (uc *AnalyticsUsecase) Applications(days int) ([]repository.DailyCount, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	return uc.appRepo.CountPerDay(since)
}

type BatchStats struct {
	Latest *model.BatchRun  `json:"latest"`
	Recent []model.BatchRun `json:"recent"`
}

func (uc *AnalyticsUsecase) Batches() (*BatchStats, error) {
	latest, err := uc.runRepo.LatestRun()
	if err != nil {
		// belum pernah ada run bukan berarti error untuk dashboard
		latest = nil
	}
	recent, err := uc.runRepo.ListRuns(10)
	if err != nil {
		return nil, err
	}
	return &BatchStats{Latest: latest, Recent: recent}, nil
}
