package repository

import (
	"github.com/fadilmartias/jobmatch/internal/model"
	"gorm.io/gorm"
)

type BatchRunRepository struct {
	db *gorm.DB
}

func NewBatchRunRepository(db *gorm.DB) *BatchRunRepository {
	return &BatchRunRepository{db}
}

func (r *BatchRunRepository) CreateRun(run *model.BatchRun) error {
	return r.db.Create(run).Error
}

func (r *BatchRunRepository) UpdateRun(run *model.BatchRun) error {
	return r.db.Save(run).Error
}

func (r *BatchRunRepository) FindRunByID(id string) (*model.BatchRun, error) {
	var run model.BatchRun
	err := r.db.First(&run, "id = ?", id).Error
	return &run, err
}

func (r *BatchRunRepository) LatestRun() (*model.BatchRun, error) {
	var run model.BatchRun
	err := r.db.Order("started_at DESC").First(&run).Error
	return &run, err
}

func (r *BatchRunRepository) ListRuns(limit int) ([]model.BatchRun, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var runs []model.BatchRun
	err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
