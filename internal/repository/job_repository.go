package repository

import (
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/response"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

type JobFilter struct {
	Category string
	Location string
	Status   string
	Page     int
	PageSize int
}

func (r *JobRepository) CreateJob(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) UpdateJob(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) DeleteJob(id string) error {
	return r.db.Delete(&model.Job{}, "id = ?", id).Error
}

func (r *JobRepository) FindJobByID(id string) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

// ListJobs returns a filtered page plus pagination metadata.
func (r *JobRepository) ListJobs(filter JobFilter) ([]model.Job, *response.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	q := r.db.Model(&model.Job{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var jobs []model.Job
	offset := (filter.Page - 1) * filter.PageSize
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&jobs).Error
	if err != nil {
		return nil, nil, err
	}

	return jobs, response.NewPagination(filter.Page, filter.PageSize, len(jobs), total), nil
}

// ActiveJobs loads the whole candidate pool for a batch run.
func (r *JobRepository) ActiveJobs() ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("status = ?", "active").Order("created_at ASC").Find(&jobs).Error
	return jobs, err
}

// SimilarJobs ranks active jobs by embedding distance to the given job.
func (r *JobRepository) SimilarJobs(embedding pgvector.Vector, excludeID uuid.UUID, topK int) ([]model.Job, error) {
	var jobs []model.Job

	// query pgvector <-> operator (Euclidean distance / cosine)
	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM jobs
        WHERE status = 'active' AND id != ?
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, excludeID, embedding, topK).Scan(&jobs).Error

	return jobs, err
}

func (r *JobRepository) IncrementPopularity(id uuid.UUID) error {
	return r.db.Model(&model.Job{}).Where("id = ?", id).
		UpdateColumn("popularity", gorm.Expr("popularity + 1")).Error
}
