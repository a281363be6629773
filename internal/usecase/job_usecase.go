package usecase

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/repository"
	"github.com/fadilmartias/jobmatch/internal/response"
	"github.com/google/uuid"
)

type JobUsecase struct {
	jobRepo *repository.JobRepository
	appRepo *repository.ApplicationRepository
}

func NewJobUsecase(jobRepo *repository.JobRepository, appRepo *repository.ApplicationRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, appRepo: appRepo}
}

func (uc *JobUsecase) Create(job *model.Job) error {
	if job.Status == "" {
		job.Status = "active"
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()
	return uc.jobRepo.CreateJob(job)
}

func (uc *JobUsecase) Update(job *model.Job) error {
	job.UpdatedAt = time.Now()
	return uc.jobRepo.UpdateJob(job)
}

func (uc *JobUsecase) Delete(id string) error {
	return uc.jobRepo.DeleteJob(id)
}

func (uc *JobUsecase) Get(id string) (*model.Job, error) {
	return uc.jobRepo.FindJobByID(id)
}

func (uc *JobUsecase) List(filter repository.JobFilter) ([]model.Job, *response.Pagination, error) {
	return uc.jobRepo.ListJobs(filter)
}

// Similar returns the nearest active jobs by embedding distance.
func (uc *JobUsecase) Similar(id string, topK int) ([]model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		return nil, err
	}
	if topK < 1 || topK > 50 {
		topK = 10
	}
	return uc.jobRepo.SimilarJobs(job.Embedding, job.ID, topK)
}

// Apply records a job application and bumps the job popularity cache.
func (uc *JobUsecase) Apply(userID, jobID uuid.UUID) (*model.Application, error) {
	job, err := uc.jobRepo.FindJobByID(jobID.String())
	if err != nil {
		return nil, err
	}
	app := &model.Application{
		UserID:     userID,
		JobID:      job.ID,
		EmployerID: job.EmployerID,
		AppliedAt:  time.Now(),
		CreatedAt:  time.Now(),
	}
	if err := uc.appRepo.CreateApplication(app); err != nil {
		return nil, err
	}
	if err := uc.jobRepo.IncrementPopularity(job.ID); err != nil {
		// popularity hanya cache, gagal update tidak membatalkan aplikasi
		return app, nil
	}
	return app, nil
}
