package usecase

import (
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
)

var (
	ErrMalformedUser = errors.New("user record is missing id")
	ErrBatchRunning  = errors.New("a batch run is already in progress")
)

type BatchRunStore interface {
	CreateRun(run *model.BatchRun) error
	UpdateRun(run *model.BatchRun) error
	FindRunByID(id string) (*model.BatchRun, error)
	LatestRun() (*model.BatchRun, error)
	ListRuns(limit int) ([]model.BatchRun, error)
}

// BatchUsecase runs the matching pipeline over every active user. Partial
// failure tolerant: a broken user is counted and skipped, the run continues.
type BatchUsecase struct {
	matching  *MatchingUsecase
	userStore UserStore
	jobStore  JobStore
	recStore  RecommendationStore
	runStore  BatchRunStore

	inFlight atomic.Bool
}

func NewBatchUsecase(matching *MatchingUsecase, userStore UserStore, jobStore JobStore, recStore RecommendationStore, runStore BatchRunStore) *BatchUsecase {
	return &BatchUsecase{
		matching:  matching,
		userStore: userStore,
		jobStore:  jobStore,
		recStore:  recStore,
		runStore:  runStore,
	}
}

// Run executes one full matching batch. Only one run may be in flight.
func (uc *BatchUsecase) Run() (*model.BatchRun, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBatchRunning
	}
	defer uc.inFlight.Store(false)

	now := time.Now()
	run := &model.BatchRun{
		Status:    "running",
		StartedAt: now,
	}
	if err := uc.runStore.CreateRun(run); err != nil {
		return nil, err
	}

	jobs, err := uc.jobStore.ActiveJobs()
	if err != nil {
		return uc.fail(run, err)
	}
	users, err := uc.userStore.ActiveUsers()
	if err != nil {
		return uc.fail(run, err)
	}

	run.UsersTotal = len(users)
	run.JobsScored = len(jobs)

	for i := range users {
		recs, _, err := uc.matching.BuildForUser(&users[i], jobs, run.ID, now)
		if err != nil {
			log.Printf("batch %s: skip user %s: %v", run.ID, users[i].ID, err)
			run.UsersFailed++
			continue
		}
		if err := uc.recStore.ReplaceForUser(users[i].ID, recs); err != nil {
			log.Printf("batch %s: persist failed for user %s: %v", run.ID, users[i].ID, err)
			run.UsersFailed++
			continue
		}
		run.UsersMatched++
	}

	finished := time.Now()
	run.FinishedAt = &finished
	run.Status = "completed"
	if err := uc.runStore.UpdateRun(run); err != nil {
		return run, err
	}

	elapsed := finished.Sub(now)
	perUser := time.Duration(0)
	if len(users) > 0 {
		perUser = elapsed / time.Duration(len(users))
	}
	log.Printf("batch %s done: %d/%d users matched, %d failed, %d jobs, %s total (%s/user)",
		run.ID, run.UsersMatched, run.UsersTotal, run.UsersFailed, run.JobsScored, elapsed, perUser)
	return run, nil
}

func (uc *BatchUsecase) fail(run *model.BatchRun, cause error) (*model.BatchRun, error) {
	finished := time.Now()
	run.FinishedAt = &finished
	run.Status = "failed"
	run.ErrorMessage = cause.Error()
	if err := uc.runStore.UpdateRun(run); err != nil {
		log.Printf("batch %s: could not record failure: %v", run.ID, err)
	}
	return run, cause
}

func (uc *BatchUsecase) GetRun(id string) (*model.BatchRun, error) {
	return uc.runStore.FindRunByID(id)
}

func (uc *BatchUsecase) LatestRun() (*model.BatchRun, error) {
	return uc.runStore.LatestRun()
}

func (uc *BatchUsecase) ListRuns(limit int) ([]model.BatchRun, error) {
	return uc.runStore.ListRuns(limit)
}
