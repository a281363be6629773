package scheduler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/usecase"
)

// BatchRunner is the piece of the batch usecase the scheduler needs.
type BatchRunner interface {
	Run() (*model.BatchRun, error)
}

// Scheduler drives the matching batch on a fixed interval. Start/Stop
// lifecycle; an in-flight run makes the next tick a no-op (the runner
// returns ErrBatchRunning).
type Scheduler struct {
	runner   BatchRunner
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

func New(runner BatchRunner, interval time.Duration) *Scheduler {
	return &Scheduler{runner: runner, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return errors.New("scheduler interval must be positive")
	}
	if s.cancel != nil {
		return errors.New("scheduler already started")
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.loop(ctx)
	log.Printf("matching scheduler started, interval %s", s.interval)
	return nil
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *Scheduler) runOnce() {
	run, err := s.runner.Run()
	switch {
	case errors.Is(err, usecase.ErrBatchRunning):
		log.Println("scheduler tick skipped: previous batch still running")
	case err != nil:
		log.Printf("scheduled batch failed: %v", err)
	default:
		log.Printf("scheduled batch %s finished with status %s", run.ID, run.Status)
	}
}

func (s *Scheduler) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	log.Println("matching scheduler stopped")
	return nil
}
