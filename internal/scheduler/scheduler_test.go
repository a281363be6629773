package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) Run() (*model.BatchRun, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &model.BatchRun{Status: "completed"}, nil
}

func TestSchedulerTicks(t *testing.T) {
	runner := &countingRunner{}
	s := New(runner, 20*time.Millisecond)

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(110 * time.Millisecond)
	require.NoError(t, s.Stop())

	calls := runner.calls.Load()
	assert.GreaterOrEqual(t, calls, int32(3))

	// setelah Stop tidak boleh ada tick lagi
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, calls, runner.calls.Load())
}

func TestSchedulerRejectsBadInterval(t *testing.T) {
	s := New(&countingRunner{}, 0)
	assert.Error(t, s.Start(context.Background()))
}

func TestSchedulerDoubleStart(t *testing.T) {
	s := New(&countingRunner{}, time.Hour)
	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()))
	require.NoError(t, s.Stop())
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := New(&countingRunner{}, time.Hour)
	assert.NoError(t, s.Stop())
}

func TestSchedulerContextCancel(t *testing.T) {
	runner := &countingRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	s := New(runner, 10*time.Millisecond)
	require.NoError(t, s.Start(ctx))

	cancel()
	time.Sleep(30 * time.Millisecond)
	before := runner.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, runner.calls.Load())

	require.NoError(t, s.Stop())
}
