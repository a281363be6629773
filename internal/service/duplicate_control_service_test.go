package service

import (
	"testing"
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentEmployersRespectsWindow(t *testing.T) {
	now := time.Now()
	svc := NewDuplicateControlService(30 * 24 * time.Hour)

	recent := uuid.New()
	stale := uuid.New()
	apps := []model.Application{
		{EmployerID: recent, AppliedAt: now.Add(-5 * 24 * time.Hour)},
		{EmployerID: stale, AppliedAt: now.Add(-60 * 24 * time.Hour)},
	}

	blocked := svc.RecentEmployers(apps, now)
	assert.Contains(t, blocked, recent.String())
	assert.NotContains(t, blocked, stale.String())
}

func TestFilterRemovesBlockedEmployers(t *testing.T) {
	svc := NewDuplicateControlService(30 * 24 * time.Hour)

	cands := []Candidate{
		{JobID: "1", EmployerID: "emp-a"},
		{JobID: "2", EmployerID: "emp-b"},
		{JobID: "3", EmployerID: "emp-a"},
		{JobID: "4", EmployerID: "emp-c"},
	}
	blocked := map[string]struct{}{"emp-a": {}}

	got := svc.Filter(cands, blocked)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].JobID)
	assert.Equal(t, "4", got[1].JobID)
}

func TestFilterNoBlockedIsPassthrough(t *testing.T) {
	svc := NewDuplicateControlService(time.Hour)
	cands := []Candidate{{JobID: "1"}, {JobID: "2"}}
	assert.Equal(t, cands, svc.Filter(cands, nil))
}
