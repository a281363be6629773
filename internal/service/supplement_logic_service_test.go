package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyAssignment(cfg *config.MatchingConfig) *Assignment {
	a := &Assignment{Sections: make([]SectionBucket, len(cfg.Sections))}
	for i, rule := range cfg.Sections {
		a.Sections[i] = SectionBucket{Name: rule.Name}
	}
	return a
}

func TestSupplementPadsToTarget(t *testing.T) {
	cfg := testMatchingConfig()
	svc := NewSupplementLogicService(cfg)

	a := emptyAssignment(cfg)
	editorial := a.Bucket(config.SectionEditorialPicks)
	for i := 0; i < 10; i++ {
		editorial.Jobs = append(editorial.Jobs, plainCandidate(fmt.Sprintf("real-%d", i), 50))
	}

	svc.Supplement(a, Preferences{Location: "Jakarta"}, 40, time.Now())

	assert.Equal(t, 40, a.Total())

	// 10 real + 40 target = tepat 30 fallback, semua unik
	fallbacks := map[string]struct{}{}
	for _, j := range a.Bucket(config.SectionOther).Jobs {
		require.True(t, j.IsFallback)
		require.True(t, strings.HasPrefix(j.JobID, "fallback_"))
		assert.Equal(t, "Jakarta", j.Location)
		_, dup := fallbacks[j.JobID]
		require.Falsef(t, dup, "duplicate fallback id %s", j.JobID)
		fallbacks[j.JobID] = struct{}{}
	}
	assert.Len(t, fallbacks, 30)
}

func TestSupplementProbesPastTakenIDs(t *testing.T) {
	cfg := testMatchingConfig()
	svc := NewSupplementLogicService(cfg)

	a := emptyAssignment(cfg)
	other := a.Bucket(config.SectionOther)
	// id fallback lama masih nyangkut di hasil sebelumnya
	other.Jobs = append(other.Jobs,
		Candidate{JobID: "fallback_001", IsFallback: true, Score: 1},
		Candidate{JobID: "fallback_002", IsFallback: true, Score: 1},
	)

	svc.Supplement(a, Preferences{}, 5, time.Now())

	assert.Equal(t, 5, a.Total())
	ids := a.JobIDs()
	assert.Len(t, ids, 5)
}

func TestSupplementScoreNeverAboveReal(t *testing.T) {
	cfg := testMatchingConfig()
	svc := NewSupplementLogicService(cfg)

	a := emptyAssignment(cfg)
	weak := plainCandidate("weak", 0.2) // real job dengan skor di bawah FallbackScore
	a.Bucket(config.SectionEditorialPicks).Jobs = []Candidate{weak}

	svc.Supplement(a, Preferences{}, 5, time.Now())

	for _, j := range a.Bucket(config.SectionOther).Jobs {
		assert.LessOrEqual(t, j.Score, weak.Score)
	}
}

func TestSupplementNoopWhenTargetMet(t *testing.T) {
	cfg := testMatchingConfig()
	svc := NewSupplementLogicService(cfg)

	a := emptyAssignment(cfg)
	for i := 0; i < 40; i++ {
		a.Bucket(config.SectionOther).Jobs = append(a.Bucket(config.SectionOther).Jobs,
			plainCandidate(fmt.Sprintf("real-%d", i), 50))
	}

	svc.Supplement(a, Preferences{}, 40, time.Now())
	assert.Equal(t, 40, a.Total())
	for _, j := range a.Flatten() {
		assert.False(t, j.IsFallback)
	}
}

func TestSupplementEmptyPoolAllFallback(t *testing.T) {
	cfg := testMatchingConfig()
	svc := NewSupplementLogicService(cfg)

	a := emptyAssignment(cfg)
	svc.Supplement(a, Preferences{}, 40, time.Now())

	assert.Equal(t, 40, a.Total())
	for _, j := range a.Flatten() {
		assert.True(t, j.IsFallback)
	}
}
