package service

import (
	"testing"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatchingConfig() *config.MatchingConfig {
	return &config.MatchingConfig{
		TargetCount:      40,
		MinCategories:    3,
		DedupWindow:      90 * 24 * time.Hour,
		FallbackScore:    1.0,
		FreshnessHalfAge: 14 * 24 * time.Hour,
		FreshWindow:      7 * 24 * time.Hour,
		HighSalaryMargin: 1.2,
		LocationMinScore: 0.7,
		Sections: []config.SectionRule{
			{Name: config.SectionEditorialPicks, Cap: 8},
			{Name: config.SectionHighSalary, Cap: 8},
			{Name: config.SectionLocationConvenient, Cap: 8},
			{Name: config.SectionFlexibleHours, Cap: 8},
			{Name: config.SectionFreshPostings, Cap: 8},
			{Name: config.SectionOther, Cap: 0},
		},
		Weights: config.ScoreWeights{
			Category:   0.35,
			Location:   0.20,
			Salary:     0.20,
			Freshness:  0.15,
			Popularity: 0.10,
		},
	}
}

func makeJob(category, location string, salaryMin int, age time.Duration, now time.Time) model.Job {
	return model.Job{
		ID:            uuid.New(),
		EmployerID:    uuid.New(),
		Category:      category,
		Location:      location,
		LocationScore: 0.5,
		SalaryMin:     salaryMin,
		SalaryMax:     salaryMin * 2,
		CreatedAt:     now.Add(-age),
	}
}

func TestScoreAllEmptyPool(t *testing.T) {
	engine := NewScoringEngine(testMatchingConfig())
	assert.Nil(t, engine.ScoreAll(nil, Preferences{}, time.Now()))
}

func TestScoreAllRange(t *testing.T) {
	now := time.Now()
	engine := NewScoringEngine(testMatchingConfig())

	jobs := []model.Job{
		makeJob("engineering", "Jakarta", 15000000, 0, now),
		makeJob("design", "Bandung", 5000000, 60*24*time.Hour, now),
		makeJob("support", "Surabaya", 0, 365*24*time.Hour, now),
	}
	prefs := Preferences{Categories: []string{"engineering"}, Location: "Jakarta", SalaryMin: 10000000}

	cands := engine.ScoreAll(jobs, prefs, now)
	require.Len(t, cands, 3)
	for _, c := range cands {
		assert.GreaterOrEqual(t, c.Score, 0.0)
		assert.LessOrEqual(t, c.Score, 100.0)
	}
}

func TestScoreAllPrefersMatchingJob(t *testing.T) {
	now := time.Now()
	engine := NewScoringEngine(testMatchingConfig())

	matching := makeJob("engineering", "Jakarta", 15000000, 0, now)
	mismatched := makeJob("sales", "Medan", 4000000, 90*24*time.Hour, now)
	mismatched.LocationScore = 0.1

	prefs := Preferences{Categories: []string{"engineering"}, Location: "Jakarta", SalaryMin: 10000000}
	cands := engine.ScoreAll([]model.Job{matching, mismatched}, prefs, now)

	require.Len(t, cands, 2)
	assert.Greater(t, cands[0].Score, cands[1].Score)
	assert.Equal(t, matching.ID.String(), cands[0].JobID)
}

func TestScoreAllNeutralWithoutPreferences(t *testing.T) {
	now := time.Now()
	engine := NewScoringEngine(testMatchingConfig())

	jobs := []model.Job{
		makeJob("engineering", "Jakarta", 15000000, 0, now),
		makeJob("design", "Jakarta", 15000000, 0, now),
	}
	cands := engine.ScoreAll(jobs, Preferences{}, now)

	// tanpa preferensi kategori & gaji, kedua job harus setara
	require.Len(t, cands, 2)
	assert.InDelta(t, cands[0].Score, cands[1].Score, 0.001)
}

func TestScoreAllSalaryBelowFloorIsZeroComponent(t *testing.T) {
	now := time.Now()
	engine := NewScoringEngine(testMatchingConfig())

	tooLow := makeJob("engineering", "Jakarta", 2000000, 0, now)
	tooLow.SalaryMax = 3000000
	fits := makeJob("engineering", "Jakarta", 12000000, 0, now)

	prefs := Preferences{SalaryMin: 10000000}
	cands := engine.ScoreAll([]model.Job{tooLow, fits}, prefs, now)

	require.Len(t, cands, 2)
	assert.Greater(t, cands[1].Score, cands[0].Score)
}

func TestScoreAllFreshnessDecays(t *testing.T) {
	now := time.Now()
	engine := NewScoringEngine(testMatchingConfig())

	fresh := makeJob("engineering", "Jakarta", 10000000, 0, now)
	stale := makeJob("engineering", "Jakarta", 10000000, 28*24*time.Hour, now)

	cands := engine.ScoreAll([]model.Job{fresh, stale}, Preferences{}, now)
	require.Len(t, cands, 2)
	assert.Greater(t, cands[0].Score, cands[1].Score)
}

func TestScoreAllPreservesInputOrder(t *testing.T) {
	now := time.Now()
	engine := NewScoringEngine(testMatchingConfig())

	jobs := []model.Job{
		makeJob("a", "X", 1, 0, now),
		makeJob("b", "Y", 2, 0, now),
		makeJob("c", "Z", 3, 0, now),
	}
	cands := engine.ScoreAll(jobs, Preferences{}, now)
	require.Len(t, cands, 3)
	for i := range jobs {
		assert.Equal(t, jobs[i].ID.String(), cands[i].JobID)
	}
}
