package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainCandidate(id string, score float64) Candidate {
	return Candidate{
		JobID:      id,
		EmployerID: "emp-" + id,
		Category:   "engineering",
		Score:      score,
		PostedAt:   time.Now().Add(-30 * 24 * time.Hour),
	}
}

func TestAssignEmptyInput(t *testing.T) {
	svc := NewSectionSelectionService(testMatchingConfig())
	a := svc.Assign(nil, Preferences{}, time.Now())

	require.Len(t, a.Sections, 6)
	assert.Equal(t, 0, a.Total())
}

func TestAssignSingleSectionPerJob(t *testing.T) {
	now := time.Now()
	svc := NewSectionSelectionService(testMatchingConfig())

	var cands []Candidate
	for i := 0; i < 30; i++ {
		c := plainCandidate(fmt.Sprintf("job-%02d", i), float64(100-i))
		c.SalaryMin = 20000000
		c.FlexibleHours = true
		c.PostedAt = now.Add(-time.Hour)
		c.LocationScore = 0.9
		cands = append(cands, c)
	}

	a := svc.Assign(cands, Preferences{}, now)

	seen := map[string]string{}
	for _, sec := range a.Sections {
		for _, j := range sec.Jobs {
			prev, dup := seen[j.JobID]
			require.Falsef(t, dup, "job %s in both %s and %s", j.JobID, prev, sec.Name)
			seen[j.JobID] = sec.Name
		}
	}
	assert.Equal(t, 30, a.Total())
}

func TestAssignRespectsCaps(t *testing.T) {
	now := time.Now()
	cfg := testMatchingConfig()
	svc := NewSectionSelectionService(cfg)

	var cands []Candidate
	for i := 0; i < 60; i++ {
		c := plainCandidate(fmt.Sprintf("job-%02d", i), float64(100-i))
		c.SalaryMin = 20000000
		c.FlexibleHours = true
		c.PostedAt = now.Add(-time.Hour)
		c.LocationScore = 0.9
		cands = append(cands, c)
	}

	a := svc.Assign(cands, Preferences{}, now)
	for _, rule := range cfg.Sections {
		if rule.Cap == 0 {
			continue
		}
		bucket := a.Bucket(rule.Name)
		require.NotNil(t, bucket)
		assert.LessOrEqualf(t, len(bucket.Jobs), rule.Cap, "section %s over cap", rule.Name)
	}
}

func TestAssignEditorialGetsTopScores(t *testing.T) {
	now := time.Now()
	svc := NewSectionSelectionService(testMatchingConfig())

	var cands []Candidate
	for i := 0; i < 20; i++ {
		cands = append(cands, plainCandidate(fmt.Sprintf("job-%02d", i), float64(i)))
	}

	a := svc.Assign(cands, Preferences{}, now)
	editorial := a.Bucket(config.SectionEditorialPicks)
	require.NotNil(t, editorial)
	require.NotEmpty(t, editorial.Jobs)
	// skor tertinggi (19) harus masuk editorial duluan
	assert.Equal(t, "job-19", editorial.Jobs[0].JobID)
}

func TestAssignHighSalaryUsesUserFloor(t *testing.T) {
	now := time.Now()
	svc := NewSectionSelectionService(testMatchingConfig())

	rich := plainCandidate("rich", 50)
	rich.SalaryMin = 20000000
	poor := plainCandidate("poor", 90)
	poor.SalaryMin = 5000000

	prefs := Preferences{SalaryMin: 10000000} // floor*margin = 12jt
	a := svc.Assign([]Candidate{rich, poor}, prefs, now)

	high := a.Bucket(config.SectionHighSalary)
	require.NotNil(t, high)
	require.Len(t, high.Jobs, 1)
	assert.Equal(t, "rich", high.Jobs[0].JobID)
}

func TestAssignDiversityRepair(t *testing.T) {
	now := time.Now()
	cfg := testMatchingConfig()
	cfg.MinCategories = 3
	// caps kecil supaya kandidat kategori lain tersisih dulu
	cfg.Sections = []config.SectionRule{
		{Name: config.SectionEditorialPicks, Cap: 3},
		{Name: config.SectionOther, Cap: 3},
	}
	svc := NewSectionSelectionService(cfg)

	var cands []Candidate
	for i := 0; i < 6; i++ {
		cands = append(cands, plainCandidate(fmt.Sprintf("eng-%d", i), float64(90-i)))
	}
	design := plainCandidate("design-1", 10)
	design.Category = "design"
	sales := plainCandidate("sales-1", 5)
	sales.Category = "sales"
	cands = append(cands, design, sales)

	a := svc.Assign(cands, Preferences{}, now)

	categories := map[string]struct{}{}
	for _, sec := range a.Sections {
		for _, j := range sec.Jobs {
			categories[j.Category] = struct{}{}
		}
	}
	assert.GreaterOrEqual(t, len(categories), 3)
}

func TestRebalanceCategoriesSwapsMinoritiesIn(t *testing.T) {
	svc := NewSectionSelectionService(testMatchingConfig())

	var flat []Candidate
	for i := 0; i < 10; i++ {
		flat = append(flat, plainCandidate(fmt.Sprintf("eng-%d", i), float64(90-i)))
	}
	pool := append([]Candidate{}, flat...)
	design := plainCandidate("design-1", 8)
	design.Category = "design"
	sales := plainCandidate("sales-1", 6)
	sales.Category = "sales"
	pool = append(pool, design, sales)

	got := svc.RebalanceCategories(flat, pool)
	require.Len(t, got, 10)

	categories := map[string]struct{}{}
	for _, c := range got {
		categories[c.Category] = struct{}{}
	}
	assert.GreaterOrEqual(t, len(categories), 3)

	// hasil tetap urut skor desc setelah swap
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRebalanceCategoriesLimitedPool(t *testing.T) {
	svc := NewSectionSelectionService(testMatchingConfig())

	// pool cuma punya satu kategori: tidak ada yang bisa di-swap
	flat := []Candidate{
		plainCandidate("a", 30),
		plainCandidate("b", 20),
	}
	pool := append([]Candidate{}, flat...)

	got := svc.RebalanceCategories(flat, pool)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].JobID)
	assert.Equal(t, "b", got[1].JobID)
}

func TestAssignDiversityNotPossible(t *testing.T) {
	now := time.Now()
	cfg := testMatchingConfig()
	cfg.MinCategories = 3
	svc := NewSectionSelectionService(cfg)

	// cuma satu kategori tersedia: tidak boleh panik atau drop kandidat
	cands := []Candidate{
		plainCandidate("a", 10),
		plainCandidate("b", 20),
	}
	a := svc.Assign(cands, Preferences{}, now)
	assert.Equal(t, 2, a.Total())
}
