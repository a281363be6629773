package service

import (
	"math"
	"strings"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/fadilmartias/jobmatch/internal/model"
)

// ScoringEngine computes composite 0-100 scores for a whole candidate pool at
// once. Component scores are filled column-wise (one pass per component over
// reused slices) instead of per job-pair, so a batch over a large pool stays
// in the ms-per-user range.
type ScoringEngine struct {
	cfg *config.MatchingConfig

	// reusable column buffers, grown on demand
	category   []float64
	location   []float64
	salary     []float64
	freshness  []float64
	popularity []float64
}

func NewScoringEngine(cfg *config.MatchingConfig) *ScoringEngine {
	return &ScoringEngine{cfg: cfg}
}

// ScoreAll converts the job pool into scored Candidates for one user.
// The returned slice preserves input order.
func (e *ScoringEngine) ScoreAll(jobs []model.Job, prefs Preferences, now time.Time) []Candidate {
	n := len(jobs)
	if n == 0 {
		return nil
	}
	e.grow(n)

	e.fillCategory(jobs, prefs)
	e.fillLocation(jobs, prefs)
	e.fillSalary(jobs, prefs)
	e.fillFreshness(jobs, now)
	e.fillPopularity(jobs)

	w := e.cfg.Weights
	wSum := w.Category + w.Location + w.Salary + w.Freshness + w.Popularity

	out := make([]Candidate, n)
	for i, j := range jobs {
		raw := w.Category*e.category[i] +
			w.Location*e.location[i] +
			w.Salary*e.salary[i] +
			w.Freshness*e.freshness[i] +
			w.Popularity*e.popularity[i]
		score := raw / wSum * 100
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		out[i] = Candidate{
			JobID:         j.ID.String(),
			EmployerID:    j.EmployerID.String(),
			Category:      j.Category,
			Location:      j.Location,
			Score:         score,
			LocationScore: j.LocationScore,
			SalaryMin:     j.SalaryMin,
			SalaryMax:     j.SalaryMax,
			FlexibleHours: j.FlexibleHours,
			WeekendWork:   j.WeekendWork,
			Popularity:    j.Popularity,
			PostedAt:      j.CreatedAt,
		}
	}
	return out
}

func (e *ScoringEngine) grow(n int) {
	if cap(e.category) < n {
		e.category = make([]float64, n)
		e.location = make([]float64, n)
		e.salary = make([]float64, n)
		e.freshness = make([]float64, n)
		e.popularity = make([]float64, n)
		return
	}
	e.category = e.category[:n]
	e.location = e.location[:n]
	e.salary = e.salary[:n]
	e.freshness = e.freshness[:n]
	e.popularity = e.popularity[:n]
}

// fillCategory: 1.0 kalau kategori job ada di preferensi user, 0 kalau tidak.
// User tanpa preferensi kategori dapat skor netral 0.5.
func (e *ScoringEngine) fillCategory(jobs []model.Job, prefs Preferences) {
	if len(prefs.Categories) == 0 {
		for i := range jobs {
			e.category[i] = 0.5
		}
		return
	}
	wanted := make(map[string]struct{}, len(prefs.Categories))
	for _, c := range prefs.Categories {
		wanted[strings.ToLower(c)] = struct{}{}
	}
	for i, j := range jobs {
		if _, ok := wanted[strings.ToLower(j.Category)]; ok {
			e.category[i] = 1.0
		} else {
			e.category[i] = 0
		}
	}
}

func (e *ScoringEngine) fillLocation(jobs []model.Job, prefs Preferences) {
	for i, j := range jobs {
		if prefs.Location != "" && strings.EqualFold(j.Location, prefs.Location) {
			e.location[i] = 1.0
			continue
		}
		e.location[i] = clamp01(j.LocationScore)
	}
}

// fillSalary: rasio salary_min job terhadap floor user, clamp 0-1. Job yang
// salary_max-nya di bawah floor dianggap tidak cocok sama sekali.
func (e *ScoringEngine) fillSalary(jobs []model.Job, prefs Preferences) {
	if prefs.SalaryMin <= 0 {
		for i := range jobs {
			e.salary[i] = 0.5
		}
		return
	}
	floor := float64(prefs.SalaryMin)
	for i, j := range jobs {
		if j.SalaryMax > 0 && j.SalaryMax < prefs.SalaryMin {
			e.salary[i] = 0
			continue
		}
		e.salary[i] = clamp01(float64(j.SalaryMin) / floor)
	}
}

// fillFreshness: peluruhan eksponensial, setengah nilai tiap FreshnessHalfAge.
func (e *ScoringEngine) fillFreshness(jobs []model.Job, now time.Time) {
	half := e.cfg.FreshnessHalfAge.Hours()
	for i, j := range jobs {
		age := now.Sub(j.CreatedAt).Hours()
		if age <= 0 {
			e.freshness[i] = 1.0
			continue
		}
		e.freshness[i] = math.Exp(-math.Ln2 * age / half)
	}
}

func (e *ScoringEngine) fillPopularity(jobs []model.Job) {
	max := 0
	for _, j := range jobs {
		if j.Popularity > max {
			max = j.Popularity
		}
	}
	if max == 0 {
		for i := range jobs {
			e.popularity[i] = 0
		}
		return
	}
	for i, j := range jobs {
		e.popularity[i] = float64(j.Popularity) / float64(max)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
