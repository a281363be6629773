package service

import (
	"fmt"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
)

// SupplementLogicService pads an assignment to the target count with
// synthetic fallback entries when real matches are not enough. Fallback ids
// are "fallback_NNN", kept unique against the existing result set by linear
// probing from the current loop index.
type SupplementLogicService struct {
	cfg *config.MatchingConfig
}

func NewSupplementLogicService(cfg *config.MatchingConfig) *SupplementLogicService {
	return &SupplementLogicService{cfg: cfg}
}

// Supplement appends fallback jobs to the catch-all section until the
// assignment reaches target. Already-present ids (real or fallback) are never
// reused.
func (s *SupplementLogicService) Supplement(a *Assignment, prefs Preferences, target int, now time.Time) {
	bucket := a.Bucket(config.SectionOther)
	if bucket == nil {
		// catch-all section selalu ada lewat config; jaga-jaga saja
		a.Sections = append(a.Sections, SectionBucket{Name: config.SectionOther})
		bucket = &a.Sections[len(a.Sections)-1]
	}

	// Fallback score must stay at or below every real score so sorting keeps
	// real jobs ahead.
	score := s.cfg.FallbackScore
	for _, sec := range a.Sections {
		for _, j := range sec.Jobs {
			if !j.IsFallback && j.Score < score {
				score = j.Score
			}
		}
	}

	used := a.JobIDs()
	for i := a.Total(); a.Total() < target; i++ {
		id := fmt.Sprintf("fallback_%03d", i)
		for {
			if _, taken := used[id]; !taken {
				break
			}
			i++
			id = fmt.Sprintf("fallback_%03d", i)
		}
		bucket.Jobs = append(bucket.Jobs, Candidate{
			JobID:      id,
			Category:   "general",
			Location:   prefs.Location,
			Score:      score,
			PostedAt:   now,
			IsFallback: true,
		})
		used[id] = struct{}{}
	}
}
