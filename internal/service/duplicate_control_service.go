package service

import (
	"time"

	"github.com/fadilmartias/jobmatch/internal/model"
)

// DuplicateControlService suppresses jobs from employers the user applied to
// recently. Pure set-membership filter, no scoring.
type DuplicateControlService struct {
	window time.Duration
}

func NewDuplicateControlService(window time.Duration) *DuplicateControlService {
	return &DuplicateControlService{window: window}
}

// RecentEmployers builds the blocked-employer set from the user's
// applications. Applications older than the lookback window are ignored even
// if the caller passed them in.
func (s *DuplicateControlService) RecentEmployers(apps []model.Application, now time.Time) map[string]struct{} {
	cutoff := now.Add(-s.window)
	blocked := make(map[string]struct{}, len(apps))
	for _, a := range apps {
		if a.AppliedAt.Before(cutoff) {
			continue
		}
		blocked[a.EmployerID.String()] = struct{}{}
	}
	return blocked
}

// Filter returns candidates whose employer is not blocked, preserving order.
func (s *DuplicateControlService) Filter(cands []Candidate, blocked map[string]struct{}) []Candidate {
	if len(blocked) == 0 {
		return cands
	}
	out := cands[:0:0]
	for _, c := range cands {
		if _, ok := blocked[c.EmployerID]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
