package service

import (
	"sort"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
)

// SectionSelectionService partitions a scored, filtered candidate list into
// the named sections. Each job lands in at most one section: candidates are
// walked best-score-first and take the first section whose rule matches and
// whose cap masih ada sisa.
type SectionSelectionService struct {
	cfg *config.MatchingConfig
}

func NewSectionSelectionService(cfg *config.MatchingConfig) *SectionSelectionService {
	return &SectionSelectionService{cfg: cfg}
}

func (s *SectionSelectionService) Assign(cands []Candidate, prefs Preferences, now time.Time) *Assignment {
	assignment := &Assignment{Sections: make([]SectionBucket, len(s.cfg.Sections))}
	for i, rule := range s.cfg.Sections {
		assignment.Sections[i] = SectionBucket{Name: rule.Name}
	}
	if len(cands) == 0 {
		return assignment
	}

	ranked := make([]Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	salaryFloor := s.salaryFloor(ranked, prefs)

	var leftover []Candidate
	for _, c := range ranked {
		if !s.place(assignment, c, salaryFloor, prefs, now) {
			leftover = append(leftover, c)
		}
	}

	s.ensureDiversity(assignment, leftover)
	return assignment
}

// place drops the candidate into the first section whose rule matches.
func (s *SectionSelectionService) place(a *Assignment, c Candidate, salaryFloor int, prefs Preferences, now time.Time) bool {
	for i, rule := range s.cfg.Sections {
		bucket := &a.Sections[i]
		if rule.Cap > 0 && len(bucket.Jobs) >= rule.Cap {
			continue
		}
		if !s.matches(rule.Name, c, salaryFloor, prefs, now) {
			continue
		}
		bucket.Jobs = append(bucket.Jobs, c)
		return true
	}
	return false
}

func (s *SectionSelectionService) matches(section string, c Candidate, salaryFloor int, prefs Preferences, now time.Time) bool {
	switch section {
	case config.SectionEditorialPicks:
		// diisi skor tertinggi; kandidat sudah urut skor jadi rule-nya selalu lolos
		return true
	case config.SectionHighSalary:
		return c.SalaryMin >= salaryFloor && salaryFloor > 0
	case config.SectionLocationConvenient:
		if prefs.Location != "" && c.Location == prefs.Location {
			return true
		}
		return c.LocationScore >= s.cfg.LocationMinScore
	case config.SectionFlexibleHours:
		return c.FlexibleHours || c.WeekendWork
	case config.SectionFreshPostings:
		return now.Sub(c.PostedAt) <= s.cfg.FreshWindow
	case config.SectionOther:
		return true
	}
	return false
}

// salaryFloor derives the "high salary" bar: user's floor with margin when the
// user set one, otherwise the pool average with margin.
func (s *SectionSelectionService) salaryFloor(cands []Candidate, prefs Preferences) int {
	if prefs.SalaryMin > 0 {
		return int(float64(prefs.SalaryMin) * s.cfg.HighSalaryMargin)
	}
	sum := 0
	counted := 0
	for _, c := range cands {
		if c.SalaryMin > 0 {
			sum += c.SalaryMin
			counted++
		}
	}
	if counted == 0 {
		return 0
	}
	return int(float64(sum/counted) * s.cfg.HighSalaryMargin)
}

// ensureDiversity swaps leftover candidates from unrepresented categories in
// for the weakest jobs of over-represented ones until the distinct-category
// minimum is met or the leftovers run out.
func (s *SectionSelectionService) ensureDiversity(a *Assignment, leftover []Candidate) {
	for s.distinctCategories(a) < s.cfg.MinCategories {
		present := s.categoryCounts(a)
		swapped := false
		for li, c := range leftover {
			if _, ok := present[c.Category]; ok {
				continue
			}
			if !s.evictOverRepresented(a, present) {
				return
			}
			other := a.Bucket(config.SectionOther)
			other.Jobs = append(other.Jobs, c)
			leftover = append(leftover[:li], leftover[li+1:]...)
			swapped = true
			break
		}
		if !swapped {
			return
		}
	}
}

// evictOverRepresented removes the lowest-scored job of the most frequent
// category. Returns false when no category has more than one job.
func (s *SectionSelectionService) evictOverRepresented(a *Assignment, counts map[string]int) bool {
	top := ""
	for cat, n := range counts {
		if n > 1 && (top == "" || n > counts[top] || (n == counts[top] && cat < top)) {
			top = cat
		}
	}
	if top == "" {
		return false
	}

	victimSection, victimIdx := -1, -1
	victimScore := 0.0
	for si := range a.Sections {
		for ji, j := range a.Sections[si].Jobs {
			if j.Category != top {
				continue
			}
			if victimIdx == -1 || j.Score < victimScore {
				victimSection, victimIdx, victimScore = si, ji, j.Score
			}
		}
	}
	if victimIdx == -1 {
		return false
	}
	jobs := a.Sections[victimSection].Jobs
	a.Sections[victimSection].Jobs = append(jobs[:victimIdx], jobs[victimIdx+1:]...)
	return true
}

// RebalanceCategories enforces the distinct-category minimum on the final,
// already-truncated flat result. Selection-time repair is not enough: the
// catch-all section swallows every leftover, and the score-desc cut afterwards
// can drop minority categories entirely. Missing categories still available in
// the pool are swapped in (best representative) for the lowest-scored jobs of
// the most frequent category. The slice is re-sorted score desc after a swap.
func (s *SectionSelectionService) RebalanceCategories(flat []Candidate, pool []Candidate) []Candidate {
	available := make(map[string]struct{})
	for _, c := range pool {
		if !c.IsFallback {
			available[c.Category] = struct{}{}
		}
	}
	want := s.cfg.MinCategories
	if len(available) < want {
		want = len(available)
	}

	swapped := false
	for {
		counts := make(map[string]int)
		inResult := make(map[string]struct{}, len(flat))
		for _, c := range flat {
			inResult[c.JobID] = struct{}{}
			if !c.IsFallback {
				counts[c.Category]++
			}
		}
		if len(counts) >= want {
			break
		}

		// wakil terbaik dari kategori yang belum ada di hasil
		pick := -1
		for i, c := range pool {
			if c.IsFallback {
				continue
			}
			if _, ok := counts[c.Category]; ok {
				continue
			}
			if _, taken := inResult[c.JobID]; taken {
				continue
			}
			if pick == -1 || c.Score > pool[pick].Score {
				pick = i
			}
		}
		if pick == -1 {
			break
		}

		top := ""
		for cat, n := range counts {
			if n > 1 && (top == "" || n > counts[top] || (n == counts[top] && cat < top)) {
				top = cat
			}
		}
		if top == "" {
			break
		}
		victim := -1
		for i, c := range flat {
			if c.IsFallback || c.Category != top {
				continue
			}
			if victim == -1 || c.Score < flat[victim].Score {
				victim = i
			}
		}
		if victim == -1 {
			break
		}
		flat[victim] = pool[pick]
		swapped = true
	}

	if swapped {
		sort.SliceStable(flat, func(i, j int) bool {
			return flat[i].Score > flat[j].Score
		})
	}
	return flat
}

func (s *SectionSelectionService) distinctCategories(a *Assignment) int {
	return len(s.categoryCounts(a))
}

func (s *SectionSelectionService) categoryCounts(a *Assignment) map[string]int {
	counts := make(map[string]int)
	for _, sec := range a.Sections {
		for _, j := range sec.Jobs {
			if j.IsFallback {
				continue
			}
			counts[j.Category]++
		}
	}
	return counts
}
