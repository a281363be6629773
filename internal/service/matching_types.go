package service

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// Candidate is one job inside the matching pipeline, detached from the ORM so
// the pipeline services stay pure and testable.
type Candidate struct {
	JobID         string
	EmployerID    string
	Category      string
	Location      string
	Score         float64 // composite 0-100
	LocationScore float64 // 0-1
	SalaryMin     int
	SalaryMax     int
	FlexibleHours bool
	WeekendWork   bool
	Popularity    int
	PostedAt      time.Time
	IsFallback    bool
}

type Preferences struct {
	Categories []string
	Location   string
	SalaryMin  int
}

// ParsePreferences reads the jsonb preference blob stored on the user row.
// Blob kosong dianggap valid (user baru belum isi preferensi).
func ParsePreferences(raw string) (Preferences, error) {
	if raw == "" || raw == "{}" {
		return Preferences{}, nil
	}
	if !gjson.Valid(raw) {
		return Preferences{}, fmt.Errorf("preferences is not valid JSON: %q", raw)
	}
	prefs := Preferences{
		Location:  gjson.Get(raw, "location").String(),
		SalaryMin: int(gjson.Get(raw, "salary_min").Int()),
	}
	for _, c := range gjson.Get(raw, "categories").Array() {
		if c.String() != "" {
			prefs.Categories = append(prefs.Categories, c.String())
		}
	}
	return prefs, nil
}

// SectionBucket is a named, ordered slice of the final result.
type SectionBucket struct {
	Name string
	Jobs []Candidate
}

// Assignment holds the six-section structure built per user.
type Assignment struct {
	Sections []SectionBucket
}

func (a *Assignment) Total() int {
	n := 0
	for _, s := range a.Sections {
		n += len(s.Jobs)
	}
	return n
}

// Bucket returns the section with the given name, or nil.
func (a *Assignment) Bucket(name string) *SectionBucket {
	for i := range a.Sections {
		if a.Sections[i].Name == name {
			return &a.Sections[i]
		}
	}
	return nil
}

// Flatten returns all assigned jobs in section order.
func (a *Assignment) Flatten() []Candidate {
	out := make([]Candidate, 0, a.Total())
	for _, s := range a.Sections {
		out = append(out, s.Jobs...)
	}
	return out
}

// JobIDs returns the set of ids currently present in the assignment.
func (a *Assignment) JobIDs() map[string]struct{} {
	ids := make(map[string]struct{}, a.Total())
	for _, s := range a.Sections {
		for _, j := range s.Jobs {
			ids[j.JobID] = struct{}{}
		}
	}
	return ids
}
