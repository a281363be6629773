package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

// Section names, urut sesuai prioritas assignment.
const (
	SectionEditorialPicks     = "editorial_picks"
	SectionHighSalary         = "high_salary"
	SectionLocationConvenient = "location_convenient"
	SectionFlexibleHours      = "flexible_hours"
	SectionFreshPostings      = "fresh_postings"
	SectionOther              = "other_recommendations"
)

type SectionRule struct {
	Name string
	Cap  int
}

type ScoreWeights struct {
	Category   float64
	Location   float64
	Salary     float64
	Freshness  float64
	Popularity float64
}

type MatchingConfig struct {
	TargetCount      int
	MinCategories    int
	DedupWindow      time.Duration
	FallbackScore    float64
	FreshnessHalfAge time.Duration
	FreshWindow      time.Duration
	HighSalaryMargin float64
	LocationMinScore float64
	BatchInterval    time.Duration
	Sections         []SectionRule
	Weights          ScoreWeights
}

var (
	matchingConfig *MatchingConfig
	matchingOnce   sync.Once
)

// LoadMatchingConfig reads batch tuning from env with business defaults
// (40 item target, 6 section, dedup window 90 hari).
func LoadMatchingConfig() *MatchingConfig {
	matchingOnce.Do(func() {
		matchingConfig = &MatchingConfig{
			TargetCount:      envInt("MATCH_TARGET_COUNT", 40),
			MinCategories:    envInt("MATCH_MIN_CATEGORIES", 3),
			DedupWindow:      time.Duration(envInt("MATCH_DEDUP_WINDOW_DAYS", 90)) * 24 * time.Hour,
			FallbackScore:    1.0,
			FreshnessHalfAge: 14 * 24 * time.Hour,
			FreshWindow:      7 * 24 * time.Hour,
			HighSalaryMargin: 1.2,
			LocationMinScore: 0.7,
			BatchInterval:    time.Duration(envInt("MATCH_BATCH_INTERVAL_MINUTES", 1440)) * time.Minute,
			Sections: []SectionRule{
				{Name: SectionEditorialPicks, Cap: 8},
				{Name: SectionHighSalary, Cap: 8},
				{Name: SectionLocationConvenient, Cap: 8},
				{Name: SectionFlexibleHours, Cap: 8},
				{Name: SectionFreshPostings, Cap: 8},
				{Name: SectionOther, Cap: 0}, // 0 = tanpa cap, section penampung
			},
			Weights: ScoreWeights{
				Category:   0.35,
				Location:   0.20,
				Salary:     0.20,
				Freshness:  0.15,
				Popularity: 0.10,
			},
		}
		if err := matchingConfig.Validate(); err != nil {
			log.Fatalf("invalid matching config: %v", err)
		}
	})
	return matchingConfig
}

func (c *MatchingConfig) Validate() error {
	if c.TargetCount <= 0 {
		return fmt.Errorf("target count must be positive, got %d", c.TargetCount)
	}
	if c.MinCategories < 0 {
		return fmt.Errorf("min categories must not be negative, got %d", c.MinCategories)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	w := c.Weights
	if w.Category+w.Location+w.Salary+w.Freshness+w.Popularity <= 0 {
		return fmt.Errorf("score weights must sum to a positive value")
	}
	return nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, defaulting to %d", key, raw, fallback)
		return fallback
	}
	return v
}
