package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *MatchingConfig {
	return &MatchingConfig{
		TargetCount:   40,
		MinCategories: 3,
		Sections:      []SectionRule{{Name: SectionOther}},
		Weights:       ScoreWeights{Category: 1},
	}
}

func TestMatchingConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*MatchingConfig)
		wantErr bool
	}{
		{"valid", func(c *MatchingConfig) {}, false},
		{"zero target", func(c *MatchingConfig) { c.TargetCount = 0 }, true},
		{"negative min categories", func(c *MatchingConfig) { c.MinCategories = -1 }, true},
		{"no sections", func(c *MatchingConfig) { c.Sections = nil }, true},
		{"zero weights", func(c *MatchingConfig) { c.Weights = ScoreWeights{} }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("MATCH_TEST_KEY", "")
	assert.Equal(t, 7, envInt("MATCH_TEST_KEY", 7))

	t.Setenv("MATCH_TEST_KEY", "12")
	assert.Equal(t, 12, envInt("MATCH_TEST_KEY", 7))

	t.Setenv("MATCH_TEST_KEY", "banana")
	assert.Equal(t, 7, envInt("MATCH_TEST_KEY", 7))
}
