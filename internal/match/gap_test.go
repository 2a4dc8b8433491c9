package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pathwise-backend/internal/skills"
)

func TestAnalyzeGap(t *testing.T) {
	s := newTestScorer()
	gap := s.AnalyzeGap(
		[]string{"python", "sql"},
		"Requires Python, React, and SQL. Kubernetes is a plus.",
	)

	assert.Equal(t, []string{"python", "sql"}, gap.Matching)
	assert.Equal(t, []string{"kubernetes", "react"}, gap.Missing)
}

func TestAnalyzeGapDisjointAndComplete(t *testing.T) {
	s := newTestScorer()
	desc := "Docker, Git, AWS, and strong communication skills."
	gap := s.AnalyzeGap([]string{"git", "aws"}, desc)

	seen := map[string]int{}
	for _, skill := range gap.Matching {
		seen[skill]++
	}
	for _, skill := range gap.Missing {
		seen[skill]++
	}
	jobSkills := skills.NewExtractor().Extract(desc)
	assert.Len(t, seen, len(jobSkills))
	for _, skill := range jobSkills {
		assert.Equal(t, 1, seen[skill], "skill %q must appear exactly once", skill)
	}
}

func TestAnalyzeGapEmptyInputs(t *testing.T) {
	s := newTestScorer()

	gap := s.AnalyzeGap(nil, "")
	assert.Equal(t, []string{}, gap.Matching)
	assert.Equal(t, []string{}, gap.Missing)

	gap = s.AnalyzeGap(nil, "Needs Python.")
	assert.Equal(t, []string{}, gap.Matching)
	assert.Equal(t, []string{"python"}, gap.Missing)
}
