package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise-backend/internal/skills"
)

func newTestScorer() *Scorer {
	return NewScorer(skills.NewExtractor())
}

func TestScoreBatchOrderAndRange(t *testing.T) {
	s := newTestScorer()
	resumeSkills := []string{"python", "sql", "docker"}
	descriptions := []string{
		"Looking for Python and SQL experience with Docker deployments.",
		"Seeking a React and TypeScript frontend developer.",
		"",
	}

	scores := s.ScoreBatch(resumeSkills, descriptions)
	require.Len(t, scores, len(descriptions))
	for i, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "score %d below range", i)
		assert.LessOrEqual(t, score, 1.0, "score %d above range", i)
	}
	assert.Greater(t, scores[0], scores[1], "full overlap should outrank none")
}

func TestScoreBatchBothEmpty(t *testing.T) {
	s := newTestScorer()
	scores := s.ScoreBatch(nil, []string{"We value punctuality and a positive attitude."})
	require.Len(t, scores, 1)
	assert.Equal(t, 0.0, scores[0])
}

func TestScoreBatchDisplayRescale(t *testing.T) {
	s := newTestScorer()

	// Identical sets: jaccard 1.0 rescales to the 0.99 ceiling.
	perfect := s.ScoreBatch([]string{"python"}, []string{"python"})
	assert.InDelta(t, 0.99, perfect[0], 1e-9)

	// Disjoint non-empty sets: jaccard 0 still reads as the 0.50 floor.
	disjoint := s.ScoreBatch([]string{"python"}, []string{"react"})
	assert.InDelta(t, 0.50, disjoint[0], 1e-9)

	// Half overlap: jaccard 1/3 rescales to 0.50 + 0.49/3.
	partial := s.ScoreBatch([]string{"python", "sql"}, []string{"python react"})
	assert.InDelta(t, 0.50+0.49/3.0, partial[0], 1e-9)
}

func TestScoreBatchEmptyInput(t *testing.T) {
	s := newTestScorer()
	assert.Empty(t, s.ScoreBatch([]string{"python"}, nil))
}
