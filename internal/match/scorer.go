package match

import (
	"pathwise-backend/internal/skills"
)

// RoleType distinguishes the two analysis flavors produced per request.
type RoleType string

const (
	RoleFullTime   RoleType = "full-time"
	RoleInternship RoleType = "internship"
)

// Display rescale constants. Raw Jaccard values compress into a higher,
// more encouraging range so that near-zero overlap still reads as a moderate
// percentage. This is intentional product behavior, not a scoring defect.
const (
	displayFloor   = 0.50
	displayRange   = 0.49
	displayCeiling = 0.99
)

// Scorer computes resume-to-job similarity over extracted skill sets.
type Scorer struct {
	extractor *skills.Extractor
}

// NewScorer constructs a Scorer around a shared extractor.
func NewScorer(extractor *skills.Extractor) *Scorer {
	return &Scorer{extractor: extractor}
}

// ScoreBatch returns one display score in [0,1] per job description, in input
// order. Both sets empty scores 0.0 rather than rewarding two empty sets with
// a perfect match.
func (s *Scorer) ScoreBatch(resumeSkills []string, jobDescriptions []string) []float64 {
	resumeSet := toSet(resumeSkills)
	scores := make([]float64, 0, len(jobDescriptions))
	for _, desc := range jobDescriptions {
		jobSet := toSet(s.extractor.Extract(desc))
		scores = append(scores, displayScore(resumeSet, jobSet))
	}
	return scores
}

func displayScore(resumeSet, jobSet map[string]struct{}) float64 {
	if len(resumeSet) == 0 && len(jobSet) == 0 {
		return 0.0
	}
	intersection := 0
	for skill := range resumeSet {
		if _, ok := jobSet[skill]; ok {
			intersection++
		}
	}
	union := len(resumeSet) + len(jobSet) - intersection
	if union == 0 {
		return 0.0
	}
	jaccard := float64(intersection) / float64(union)
	scaled := displayFloor + jaccard*displayRange
	if scaled > displayCeiling {
		return displayCeiling
	}
	return scaled
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
