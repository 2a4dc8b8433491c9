package analysis

import (
	"regexp"
	"strings"
)

var (
	actionVerbs    = []string{"developed", "led", "managed", "created"}
	metricPattern  = regexp.MustCompile(`\d+%`)
	atsScoreCap    = 95
	atsFeedbackTag = "ATS analysis: "
)

// computeAtsScore produces a deterministic ATS-style score out of 100 from
// skill count, section presence, action-verb usage, and quantified metrics.
func computeAtsScore(text string, skillNames, experienceLines, educationLines []string) AtsScore {
	score := 40
	if len(skillNames) > 10 {
		score += 20
	}
	if len(experienceLines) > 0 {
		score += 15
	}
	if len(educationLines) > 0 {
		score += 10
	}
	lower := strings.ToLower(text)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			score += 10
			break
		}
	}
	if metricPattern.MatchString(text) {
		score += 5
	}
	if score > atsScoreCap {
		score = atsScoreCap
	}

	var tier string
	switch {
	case score > 85:
		tier = "Excellent keyword and section formatting."
	case score > 65:
		tier = "Good structure. Could be enhanced with more quantifiable results."
	default:
		tier = "Consider adding more specific skills and using stronger action verbs."
	}
	return AtsScore{Score: score, Feedback: atsFeedbackTag + tier}
}
