package analysis

import (
	"fmt"

	"pathwise-backend/internal/match"
)

// recommendationsFor returns the role-typed improvement tips and upskilling
// suggestions. Pure and deterministic: identical inputs always yield the
// same output structure.
func recommendationsFor(skillNames []string, topMissingSkill string, roleType match.RoleType) (improvements, upskilling []string) {
	if roleType == match.RoleInternship {
		improvements = []string{
			"Highlight academic projects, coursework, and personal projects to showcase your skills and initiative.",
			"Create a 'Core Competencies' section at the top to immediately show recruiters your key technical skills.",
			"Clearly state your availability (e.g., 'Available Summer 2025') and graduation date.",
		}
	} else {
		second, third := "key areas", "related fields"
		if len(skillNames) > 1 {
			second = skillNames[1]
		}
		if len(skillNames) > 2 {
			third = skillNames[2]
		}
		improvements = []string{
			"Quantify achievements with metrics (e.g., 'Increased user engagement by 15%') to showcase tangible impact.",
			"Ensure your most recent and relevant experience is detailed at the top of the experience section.",
			fmt.Sprintf("Tailor your summary to align with senior roles, emphasizing leadership and your expertise in %s and %s.", second, third),
		}
	}

	if topMissingSkill != "" {
		upskilling = append(upskilling, fmt.Sprintf("Deepen your expertise in '%s'.", topMissingSkill))
	}
	upskilling = append(upskilling,
		"Explore cloud technologies (AWS, Azure) as they are valuable at all experience levels.",
		"Contribute to an open-source project to build a public portfolio.",
	)
	return improvements, upskilling
}
