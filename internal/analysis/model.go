package analysis

import "pathwise-backend/internal/match"

// Skill wraps a skill name for the frontend's {name} shape.
type Skill struct {
	Name string `json:"name"`
}

// AtsScore is the heuristic ATS compatibility estimate.
type AtsScore struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// CareerPath is one job listing annotated with computed match, gap, and
// proficiency data. Field names mirror the frontend contract.
type CareerPath struct {
	Role                     string                 `json:"role"`
	EmployerName             string                 `json:"employer_name"`
	EmployerLogo             string                 `json:"employer_logo,omitempty"`
	JobLink                  string                 `json:"job_link,omitempty"`
	Description              string                 `json:"description"`
	MatchPercentage          int                    `json:"matchPercentage"`
	RelevantSkills           []Skill                `json:"relevantSkills"`
	SkillsToDevelop          []Skill                `json:"skillsToDevelop"`
	SkillProficiencyAnalysis []match.ProficiencyRow `json:"skillProficiencyAnalysis"`
}

// Result is one complete analysis for a single role type.
type Result struct {
	Name                         string       `json:"name"`
	Summary                      string       `json:"summary"`
	AtsScore                     AtsScore     `json:"atsScore"`
	ExtractedSkills              []Skill      `json:"extractedSkills"`
	ExperienceSummary            []string     `json:"experienceSummary"`
	EducationSummary             []string     `json:"educationSummary"`
	CareerPaths                  []CareerPath `json:"careerPaths"`
	GeneralResumeImprovements    []string     `json:"generalResumeImprovements"`
	GeneralUpskillingSuggestions []string     `json:"generalUpskillingSuggestions"`
}

// DualResult pairs the two role-type analyses produced per request.
type DualResult struct {
	FullTime   Result `json:"full_time_analysis"`
	Internship Result `json:"internship_analysis"`
}

func toSkills(names []string) []Skill {
	out := make([]Skill, 0, len(names))
	for _, name := range names {
		out = append(out, Skill{Name: name})
	}
	return out
}
