package match

import (
	"strings"
	"unicode"
)

// ProficiencyRow pairs an estimated candidate proficiency with the level a
// role typically requires, both on a 0-100 scale.
type ProficiencyRow struct {
	Skill               string `json:"skill"`
	UserProficiency     int    `json:"userProficiency"`
	RequiredProficiency int    `json:"requiredProficiency"`
}

const (
	proficiencyBase       = 40
	proficiencyPerMention = 15
	proficiencyCap        = 90

	requiredInternship = 60
	requiredSenior     = 85
	requiredDefault    = 70
)

var seniorTitleKeywords = []string{"senior", "lead", "manager"}

// EstimateProficiency derives a proficiency row per skill, preserving input
// order. Mentions are counted as raw case-insensitive substring occurrences,
// so repeated mentions inside compound words still raise the estimate; this
// mirrors the shipped scoring and is kept for compatibility.
func EstimateProficiency(jobTitle, resumeText string, skillNames []string, roleType RoleType) []ProficiencyRow {
	lowerTitle := strings.ToLower(jobTitle)
	senior := false
	for _, kw := range seniorTitleKeywords {
		if strings.Contains(lowerTitle, kw) {
			senior = true
			break
		}
	}

	required := requiredDefault
	if roleType == RoleInternship {
		required = requiredInternship
	} else if senior {
		required = requiredSenior
	}

	lowerResume := strings.ToLower(resumeText)
	rows := make([]ProficiencyRow, 0, len(skillNames))
	for _, name := range skillNames {
		mentions := strings.Count(lowerResume, strings.ToLower(name))
		user := proficiencyBase + mentions*proficiencyPerMention
		if user > proficiencyCap {
			user = proficiencyCap
		}
		rows = append(rows, ProficiencyRow{
			Skill:               titleCase(name),
			UserProficiency:     user,
			RequiredProficiency: required,
		})
	}
	return rows
}

// titleCase capitalizes the first letter of every run of letters and lowers
// the rest, matching the display convention of the frontend charts.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
