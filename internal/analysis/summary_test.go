package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pathwise-backend/internal/match"
)

var summaryNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestProfessionalSummaryInternship(t *testing.T) {
	got := professionalSummary("any text", []string{"python", "sql", "git"}, match.RoleInternship, summaryNow)
	assert.Equal(t,
		"An aspiring professional eager to apply a strong academic foundation and skills in python, sql, and git to a challenging internship.",
		got)
}

func TestProfessionalSummaryFullTimeYears(t *testing.T) {
	text := "Worked at Acme from 2019 to 2023 on platform infrastructure."
	got := professionalSummary(text, []string{"python", "sql", "git"}, match.RoleFullTime, summaryNow)
	assert.Equal(t,
		"A results-oriented professional with ~7 years of experience, demonstrating expertise in python, sql, and git.",
		got)
}

func TestProfessionalSummaryNoYears(t *testing.T) {
	got := professionalSummary("no dates here", []string{"python", "sql", "git"}, match.RoleFullTime, summaryNow)
	assert.Contains(t, got, "~several years of experience")
}

func TestProfessionalSummaryPadsSkills(t *testing.T) {
	got := professionalSummary("text", []string{"python"}, match.RoleInternship, summaryNow)
	assert.Contains(t, got, "python, valuable skills, and valuable skills")
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"earliest year wins", "2021 then 2018 then 2023", 8},
		{"future years ignored", "Graduating 2030", 0},
		{"no years", "no digits", 0},
		{"pre-2000 not recognized", "Worked since 1998", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, experienceYears(tt.text, summaryNow))
		})
	}
}
