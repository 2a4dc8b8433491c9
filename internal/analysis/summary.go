package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"pathwise-backend/internal/match"
)

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// professionalSummary builds the deterministic templated summary. The
// full-time variant estimates experience length from the earliest plausible
// year mentioned in the resume.
func professionalSummary(text string, skillNames []string, roleType match.RoleType, now time.Time) string {
	padded := append([]string{}, skillNames...)
	for len(padded) < 3 {
		padded = append(padded, "valuable skills")
	}

	if roleType == match.RoleInternship {
		return fmt.Sprintf(
			"An aspiring professional eager to apply a strong academic foundation and skills in %s, %s, and %s to a challenging internship.",
			padded[0], padded[1], padded[2],
		)
	}

	yearsText := "several"
	if years := experienceYears(text, now); years > 0 {
		yearsText = strconv.Itoa(years)
	}
	return fmt.Sprintf(
		"A results-oriented professional with ~%s years of experience, demonstrating expertise in %s, %s, and %s.",
		yearsText, padded[0], padded[1], padded[2],
	)
}

func experienceYears(text string, now time.Time) int {
	earliest := 0
	for _, m := range yearPattern.FindAllStringSubmatch(text, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil || year > now.Year() {
			continue
		}
		if earliest == 0 || year < earliest {
			earliest = year
		}
	}
	if earliest == 0 {
		return 0
	}
	return now.Year() - earliest
}
