package analysis

import (
	"regexp"

	"pathwise-backend/internal/skills"
)

// defaultName is used when no candidate name can be located.
const defaultName = "Valued Professional"

var namePattern = regexp.MustCompile(`^\s*([A-Z][a-z]+(?:\s[A-Z][a-z]+)+)`)

// Profile is the structured view of one resume, built once per request and
// immutable afterwards.
type Profile struct {
	RawText         string
	Name            string
	Skills          []string
	ExperienceLines []string
	EducationLines  []string
}

// BuildProfile derives a Profile from raw resume text. A resume with zero
// extractable skills fails with ErrNoSkills; this is a hard precondition of
// the whole analysis, not a partial-result situation.
func BuildProfile(text string, extractor *skills.Extractor) (Profile, error) {
	extracted := extractor.Extract(text)
	if len(extracted) == 0 {
		return Profile{}, ErrNoSkills
	}
	return Profile{
		RawText:         text,
		Name:            extractName(text),
		Skills:          extracted,
		ExperienceLines: skills.SectionContent(text, "Experience"),
		EducationLines:  skills.SectionContent(text, "Education"),
	}, nil
}

func extractName(text string) string {
	if m := namePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return defaultName
}
