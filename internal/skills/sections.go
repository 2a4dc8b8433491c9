package skills

import (
	"regexp"
	"strings"
)

// sectionHeadings is the closed set of headings that open a section span and
// terminate the previous one.
var sectionHeadings = []string{
	"education", "experience", "skills", "projects", "certifications", "awards",
}

// headingPatterns holds one compiled heading matcher per known section,
// compiled once at package init like the extractor's alternation pattern.
var headingPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(sectionHeadings))
	for _, heading := range sectionHeadings {
		patterns[heading] = regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(heading) + `[ \t\r]*$`)
	}
	return patterns
}()

// Lines shorter than this are treated as headers, bullet glyphs, or noise and
// dropped from section content.
const minSectionLineLength = 25

// SectionContent returns the substantive lines of the named resume section.
// The heading must sit alone on its own line (case-insensitive, surrounding
// whitespace ignored). The span runs until the next known heading or end of
// document. A missing heading, or a title outside the known heading set,
// yields nil rather than an error.
func SectionContent(text, sectionTitle string) []string {
	lowerTitle := strings.ToLower(strings.TrimSpace(sectionTitle))
	headingPattern, ok := headingPatterns[lowerTitle]
	if !ok {
		return nil
	}
	loc := headingPattern.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	sectionText := text[loc[1]:]
	end := len(sectionText)
	for heading, next := range headingPatterns {
		if heading == lowerTitle {
			continue
		}
		if nextLoc := next.FindStringIndex(sectionText); nextLoc != nil && nextLoc[0] < end {
			end = nextLoc[0]
		}
	}

	var out []string
	for _, line := range strings.Split(strings.TrimSpace(sectionText[:end]), "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > minSectionLineLength {
			out = append(out, trimmed)
		}
	}
	return out
}
