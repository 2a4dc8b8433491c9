package match

// Gap partitions a job's required skills relative to a resume.
// Matching and Missing are disjoint and together equal the job's own
// extracted skill set.
type Gap struct {
	Matching []string
	Missing  []string
}

// AnalyzeGap extracts the job description's skill set and splits it into
// skills the resume already covers and skills it lacks. Order follows the
// extractor's alphabetical ordering.
func (s *Scorer) AnalyzeGap(resumeSkills []string, jobDescriptionText string) Gap {
	resumeSet := toSet(resumeSkills)
	jobSkills := s.extractor.Extract(jobDescriptionText)

	gap := Gap{Matching: []string{}, Missing: []string{}}
	for _, skill := range jobSkills {
		if _, ok := resumeSet[skill]; ok {
			gap.Matching = append(gap.Matching, skill)
		} else {
			gap.Missing = append(gap.Missing, skill)
		}
	}
	return gap
}
