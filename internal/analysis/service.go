package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pathwise-backend/internal/extract"
	"pathwise-backend/internal/jobsearch"
	"pathwise-backend/internal/llm"
	"pathwise-backend/internal/match"
	"pathwise-backend/internal/shared/metrics"
	"pathwise-backend/internal/shared/telemetry"
	"pathwise-backend/internal/skills"
)

const (
	maxCareerPaths     = 15
	maxChartMatching   = 4
	maxChartMissing    = 3
	descriptionDisplay = 150
)

// DocumentText converts a base64 document payload into plain resume text.
type DocumentText func(encoded string) (string, error)

// Service orchestrates the resume-to-job matching pipeline. All fields are
// wired once at startup; a nil Jobs client degrades to fallback listings.
type Service struct {
	Extractor *skills.Extractor
	Scorer    *match.Scorer
	Jobs      jobsearch.Client
	LLM       llm.Client
	Text      DocumentText
}

// NewService constructs a Service around a shared extractor. A nil llmClient
// is replaced with the placeholder so the templated summary takes over.
func NewService(extractor *skills.Extractor, jobs jobsearch.Client, llmClient llm.Client) *Service {
	if llmClient == nil {
		llmClient = llm.PlaceholderClient{}
	}
	return &Service{
		Extractor: extractor,
		Scorer:    match.NewScorer(extractor),
		Jobs:      jobs,
		LLM:       llmClient,
		Text:      extractDocumentText,
	}
}

func extractDocumentText(encoded string) (string, error) {
	data, err := extract.DecodeBase64Document(encoded)
	if err != nil {
		return "", err
	}
	return extract.TextFromBytes(data)
}

// AnalyzeDual decodes a base64 resume document and produces the full-time
// and internship analyses. The two job fetches are independent and run
// concurrently; either may come back empty without failing the other.
func (s *Service) AnalyzeDual(ctx context.Context, encodedDocument string) (DualResult, error) {
	text, err := s.Text(encodedDocument)
	if err != nil {
		return DualResult{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	profile, err := BuildProfile(text, s.Extractor)
	if err != nil {
		return DualResult{}, err
	}

	analysisID := uuid.NewString()
	startedAt := time.Now()
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.started", map[string]any{
		"analysis_id": analysisID,
		"name":        profile.Name,
		"skill_count": len(profile.Skills),
	})

	var dual DualResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dual.FullTime = s.buildAnalysis(gctx, profile, match.RoleFullTime)
		return nil
	})
	g.Go(func() error {
		dual.Internship = s.buildAnalysis(gctx, profile, match.RoleInternship)
		return nil
	})
	if err := g.Wait(); err != nil {
		return DualResult{}, err
	}

	durationMs := float64(time.Since(startedAt).Microseconds()) / 1000.0
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":      analysisID,
		"duration_ms":      durationMs,
		"full_time_paths":  len(dual.FullTime.CareerPaths),
		"internship_paths": len(dual.Internship.CareerPaths),
		"full_time_ats":    dual.FullTime.AtsScore.Score,
		"internship_ats":   dual.Internship.AtsScore.Score,
	})
	return dual, nil
}

// SearchJobs serves the on-demand search endpoint: listings shaped like
// career path entries with zeroed match and skill fields. Provider failure
// degrades to an empty result rather than a hard error.
func (s *Service) SearchJobs(ctx context.Context, query string, roleType match.RoleType) []CareerPath {
	if s.Jobs == nil {
		return []CareerPath{}
	}
	listings, err := s.Jobs.Search(ctx, query, roleType)
	if err != nil {
		telemetry.Warn("jobsearch.unavailable", map[string]any{
			"query": query,
			"error": err.Error(),
		})
		return []CareerPath{}
	}
	paths := make([]CareerPath, 0, len(listings))
	for _, job := range listings {
		paths = append(paths, CareerPath{
			Role:                     orDefault(job.Title, "N/A"),
			EmployerName:             orDefault(job.EmployerName, "N/A"),
			EmployerLogo:             job.EmployerLogo,
			JobLink:                  jobLink(job),
			Description:              displayDescription(job.Description),
			MatchPercentage:          0,
			RelevantSkills:           []Skill{},
			SkillsToDevelop:          []Skill{},
			SkillProficiencyAnalysis: []match.ProficiencyRow{},
		})
	}
	return paths
}

func (s *Service) buildAnalysis(ctx context.Context, profile Profile, roleType match.RoleType) Result {
	listings := s.fetchListings(ctx, profile.Skills, roleType)
	careerPaths := s.careerPaths(profile, listings, roleType)

	topMissing := ""
	if len(careerPaths) > 0 && len(careerPaths[0].SkillsToDevelop) > 0 {
		topMissing = careerPaths[0].SkillsToDevelop[0].Name
	}
	improvements, upskilling := recommendationsFor(profile.Skills, topMissing, roleType)

	return Result{
		Name:                         profile.Name,
		Summary:                      s.summaryFor(ctx, profile, roleType),
		AtsScore:                     computeAtsScore(profile.RawText, profile.Skills, profile.ExperienceLines, profile.EducationLines),
		ExtractedSkills:              toSkills(profile.Skills),
		ExperienceSummary:            orEmpty(profile.ExperienceLines),
		EducationSummary:             orEmpty(profile.EducationLines),
		CareerPaths:                  careerPaths,
		GeneralResumeImprovements:    improvements,
		GeneralUpskillingSuggestions: upskilling,
	}
}

// fetchListings walks the query fallback chain. Provider failure (absent) at
// every step substitutes the static fallback dataset; a reachable provider
// that finds nothing yields an empty slice, which is not an error.
func (s *Service) fetchListings(ctx context.Context, skillNames []string, roleType match.RoleType) []jobsearch.Listing {
	if s.Jobs == nil {
		return jobsearch.FallbackListings(roleType)
	}
	absent := false
	for _, query := range buildQueries(skillNames, roleType) {
		listings, err := s.Jobs.Search(ctx, query, roleType)
		if err != nil {
			absent = true
			telemetry.Warn("jobsearch.unavailable", map[string]any{
				"query":     query,
				"role_type": string(roleType),
				"error":     err.Error(),
			})
			continue
		}
		if len(listings) > 0 {
			return listings
		}
	}
	if absent {
		telemetry.Warn("jobsearch.fallback_dataset", map[string]any{
			"role_type": string(roleType),
		})
		return jobsearch.FallbackListings(roleType)
	}
	return nil
}

func buildQueries(skillNames []string, roleType match.RoleType) []string {
	role := string(roleType)
	seeds := querySeeds(skillNames)
	var queries []string
	if len(seeds) >= 2 {
		queries = append(queries, fmt.Sprintf("%q", seeds[0]+" "+seeds[1]+" "+role))
	}
	if len(seeds) >= 1 {
		queries = append(queries, fmt.Sprintf("%q", seeds[0]+" "+role))
	}
	queries = append(queries, fmt.Sprintf("%q", "Software Developer "+role))
	return queries
}

// querySeeds picks up to two skills to seed job queries, preferring the
// core subset over soft skills so searches target marketable technologies.
func querySeeds(skillNames []string) []string {
	var seeds []string
	for _, name := range skillNames {
		if skills.IsCore(name) {
			seeds = append(seeds, name)
			if len(seeds) == 2 {
				return seeds
			}
		}
	}
	for _, name := range skillNames {
		if skills.IsCore(name) {
			continue
		}
		seeds = append(seeds, name)
		if len(seeds) == 2 {
			return seeds
		}
	}
	return seeds
}

func (s *Service) careerPaths(profile Profile, listings []jobsearch.Listing, roleType match.RoleType) []CareerPath {
	if len(listings) > maxCareerPaths {
		listings = listings[:maxCareerPaths]
	}
	descriptions := make([]string, len(listings))
	for i, job := range listings {
		descriptions[i] = job.Description
	}
	scores := s.Scorer.ScoreBatch(profile.Skills, descriptions)

	paths := make([]CareerPath, 0, len(listings))
	for i, job := range listings {
		gap := s.Scorer.AnalyzeGap(profile.Skills, job.Description)
		chartSkills := make([]string, 0, maxChartMatching+maxChartMissing)
		chartSkills = append(chartSkills, limit(gap.Matching, maxChartMatching)...)
		chartSkills = append(chartSkills, limit(gap.Missing, maxChartMissing)...)

		paths = append(paths, CareerPath{
			Role:                     orDefault(job.Title, "N/A"),
			EmployerName:             orDefault(job.EmployerName, "N/A"),
			EmployerLogo:             job.EmployerLogo,
			JobLink:                  jobLink(job),
			Description:              displayDescription(job.Description),
			MatchPercentage:          int(math.Round(scores[i] * 100)),
			RelevantSkills:           toSkills(gap.Matching),
			SkillsToDevelop:          toSkills(gap.Missing),
			SkillProficiencyAnalysis: match.EstimateProficiency(job.Title, profile.RawText, chartSkills, roleType),
		})
	}

	// Stable: listings with equal scores keep their upstream order.
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].MatchPercentage > paths[j].MatchPercentage
	})
	return paths
}

func (s *Service) summaryFor(ctx context.Context, profile Profile, roleType match.RoleType) string {
	summary, err := s.LLM.SummarizeProfile(ctx, llm.SummaryInput{
		ResumeText: profile.RawText,
		Skills:     profile.Skills,
		RoleType:   roleType,
	})
	if err == nil {
		return summary
	}
	if !errors.Is(err, llm.ErrNotConfigured) {
		telemetry.Warn("llm.summary_fallback", map[string]any{
			"role_type": string(roleType),
			"error":     err.Error(),
		})
	}
	return professionalSummary(profile.RawText, profile.Skills, roleType, time.Now())
}

func jobLink(job jobsearch.Listing) string {
	if job.ApplyLink != "" {
		return job.ApplyLink
	}
	return "https://www.google.com/search?q=" + url.QueryEscape(job.Title+" "+job.EmployerName)
}

func displayDescription(description string) string {
	if description == "" {
		description = "No description."
	}
	runes := []rune(description)
	if len(runes) > descriptionDisplay {
		runes = runes[:descriptionDisplay]
	}
	return string(runes) + "..."
}

func limit(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func orEmpty(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
