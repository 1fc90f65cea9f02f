package ranking

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"talentrank/internal/ai"
	"talentrank/internal/candidate"
	"talentrank/internal/industry"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrNoCandidates is the only fatal error of the pipeline: ranking an empty
// candidate list.
var ErrNoCandidates = errors.New("no candidates provided for ranking")

//go:embed prompt.md
var promptTemplate string

const (
	defaultEnhanceTop = 5
	// Fixed pacing between successive summarizer calls.
	defaultPace       = time.Second
	minEnhancedLength = 20
	jobExcerptLength  = 200
)

// Ranker runs the end-to-end pipeline: industry detection, per-candidate
// scoring and enrichment, stable sorting, and the optional best-effort
// summary enhancement for the top candidates.
type Ranker struct {
	catalog    *industry.Catalog
	summarizer ai.Summarizer
	logger     *zap.Logger
	limiter    *rate.Limiter
	enhanceTop int
}

// New creates a Ranker. The summarizer may be nil; the pipeline then produces
// the deterministic summaries only.
func New(catalog *industry.Catalog, summarizer ai.Summarizer, log *zap.Logger) *Ranker {
	return &Ranker{
		catalog:    catalog,
		summarizer: summarizer,
		logger:     log,
		limiter:    rate.NewLimiter(rate.Every(defaultPace), 1),
		enhanceTop: defaultEnhanceTop,
	}
}

// Rank scores and enriches every candidate and returns the full list ordered
// by total score descending. Candidates with equal scores keep their original
// relative order.
func (r *Ranker) Rank(ctx context.Context, candidates *candidate.Candidates, opts Options) (*candidate.RankedList, error) {
	if candidates.Len() == 0 {
		return nil, ErrNoCandidates
	}

	r.logger.Info("ranking candidates", zap.Int("count", candidates.Len()))

	key := opts.Industry
	if key == "" {
		key = r.catalog.Detect(titles(candidates), opts.JobDescription)
	}
	profile := r.catalog.Get(key)

	r.logger.Info("using industry profile", zap.String("industry", profile.Key))

	// Per-candidate enrichment is pure, so candidates are scored in
	// parallel; each goroutine owns exactly one result slot.
	ranked := make([]*candidate.Ranked, candidates.Len())
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, record := range candidates.Items {
		group.Go(func() error {
			ranked[i] = enrich(record, profile, opts)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("scoring candidates: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	list := &candidate.RankedList{Items: ranked}

	if r.summarizer != nil {
		r.enhance(ctx, list.Top(r.enhanceTop), opts.JobDescription, profile.Key)
	}

	top := list.Items[0]
	r.logger.Info("ranking complete",
		zap.String("top_candidate", top.Name),
		zap.Int("top_score", top.Score),
	)

	return list, nil
}

// enrich builds one immutable ranked candidate from a raw record.
func enrich(r *candidate.Record, profile *industry.Profile, opts Options) *candidate.Ranked {
	completeness := Completeness(r)
	skills := NormalizeSkills(r.Skills, r.Title, profile)
	details := Score(r, skills, completeness, profile, opts)
	seniority := Seniority(r.Experience, r.Title, profile)
	tags := Tags(r, skills, profile, seniority, profile.Key)
	confidence := ConfidenceFor(details.Total, completeness)
	summary := Summary(r, skills, seniority, confidence, details)

	return &candidate.Ranked{
		Name:             r.Name,
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Experience:       r.Experience,
		Email:            r.Email,
		ProfileURL:       r.ProfileURL,
		Source:           r.Source,
		ConnectionDegree: r.ConnectionDegree,
		ExternalID:       r.ExternalID,
		History:          r.History,
		Score:            details.Total,
		Details:          details,
		Seniority:        seniority,
		Confidence:       confidence,
		Skills:           skills,
		Tags:             tags,
		DataCompleteness: completeness,
		Summary:          summary,
	}
}

// enhance rewrites the summaries of the top candidates through the injected
// summarizer. It is strictly best-effort: every failure keeps the
// deterministic summary, and calls are paced to respect provider rate limits.
func (r *Ranker) enhance(ctx context.Context, top []*candidate.Ranked, jobDescription, industryKey string) {
	for _, cand := range top {
		if err := r.limiter.Wait(ctx); err != nil {
			r.logger.Warn("summary enhancement interrupted", zap.Error(err))
			return
		}

		text, err := r.summarizer.Summarize(ctx, buildPrompt(cand, jobDescription, industryKey))
		if err != nil {
			r.logger.Warn("summary enhancement failed",
				zap.String("candidate", cand.Name),
				zap.Error(err),
			)
			continue
		}

		if utf8.RuneCountInString(text) <= minEnhancedLength {
			r.logger.Debug("generated summary too short, keeping deterministic one",
				zap.String("candidate", cand.Name),
			)
			continue
		}

		cand.Summary = text
		r.logger.Debug("enhanced summary", zap.String("candidate", cand.Name))
	}
}

func buildPrompt(c *candidate.Ranked, jobDescription, industryKey string) string {
	facts := []string{
		"Name: " + c.Name,
		"Current Title: " + orUnspecified(c.Title),
		"Current Company: " + orUnspecified(c.Company),
		"Years of Experience: " + orUnspecified(experienceFact(c.Experience)),
		"Location: " + orUnspecified(c.Location),
		"Skills: " + orUnspecified(strings.Join(c.Skills, ", ")),
		"Seniority Level: " + orUnspecified(c.Seniority),
		fmt.Sprintf("Confidence Score: %d/100 (%s)", c.Score, c.Confidence.Level),
	}

	context := "Industry: " + industryKey
	if jobDescription != "" {
		excerpt := jobDescription
		if utf8.RuneCountInString(excerpt) > jobExcerptLength {
			excerpt = string([]rune(excerpt)[:jobExcerptLength]) + "..."
		}
		context = "Job Description: " + excerpt
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{CANDIDATE}}", strings.Join(facts, "\n"))
	return strings.ReplaceAll(prompt, "{{CONTEXT}}", context)
}

func experienceFact(experience float64) string {
	if experience <= 0 {
		return ""
	}
	return formatYears(experience)
}

func orUnspecified(value string) string {
	if value == "" {
		return "Not specified"
	}
	return value
}

func titles(c *candidate.Candidates) []string {
	result := make([]string, 0, c.Len())
	for _, record := range c.Items {
		result = append(result, record.Title)
	}
	return result
}
