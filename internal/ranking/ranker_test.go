package ranking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"talentrank/internal/ai"
	"talentrank/internal/candidate"
	"talentrank/internal/industry"
)

type stubSummarizer struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (s *stubSummarizer) Summarize(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func newTestRanker(t *testing.T, summarizer *stubSummarizer) *Ranker {
	t.Helper()

	var s ai.Summarizer
	if summarizer != nil {
		s = summarizer
	}

	ranker := New(industry.Default(), s, zap.NewNop())
	// Tests do not need real pacing.
	ranker.limiter = rate.NewLimiter(rate.Inf, 1)
	return ranker
}

func testCandidates() *candidate.Candidates {
	return &candidate.Candidates{Items: []*candidate.Record{
		{
			Name:       "Alex Kim",
			Title:      "Senior Software Engineer",
			Company:    "Google",
			Experience: 8,
			Skills:     []string{"Python", "AWS"},
			Email:      "a@b.com",
		},
		{
			Name:  "Jane Doe",
			Title: "Junior Developer",
		},
		{
			Name:       "Sam Lee",
			Title:      "Engineering Manager",
			Company:    "Stripe",
			Experience: 10,
			Skills:     []string{"Go", "Kubernetes"},
		},
	}}
}

func TestRankEmptyInput(t *testing.T) {
	ranker := newTestRanker(t, nil)

	_, err := ranker.Rank(context.Background(), &candidate.Candidates{}, Options{})
	require.ErrorIs(t, err, ErrNoCandidates)
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	ranker := newTestRanker(t, nil)

	ranked, err := ranker.Rank(context.Background(), testCandidates(), Options{})
	require.NoError(t, err)
	require.Equal(t, 3, ranked.Len())

	for i := 1; i < ranked.Len(); i++ {
		require.GreaterOrEqual(t, ranked.Items[i-1].Score, ranked.Items[i].Score)
	}

	// The sparse record cannot outrank the populated ones.
	require.Equal(t, "Jane Doe", ranked.Items[2].Name)
}

func TestRankIsDeterministic(t *testing.T) {
	ranker := newTestRanker(t, nil)

	first, err := ranker.Rank(context.Background(), testCandidates(), Options{JobDescription: "requires 5+ years of experience with python"})
	require.NoError(t, err)

	second, err := ranker.Rank(context.Background(), testCandidates(), Options{JobDescription: "requires 5+ years of experience with python"})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRankStableOrderForEqualScores(t *testing.T) {
	ranker := newTestRanker(t, nil)

	// Identical records score identically and must keep input order.
	same := func(name string) *candidate.Record {
		return &candidate.Record{Name: name, Title: "Engineer", Experience: 4}
	}
	candidates := &candidate.Candidates{Items: []*candidate.Record{
		same("first"), same("second"), same("third"),
	}}

	ranked, err := ranker.Rank(context.Background(), candidates, Options{})
	require.NoError(t, err)

	require.Equal(t, "first", ranked.Items[0].Name)
	require.Equal(t, "second", ranked.Items[1].Name)
	require.Equal(t, "third", ranked.Items[2].Name)
}

func TestRankEveryCandidateGetsSummary(t *testing.T) {
	ranker := newTestRanker(t, nil)

	ranked, err := ranker.Rank(context.Background(), testCandidates(), Options{})
	require.NoError(t, err)

	for _, c := range ranked.Items {
		require.NotEmpty(t, c.Summary)
		require.Contains(t, c.Summary, fmt.Sprintf("(%d/100)", c.Score))
	}
}

func TestEnrichNameOnlyRecord(t *testing.T) {
	tech := industry.Default().Get("tech")

	got := enrich(&candidate.Record{Name: "Jane Doe"}, tech, Options{})

	require.Zero(t, got.Score)
	require.Zero(t, got.DataCompleteness)
	require.Equal(t, "Mid-Level", got.Seniority)
	require.Equal(t, "Low", got.Confidence.Level)
	require.Contains(t, got.Summary, "(0/100)")
	require.Equal(t, []string{"mid-level", "tech"}, got.Tags)
}

func TestRankIndustryOverride(t *testing.T) {
	ranker := newTestRanker(t, nil)

	ranked, err := ranker.Rank(context.Background(), testCandidates(), Options{Industry: "finance"})
	require.NoError(t, err)

	for _, c := range ranked.Items {
		require.Equal(t, "finance", c.Tags[len(c.Tags)-1])
	}
}

func TestRankEnhancesTopSummaries(t *testing.T) {
	summarizer := &stubSummarizer{text: "A carefully written assessment of this candidate's strengths."}
	ranker := newTestRanker(t, summarizer)

	ranked, err := ranker.Rank(context.Background(), testCandidates(), Options{})
	require.NoError(t, err)

	require.Equal(t, 3, summarizer.calls)
	for _, c := range ranked.Items {
		require.Equal(t, summarizer.text, c.Summary)
	}

	// Prompts carry the candidate facts and ranking context.
	require.Contains(t, summarizer.prompts[0], ranked.Items[0].Name)
	require.Contains(t, summarizer.prompts[0], "Industry: tech")
}

func TestRankEnhancementLimitedToTopFive(t *testing.T) {
	summarizer := &stubSummarizer{text: "A carefully written assessment of this candidate's strengths."}
	ranker := newTestRanker(t, summarizer)

	items := make([]*candidate.Record, 8)
	for i := range items {
		items[i] = &candidate.Record{
			Name:       fmt.Sprintf("candidate-%d", i),
			Title:      "Engineer",
			Experience: float64(i + 1),
		}
	}

	_, err := ranker.Rank(context.Background(), &candidate.Candidates{Items: items}, Options{})
	require.NoError(t, err)
	require.Equal(t, 5, summarizer.calls)
}

func TestRankEnhancementFailureKeepsDeterministicSummary(t *testing.T) {
	summarizer := &stubSummarizer{err: errors.New("quota exceeded")}
	ranker := newTestRanker(t, summarizer)

	ranked, err := ranker.Rank(context.Background(), testCandidates(), Options{})
	require.NoError(t, err)

	require.Equal(t, 3, summarizer.calls)
	for _, c := range ranked.Items {
		require.Contains(t, c.Summary, fmt.Sprintf("(%d/100)", c.Score))
	}
}

func TestRankEnhancementRejectsShortText(t *testing.T) {
	summarizer := &stubSummarizer{text: "too short"}
	ranker := newTestRanker(t, summarizer)

	ranked, err := ranker.Rank(context.Background(), testCandidates(), Options{})
	require.NoError(t, err)

	for _, c := range ranked.Items {
		require.NotEqual(t, "too short", c.Summary)
		require.Contains(t, c.Summary, fmt.Sprintf("(%d/100)", c.Score))
	}
}

func TestBuildPromptUsesJobDescriptionExcerpt(t *testing.T) {
	ranked := &candidate.Ranked{Name: "Alex Kim", Score: 80}

	long := make([]rune, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, 'x')
	}

	prompt := buildPrompt(ranked, string(long), "tech")
	require.Contains(t, prompt, string(long[:200])+"...")
	require.NotContains(t, prompt, "{{CANDIDATE}}")
	require.NotContains(t, prompt, "{{CONTEXT}}")
	require.Contains(t, prompt, "Not specified")
}
