package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talentrank/internal/industry"
)

func TestNormalizeSkills(t *testing.T) {
	tech := industry.Default().Get("tech")

	t.Run("keeps explicit skills as-is", func(t *testing.T) {
		got := NormalizeSkills([]string{"Python", "AWS"}, "Senior Software Engineer", tech)
		require.Equal(t, []string{"Python", "AWS"}, got)
	})

	t.Run("infers skills and specializations from the title", func(t *testing.T) {
		got := NormalizeSkills(nil, "React Developer", tech)
		require.Contains(t, got, "React")
		require.Contains(t, got, "frontend")
	})

	t.Run("deduplicates case-insensitively keeping first spelling", func(t *testing.T) {
		got := NormalizeSkills([]string{"python", "Python", " AWS ", "aws"}, "", tech)
		require.Equal(t, []string{"python", "AWS"}, got)
	})

	t.Run("inferred skill does not duplicate an explicit one", func(t *testing.T) {
		got := NormalizeSkills([]string{"react"}, "React Engineer", tech)

		count := 0
		for _, skill := range got {
			if skill == "react" || skill == "React" {
				count++
			}
		}
		require.Equal(t, 1, count)
	})

	t.Run("drops blank entries", func(t *testing.T) {
		got := NormalizeSkills([]string{"", "  ", "Go"}, "", tech)
		require.Equal(t, []string{"Go"}, got)
	})

	t.Run("empty input and title yield empty result", func(t *testing.T) {
		require.Empty(t, NormalizeSkills(nil, "", tech))
	})
}
