package candidate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeWeaklyTyped(t *testing.T) {
	items := []map[string]any{
		{
			"name":       "Alex Kim",
			"title":      "Engineer",
			"experience": "8", // string instead of number
			"skills":     []any{"Python", "AWS"},
			"linkedin":   "https://linkedin.com/in/alexkim",
			"apolloId":   12345, // number instead of string
			"unknown":    "ignored",
		},
		{
			"name": "Jane Doe",
		},
	}

	candidates, err := Decode(items)
	require.NoError(t, err)
	require.Equal(t, 2, candidates.Len())

	first := candidates.Items[0]
	require.Equal(t, "Alex Kim", first.Name)
	require.Equal(t, 8.0, first.Experience)
	require.Equal(t, []string{"Python", "AWS"}, first.Skills)
	require.Equal(t, "https://linkedin.com/in/alexkim", first.ProfileURL)
	require.Equal(t, "12345", first.ExternalID)

	second := candidates.Items[1]
	require.Equal(t, "Jane Doe", second.Name)
	require.Zero(t, second.Experience)
	require.Empty(t, second.Skills)
}

func TestDecodeEmploymentHistory(t *testing.T) {
	items := []map[string]any{
		{
			"name": "Sam Lee",
			"experienceDetails": []any{
				map[string]any{
					"title":     "Engineer",
					"company":   "Initech",
					"startDate": "2019-01",
					"endDate":   "2022-06",
				},
			},
		},
	}

	candidates, err := Decode(items)
	require.NoError(t, err)
	require.Len(t, candidates.Items[0].History, 1)

	entry := candidates.Items[0].History[0]
	require.Equal(t, "Initech", entry.Company)
	require.Equal(t, "2019-01", entry.StartDate)
	require.Equal(t, "2022-06", entry.EndDate)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	payload := `[{"name": "Alex Kim", "title": "Engineer", "experience": 4}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	candidates, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, candidates.Len())
	require.Equal(t, "Alex Kim", candidates.Items[0].Name)
	require.Equal(t, 4.0, candidates.Items[0].Experience)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
}

func TestCandidatesLenNil(t *testing.T) {
	var c *Candidates
	require.Zero(t, c.Len())
}

func TestRankedListTop(t *testing.T) {
	list := &RankedList{Items: []*Ranked{
		{Name: "a", Score: 90},
		{Name: "b", Score: 80},
		{Name: "c", Score: 70},
	}}

	require.Len(t, list.Top(2), 2)
	require.Equal(t, "a", list.Top(2)[0].Name)
	require.Len(t, list.Top(10), 3)
	require.Nil(t, list.Top(0))

	var empty *RankedList
	require.Nil(t, empty.Top(5))
}

func TestReportBySeniority(t *testing.T) {
	list := &RankedList{Items: []*Ranked{
		{Name: "a", Seniority: "Senior", Score: 90, Confidence: Confidence{Label: "Strong Match"}},
		{Name: "b", Seniority: "Senior", Score: 80},
		{Name: "c", Seniority: "Junior", Score: 40},
	}}

	report := list.ReportBySeniority()
	require.Len(t, report, 2)
	require.Len(t, report["Senior"], 2)
	require.Len(t, report["Junior"], 1)
	require.Equal(t, "90/100", report["Senior"][0]["score"])
	require.Equal(t, "Strong Match", report["Senior"][0]["confidence"])
}

func TestDumpToTmpFile(t *testing.T) {
	list := &RankedList{Items: []*Ranked{
		{Name: "a", Score: 90, Seniority: "Senior"},
	}}

	filename, err := list.DumpToTmpFile()
	require.NoError(t, err)
	defer os.Remove(filename)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var decoded []*Ranked
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "a", decoded[0].Name)
	require.Equal(t, 90, decoded[0].Score)
}
