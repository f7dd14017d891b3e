package keyword_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/keyword"
	"inkwell/backend/internal/model"
)

func sampleKeywords() []model.Keyword {
	return []model.Keyword{
		{Keyword: "Best Running Shoes", Volume: 12000, Difficulty: 72, CPC: 1.8, Intent: "Commercial", Cluster: "shoes"},
		{Keyword: "running shoes for flat feet", Volume: 2400, Difficulty: 41, CPC: 1.1, Intent: "commercial", Cluster: "shoes"},
		{Keyword: "how to start running", Volume: 8100, Difficulty: 25, CPC: 0.4, Intent: "informational", Cluster: "beginner"},
		{Keyword: "couch to 5k", Volume: 40500, Difficulty: 55, CPC: 0.2, Intent: " Informational ", Cluster: "beginner"},
		{Keyword: "marathon training plan", Volume: 6600, Difficulty: 48, CPC: 0.9, Intent: "", Cluster: ""},
	}
}

func keywordTexts(keywords []model.Keyword) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, k.Keyword)
	}
	return out
}

func TestFilterKeywords_QueryIsCaseInsensitive(t *testing.T) {
	got := keyword.FilterKeywords(sampleKeywords(), keyword.Filter{Query: "RUNNING shoes"})
	want := []string{"Best Running Shoes", "running shoes for flat feet"}
	if diff := cmp.Diff(want, keywordTexts(got)); diff != "" {
		t.Fatalf("unexpected keywords (-want +got):\n%s", diff)
	}
}

func TestFilterKeywords_Ranges(t *testing.T) {
	got := keyword.FilterKeywords(sampleKeywords(), keyword.Filter{MinVolume: 5000, MaxDifficulty: 50})
	require.Equal(t, []string{"how to start running", "marathon training plan"}, keywordTexts(got))
}

func TestFilterKeywords_Intents(t *testing.T) {
	got := keyword.FilterKeywords(sampleKeywords(), keyword.Filter{Intents: []string{"INFORMATIONAL"}})
	require.Equal(t, []string{"how to start running", "couch to 5k"}, keywordTexts(got))
}

func TestFilterKeywords_EmptyInput(t *testing.T) {
	got := keyword.FilterKeywords(nil, keyword.Filter{Query: "x"})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFilterKeywords_EmptyFilterKeepsOrder(t *testing.T) {
	in := sampleKeywords()
	got := keyword.FilterKeywords(in, keyword.Filter{})
	require.Equal(t, keywordTexts(in), keywordTexts(got))
}

func TestFilterClusters(t *testing.T) {
	clusters := []model.Cluster{
		{ID: "c1", Name: "Running Shoes", Intent: "commercial", Keywords: sampleKeywords()[:2]},
		{ID: "c2", Name: "Beginners", Intent: "informational", Keywords: sampleKeywords()[2:4]},
	}

	byMember := keyword.FilterClusters(clusters, keyword.Filter{Query: "COUCH"})
	require.Len(t, byMember, 1)
	require.Equal(t, "c2", byMember[0].ID)

	byName := keyword.FilterClusters(clusters, keyword.Filter{Query: "shoes"})
	require.Len(t, byName, 1)
	require.Equal(t, "c1", byName[0].ID)

	byVolume := keyword.FilterClusters(clusters, keyword.Filter{MinVolume: 20000})
	require.Len(t, byVolume, 1)
	require.Equal(t, "c2", byVolume[0].ID)

	require.Empty(t, keyword.FilterClusters(nil, keyword.Filter{}))
}

func TestAverageDifficulty(t *testing.T) {
	c := model.Cluster{Keywords: []model.Keyword{{Difficulty: 10}, {Difficulty: 21}}}
	require.Equal(t, 16, keyword.AverageDifficulty(c))
	require.Equal(t, 0, keyword.AverageDifficulty(model.Cluster{}))
}

func TestSortKeywords(t *testing.T) {
	in := sampleKeywords()

	byVolumeDesc := keyword.SortKeywords(in, "volume", keyword.SortDesc)
	require.Equal(t, "couch to 5k", byVolumeDesc[0].Keyword)
	require.Equal(t, "running shoes for flat feet", byVolumeDesc[len(byVolumeDesc)-1].Keyword)

	byName := keyword.SortKeywords(in, "keyword", keyword.SortAsc)
	require.Equal(t, "Best Running Shoes", byName[0].Keyword)

	unknown := keyword.SortKeywords(in, "bogus", keyword.SortAsc)
	require.Equal(t, keywordTexts(in), keywordTexts(unknown))

	// input is not modified
	require.Equal(t, "Best Running Shoes", in[0].Keyword)
}

func TestSortClusters(t *testing.T) {
	clusters := []model.Cluster{
		{ID: "a", Name: "b", Keywords: []model.Keyword{{Volume: 1}}},
		{ID: "b", Name: "A", Keywords: []model.Keyword{{Volume: 5}, {Volume: 5}}},
	}
	require.Equal(t, "b", keyword.SortClusters(clusters, "volume", keyword.SortDesc)[0].ID)
	require.Equal(t, "b", keyword.SortClusters(clusters, "name", keyword.SortAsc)[0].ID)
	require.Equal(t, "a", keyword.SortClusters(clusters, "size", keyword.SortAsc)[0].ID)
}
