package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/keyword"
)

func TestGroupKeywords_NoDuplicateKeys(t *testing.T) {
	for _, field := range []string{keyword.GroupByIntent, keyword.GroupByCluster, keyword.GroupByDifficulty, keyword.GroupByFirstWord} {
		groups, err := keyword.GroupKeywords(sampleKeywords(), field)
		require.NoError(t, err, field)

		seen := map[string]bool{}
		total := 0
		for _, g := range groups {
			require.False(t, seen[g.Key], "duplicate key %q for field %s", g.Key, field)
			seen[g.Key] = true
			total += len(g.Keywords)
		}
		require.Equal(t, len(sampleKeywords()), total, field)
	}
}

func TestGroupKeywords_ByIntent(t *testing.T) {
	groups, err := keyword.GroupKeywords(sampleKeywords(), "Intent")
	require.NoError(t, err)
	require.Len(t, groups, 3)

	require.Equal(t, "commercial", groups[0].Key)
	require.Len(t, groups[0].Keywords, 2)
	require.Equal(t, 14400, groups[0].TotalVolume)

	require.Equal(t, "informational", groups[1].Key)
	require.Len(t, groups[1].Keywords, 2)

	require.Equal(t, keyword.OtherGroup, groups[2].Key)
}

func TestGroupKeywords_ByDifficulty(t *testing.T) {
	groups, err := keyword.GroupKeywords(sampleKeywords(), keyword.GroupByDifficulty)
	require.NoError(t, err)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	require.Equal(t, []string{"hard", "medium", "easy"}, keys)
}

func TestGroupKeywords_EmptyInput(t *testing.T) {
	groups, err := keyword.GroupKeywords(nil, keyword.GroupByIntent)
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestGroupKeywords_UnknownField(t *testing.T) {
	_, err := keyword.GroupKeywords(sampleKeywords(), "color")
	require.Error(t, err)
	require.False(t, keyword.IsValidGroupField("color"))
	require.True(t, keyword.IsValidGroupField("first_word"))
}

func TestDifficultyBucket(t *testing.T) {
	require.Equal(t, "easy", keyword.DifficultyBucket(0))
	require.Equal(t, "easy", keyword.DifficultyBucket(29))
	require.Equal(t, "medium", keyword.DifficultyBucket(30))
	require.Equal(t, "medium", keyword.DifficultyBucket(59))
	require.Equal(t, "hard", keyword.DifficultyBucket(60))
}
