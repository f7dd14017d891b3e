// Package keyword holds the view-model transformations applied to keyword
// research results: filtering, sorting, grouping, cluster selection and
// priority slots. All functions are pure; empty input yields empty output.
package keyword

import (
	"strings"

	"inkwell/backend/internal/model"
)

// Filter narrows keywords or clusters. Zero values disable a criterion.
type Filter struct {
	Query         string
	MinVolume     int
	MaxVolume     int
	MinDifficulty int
	MaxDifficulty int
	Intents       []string
}

func (f Filter) intentSet() map[string]struct{} {
	if len(f.Intents) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(f.Intents))
	for _, intent := range f.Intents {
		intent = normalize(intent)
		if intent != "" {
			set[intent] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func (f Filter) matchRanges(volume, difficulty int) bool {
	if f.MinVolume > 0 && volume < f.MinVolume {
		return false
	}
	if f.MaxVolume > 0 && volume > f.MaxVolume {
		return false
	}
	if f.MinDifficulty > 0 && difficulty < f.MinDifficulty {
		return false
	}
	if f.MaxDifficulty > 0 && difficulty > f.MaxDifficulty {
		return false
	}
	return true
}

func matchIntent(set map[string]struct{}, intent string) bool {
	if set == nil {
		return true
	}
	_, ok := set[normalize(intent)]
	return ok
}

// containsFold is a case-insensitive substring match. An empty needle matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FilterKeywords returns the keywords matching f, preserving input order.
func FilterKeywords(keywords []model.Keyword, f Filter) []model.Keyword {
	out := make([]model.Keyword, 0, len(keywords))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	intents := f.intentSet()
	for _, k := range keywords {
		if !containsFold(k.Keyword, query) {
			continue
		}
		if !f.matchRanges(k.Volume, k.Difficulty) {
			continue
		}
		if !matchIntent(intents, k.Intent) {
			continue
		}
		out = append(out, k)
	}
	return out
}

// FilterClusters returns the clusters matching f, preserving input order.
// The query matches the cluster name or any member keyword. Volume bounds
// apply to the cluster's total volume, difficulty bounds to its average.
func FilterClusters(clusters []model.Cluster, f Filter) []model.Cluster {
	out := make([]model.Cluster, 0, len(clusters))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	intents := f.intentSet()
	for _, c := range clusters {
		if !clusterMatchesQuery(c, query) {
			continue
		}
		if !f.matchRanges(c.TotalVolume(), AverageDifficulty(c)) {
			continue
		}
		if !matchIntent(intents, c.Intent) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func clusterMatchesQuery(c model.Cluster, query string) bool {
	if query == "" || containsFold(c.Name, query) || containsFold(c.MainKeyword, query) {
		return true
	}
	for _, k := range c.Keywords {
		if containsFold(k.Keyword, query) {
			return true
		}
	}
	return false
}

// AverageDifficulty is the rounded mean difficulty of a cluster's keywords.
func AverageDifficulty(c model.Cluster) int {
	if len(c.Keywords) == 0 {
		return 0
	}
	total := 0
	for _, k := range c.Keywords {
		total += k.Difficulty
	}
	return (total + len(c.Keywords)/2) / len(c.Keywords)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
