package keyword

import (
	"sort"
	"strings"

	"inkwell/backend/internal/model"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortKeywords returns a stably sorted copy. Supported fields: volume,
// difficulty, cpc, keyword. Unknown fields keep the input order.
func SortKeywords(keywords []model.Keyword, field, direction string) []model.Keyword {
	out := append([]model.Keyword(nil), keywords...)
	var less func(a, b model.Keyword) bool
	switch normalize(field) {
	case "volume":
		less = func(a, b model.Keyword) bool { return a.Volume < b.Volume }
	case "difficulty":
		less = func(a, b model.Keyword) bool { return a.Difficulty < b.Difficulty }
	case "cpc":
		less = func(a, b model.Keyword) bool { return a.CPC < b.CPC }
	case "keyword":
		less = func(a, b model.Keyword) bool { return strings.ToLower(a.Keyword) < strings.ToLower(b.Keyword) }
	default:
		return out
	}
	desc := normalize(direction) == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// SortClusters returns a stably sorted copy. Supported fields: volume,
// difficulty, size, name. Unknown fields keep the input order.
func SortClusters(clusters []model.Cluster, field, direction string) []model.Cluster {
	out := append([]model.Cluster(nil), clusters...)
	var less func(a, b model.Cluster) bool
	switch normalize(field) {
	case "volume":
		less = func(a, b model.Cluster) bool { return a.TotalVolume() < b.TotalVolume() }
	case "difficulty":
		less = func(a, b model.Cluster) bool { return AverageDifficulty(a) < AverageDifficulty(b) }
	case "size":
		less = func(a, b model.Cluster) bool { return len(a.Keywords) < len(b.Keywords) }
	case "name":
		less = func(a, b model.Cluster) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	default:
		return out
	}
	desc := normalize(direction) == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
