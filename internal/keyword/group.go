package keyword

import (
	"fmt"
	"strings"

	"inkwell/backend/internal/model"
)

const (
	GroupByIntent     = "intent"
	GroupByCluster    = "cluster"
	GroupByDifficulty = "difficulty"
	GroupByFirstWord  = "first_word"
)

// OtherGroup collects keywords whose group field is empty.
const OtherGroup = "other"

// Group is a set of keywords sharing a normalized key.
type Group struct {
	Key         string          `json:"key"`
	Keywords    []model.Keyword `json:"keywords"`
	TotalVolume int             `json:"totalVolume"`
}

// IsValidGroupField reports whether field is supported by GroupKeywords.
func IsValidGroupField(field string) bool {
	switch normalize(field) {
	case GroupByIntent, GroupByCluster, GroupByDifficulty, GroupByFirstWord:
		return true
	}
	return false
}

// GroupKeywords groups keywords by field. Keys are normalized and unique;
// groups appear in order of first appearance.
func GroupKeywords(keywords []model.Keyword, field string) ([]Group, error) {
	keyOf, err := groupKeyFunc(field)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, k := range keywords {
		key := normalize(keyOf(k))
		if key == "" {
			key = OtherGroup
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Keywords = append(groups[i].Keywords, k)
		groups[i].TotalVolume += k.Volume
	}
	return groups, nil
}

func groupKeyFunc(field string) (func(model.Keyword) string, error) {
	switch normalize(field) {
	case GroupByIntent:
		return func(k model.Keyword) string { return k.Intent }, nil
	case GroupByCluster:
		return func(k model.Keyword) string { return k.Cluster }, nil
	case GroupByDifficulty:
		return func(k model.Keyword) string { return DifficultyBucket(k.Difficulty) }, nil
	case GroupByFirstWord:
		return func(k model.Keyword) string {
			fields := strings.Fields(k.Keyword)
			if len(fields) == 0 {
				return ""
			}
			return fields[0]
		}, nil
	}
	return nil, fmt.Errorf("unsupported group field %q", field)
}

// DifficultyBucket maps a 0-100 difficulty score to easy, medium or hard.
func DifficultyBucket(difficulty int) string {
	switch {
	case difficulty < 30:
		return "easy"
	case difficulty < 60:
		return "medium"
	default:
		return "hard"
	}
}
