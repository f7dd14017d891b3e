package model

// Keyword is a single research result returned by the generation backend.
type Keyword struct {
	Keyword    string  `json:"keyword"`
	Volume     int     `json:"volume"`
	Difficulty int     `json:"difficulty"`
	CPC        float64 `json:"cpc"`
	Intent     string  `json:"intent,omitempty"`
	Cluster    string  `json:"cluster,omitempty"`
}

// Cluster is a group of related keywords offered for selection.
type Cluster struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MainKeyword string    `json:"mainKeyword"`
	Intent      string    `json:"intent,omitempty"`
	Keywords    []Keyword `json:"keywords"`
}

// TotalVolume sums the search volume of the cluster's keywords.
func (c Cluster) TotalVolume() int {
	total := 0
	for _, k := range c.Keywords {
		total += k.Volume
	}
	return total
}

// KeywordTexts returns the plain keyword strings of the cluster.
func (c Cluster) KeywordTexts() []string {
	out := make([]string, 0, len(c.Keywords))
	for _, k := range c.Keywords {
		out = append(out, k.Keyword)
	}
	return out
}

// TitleSuggestion is a generated blog title with its meta description.
type TitleSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// OutlineSection is one heading of an article outline.
type OutlineSection struct {
	Heading string   `json:"heading"`
	Points  []string `json:"points,omitempty"`
}
