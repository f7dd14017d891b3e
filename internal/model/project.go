package model

import "time"

// Content workflow steps, in order.
const (
	StepKeywords = "keywords"
	StepClusters = "clusters"
	StepTitles   = "titles"
	StepOutline  = "outline"
	StepArticle  = "article"
	StepDone     = "done"
)

var stepOrder = map[string]int{
	StepKeywords: 0,
	StepClusters: 1,
	StepTitles:   2,
	StepOutline:  3,
	StepArticle:  4,
	StepDone:     5,
}

// StepIndex returns the position of step in the workflow, or -1.
func StepIndex(step string) int {
	if i, ok := stepOrder[step]; ok {
		return i
	}
	return -1
}

// ContentProject holds the state of one keyword-to-article workflow.
type ContentProject struct {
	ID                  int64
	UserID              int64
	Name                string
	SeedKeyword         string
	Language            string
	Country             string
	Step                string
	Keywords            []Keyword
	Clusters            []Cluster
	SelectedClusters    []string
	Priorities          map[string]int // cluster id -> slot
	Titles              []TitleSuggestion
	SelectedTitle       string
	SelectedDescription string
	Outline             []OutlineSection
	ReferenceURLs       []string
	BlogPostID          *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Advance moves the project forward to step; it never moves backwards.
func (p *ContentProject) Advance(step string) {
	if StepIndex(step) > StepIndex(p.Step) {
		p.Step = step
	}
}

// ClusterByID finds a cluster of the project.
func (p *ContentProject) ClusterByID(id string) (Cluster, bool) {
	for _, c := range p.Clusters {
		if c.ID == id {
			return c, true
		}
	}
	return Cluster{}, false
}
