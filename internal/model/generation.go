package model

// Inputs and results of the AI generation steps. Both the webhook backend and
// the LLM providers speak these shapes.

type KeywordResearchInput struct {
	SeedKeyword string `json:"seedKeyword"`
	Language    string `json:"language"`
	Country     string `json:"country,omitempty"`
}

type ClusterInput struct {
	SeedKeyword string    `json:"seedKeyword"`
	Language    string    `json:"language"`
	Keywords    []Keyword `json:"keywords"`
}

type TitleInput struct {
	Language string    `json:"language"`
	Clusters []Cluster `json:"clusters"`
	Count    int       `json:"count"`
}

type MetadataInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language"`
}

// PostMetadata is the generated header of a new blog post.
type PostMetadata struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type OutlineInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language"`
}

// Reference is readable text extracted from a user-supplied source URL.
type Reference struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

type ArticleInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Keywords    []string         `json:"keywords"`
	Language    string           `json:"language"`
	Outline     []OutlineSection `json:"outline"`
	References  []Reference      `json:"references,omitempty"`
}

// Article is generated markdown content.
type Article struct {
	Content string `json:"content"`
}

type TranslateInput struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Content        string `json:"content"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
	TargetLanguage string `json:"targetLanguage"`
}

type TranslatedPost struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
