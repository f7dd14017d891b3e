package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"inkwell/backend/internal/keyword"
	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

// Report formats.
const (
	ReportCSV  = "csv"
	ReportText = "text"
)

const (
	DefaultTitleCount = 5
	MaxTitleCount     = 10
	maxProjectName    = 120
)

// QuotaService gates generation on the user's plan.
type QuotaService interface {
	// ReserveUsage records one use of kind up front and returns its id, or a
	// *QuotaError when the monthly limit is used up.
	ReserveUsage(ctx context.Context, userID int64, kind string) (int64, error)
	// ReleaseUsage refunds a reservation whose operation failed.
	ReleaseUsage(ctx context.Context, usageID int64) error
}

type ProjectInput struct {
	Name        string
	SeedKeyword string
	Language    string
	Country     string
}

// KeywordQuery filters and sorts a project's keywords or clusters.
type KeywordQuery struct {
	Filter    keyword.Filter
	SortField string
	SortDir   string
}

type ContentService interface {
	CreateProject(ctx context.Context, userID int64, in ProjectInput) (model.ContentProject, error)
	ListProjects(ctx context.Context, userID int64) ([]model.ContentProject, error)
	GetProject(ctx context.Context, userID, id int64) (model.ContentProject, error)
	DeleteProject(ctx context.Context, userID, id int64) error

	ResearchKeywords(ctx context.Context, userID, id int64) (model.ContentProject, error)
	FilterKeywords(ctx context.Context, userID, id int64, q KeywordQuery) ([]model.Keyword, error)
	GroupKeywords(ctx context.Context, userID, id int64, field string) ([]keyword.Group, error)
	Report(ctx context.Context, userID, id int64, format string, q KeywordQuery) (Export, error)

	ClusterKeywords(ctx context.Context, userID, id int64) (model.ContentProject, error)
	FilterClusters(ctx context.Context, userID, id int64, q KeywordQuery) ([]model.Cluster, error)
	SelectCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error)
	DeselectCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error)
	ToggleCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error)
	AssignPriority(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error)
	RemovePriority(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error)
	MovePriority(ctx context.Context, userID, id int64, clusterID string, slot int) (model.ContentProject, error)

	GenerateTitles(ctx context.Context, userID, id int64, count int) (model.ContentProject, error)
	// SelectTitle picks the article title and creates (or updates) its blog post.
	SelectTitle(ctx context.Context, userID, id int64, title, description string) (model.ContentProject, error)
	GenerateOutline(ctx context.Context, userID, id int64) (model.ContentProject, error)
	UpdateOutline(ctx context.Context, userID, id int64, outline []model.OutlineSection) (model.ContentProject, error)
	// GenerateArticle writes the article into the project's blog post.
	GenerateArticle(ctx context.Context, userID, id int64, referenceURLs []string) (model.ContentProject, error)
}

type contentService struct {
	projects      repository.ProjectRepository
	generator     Generator
	quotas        QuotaService
	blog          BlogService
	references    ReadabilityService
	maxPriorities int
}

func NewContentService(
	projects repository.ProjectRepository,
	generator Generator,
	quotas QuotaService,
	blog BlogService,
	references ReadabilityService,
	maxPriorities int,
) ContentService {
	if maxPriorities <= 0 {
		maxPriorities = keyword.DefaultMaxPriorities
	}
	return &contentService{
		projects:      projects,
		generator:     generator,
		quotas:        quotas,
		blog:          blog,
		references:    references,
		maxPriorities: maxPriorities,
	}
}

func (s *contentService) owned(ctx context.Context, userID, id int64) (model.ContentProject, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContentProject{}, ErrNotFound
		}
		return model.ContentProject{}, fmt.Errorf("get project: %w", err)
	}
	if p.UserID != userID {
		return model.ContentProject{}, ErrNotFound
	}
	return p, nil
}

func (s *contentService) save(ctx context.Context, p model.ContentProject) (model.ContentProject, error) {
	saved, err := s.projects.Update(ctx, p)
	if err != nil {
		return model.ContentProject{}, fmt.Errorf("save project: %w", err)
	}
	return saved, nil
}

func (s *contentService) CreateProject(ctx context.Context, userID int64, in ProjectInput) (model.ContentProject, error) {
	seed := strings.TrimSpace(in.SeedKeyword)
	if seed == "" {
		return model.ContentProject{}, invalidf("seed keyword is required")
	}
	if utf8.RuneCountInString(seed) > 200 {
		return model.ContentProject{}, invalidf("seed keyword is too long")
	}
	language, err := normalizeLanguage(in.Language)
	if err != nil {
		return model.ContentProject{}, err
	}
	if language == "" {
		language = DefaultLanguage
	}
	country := strings.ToUpper(strings.TrimSpace(in.Country))
	if country != "" && len(country) != 2 {
		return model.ContentProject{}, invalidf("country must be a two-letter code")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = seed
	}
	if utf8.RuneCountInString(name) > maxProjectName {
		return model.ContentProject{}, invalidf("name is too long")
	}

	p, err := s.projects.Create(ctx, model.ContentProject{
		UserID:      userID,
		Name:        name,
		SeedKeyword: seed,
		Language:    language,
		Country:     country,
		Step:        model.StepKeywords,
	})
	if err != nil {
		return model.ContentProject{}, fmt.Errorf("create project: %w", err)
	}
	logger.Info("project created", "module", "service", "action", "create", "resource", "project", "result", "ok", "project_id", p.ID)
	return p, nil
}

func (s *contentService) ListProjects(ctx context.Context, userID int64) ([]model.ContentProject, error) {
	out, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (s *contentService) GetProject(ctx context.Context, userID, id int64) (model.ContentProject, error) {
	return s.owned(ctx, userID, id)
}

func (s *contentService) DeleteProject(ctx context.Context, userID, id int64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *contentService) ResearchKeywords(ctx context.Context, userID, id int64) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	var keywords []model.Keyword
	err = s.withQuota(ctx, userID, model.UsageKeywordResearch, func() error {
		var err error
		keywords, err = s.generator.ResearchKeywords(ctx, model.KeywordResearchInput{
			SeedKeyword: p.SeedKeyword,
			Language:    p.Language,
			Country:     p.Country,
		})
		return err
	})
	if err != nil {
		return model.ContentProject{}, err
	}

	p.Keywords = dedupeKeywords(keywords)
	p.Advance(model.StepKeywords)
	logger.Info("keywords researched", "module", "service", "action", "generate", "resource", "project", "result", "ok", "project_id", p.ID, "count", len(p.Keywords))
	return s.save(ctx, p)
}

// withQuota reserves one use of kind, runs fn and refunds the reservation
// when fn fails.
func (s *contentService) withQuota(ctx context.Context, userID int64, kind string, fn func() error) error {
	usageID, err := s.quotas.ReserveUsage(ctx, userID, kind)
	if err != nil {
		return err
	}
	if err := fn(); err != nil {
		if rerr := s.quotas.ReleaseUsage(context.WithoutCancel(ctx), usageID); rerr != nil {
			logger.Warn("usage refund failed", "module", "service", "action", "release", "resource", "usage", "result", "failed", "user_id", userID, "kind", kind, "error", rerr)
		}
		return err
	}
	return nil
}

func dedupeKeywords(in []model.Keyword) []model.Keyword {
	out := make([]model.Keyword, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, k := range in {
		k.Keyword = strings.TrimSpace(k.Keyword)
		key := strings.ToLower(k.Keyword)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, k)
	}
	return out
}

func (s *contentService) FilterKeywords(ctx context.Context, userID, id int64, q KeywordQuery) ([]model.Keyword, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	out := keyword.FilterKeywords(p.Keywords, q.Filter)
	if q.SortField != "" {
		out = keyword.SortKeywords(out, q.SortField, q.SortDir)
	}
	return out, nil
}

func (s *contentService) GroupKeywords(ctx context.Context, userID, id int64, field string) ([]keyword.Group, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	groups, err := keyword.GroupKeywords(p.Keywords, field)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return groups, nil
}

func (s *contentService) Report(ctx context.Context, userID, id int64, format string, q KeywordQuery) (Export, error) {
	keywords, err := s.FilterKeywords(ctx, userID, id, q)
	if err != nil {
		return Export{}, err
	}
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return Export{}, err
	}
	name := "keywords-" + Slugify(p.SeedKeyword)

	var buf bytes.Buffer
	switch format {
	case ReportCSV, "":
		if err := keyword.WriteCSV(&buf, keywords); err != nil {
			return Export{}, fmt.Errorf("write csv: %w", err)
		}
		return Export{Filename: name + ".csv", ContentType: "text/csv; charset=utf-8", Body: buf.Bytes()}, nil
	case ReportText, "txt":
		if err := keyword.WriteTable(&buf, keywords); err != nil {
			return Export{}, fmt.Errorf("write table: %w", err)
		}
		return Export{Filename: name + ".txt", ContentType: "text/plain; charset=utf-8", Body: buf.Bytes()}, nil
	}
	return Export{}, invalidf("unknown report format %q", format)
}

func (s *contentService) ClusterKeywords(ctx context.Context, userID, id int64) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	if len(p.Keywords) == 0 {
		return model.ContentProject{}, invalidf("research keywords first")
	}

	clusters, err := s.generator.ClusterKeywords(ctx, model.ClusterInput{
		SeedKeyword: p.SeedKeyword,
		Language:    p.Language,
		Keywords:    p.Keywords,
	})
	if err != nil {
		return model.ContentProject{}, err
	}

	// New clusters invalidate everything derived from the old ones.
	p.Clusters = assignClusterIDs(clusters)
	p.SelectedClusters = nil
	p.Priorities = nil
	p.Advance(model.StepClusters)
	logger.Info("keywords clustered", "module", "service", "action", "generate", "resource", "project", "result", "ok", "project_id", p.ID, "count", len(p.Clusters))
	return s.save(ctx, p)
}

// assignClusterIDs gives every cluster a unique, stable id.
func assignClusterIDs(clusters []model.Cluster) []model.Cluster {
	out := make([]model.Cluster, 0, len(clusters))
	seen := make(map[string]struct{}, len(clusters))
	for i, c := range clusters {
		c.ID = strings.TrimSpace(c.ID)
		if _, dup := seen[c.ID]; c.ID == "" || dup {
			c.ID = "cluster-" + strconv.Itoa(i+1)
		}
		for _, taken := seen[c.ID]; taken; _, taken = seen[c.ID] {
			c.ID += "x"
		}
		seen[c.ID] = struct{}{}
		if strings.TrimSpace(c.Name) == "" {
			c.Name = c.MainKeyword
		}
		out = append(out, c)
	}
	return out
}

func (s *contentService) FilterClusters(ctx context.Context, userID, id int64, q KeywordQuery) ([]model.Cluster, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	out := keyword.FilterClusters(p.Clusters, q.Filter)
	if q.SortField != "" {
		out = keyword.SortClusters(out, q.SortField, q.SortDir)
	}
	return out, nil
}

// withCluster loads the project and checks clusterID belongs to it.
func (s *contentService) withCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	if _, ok := p.ClusterByID(clusterID); !ok {
		return model.ContentProject{}, fmt.Errorf("%w: unknown cluster %q", ErrNotFound, clusterID)
	}
	return p, nil
}

func (s *contentService) SelectCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
	p, err := s.withCluster(ctx, userID, id, clusterID)
	if err != nil {
		return model.ContentProject{}, err
	}
	sel := keyword.NewSelection(p.SelectedClusters)
	sel.Select(clusterID)
	p.SelectedClusters = sel.IDs()
	return s.save(ctx, p)
}

func (s *contentService) DeselectCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
	p, err := s.withCluster(ctx, userID, id, clusterID)
	if err != nil {
		return model.ContentProject{}, err
	}
	sel := keyword.NewSelection(p.SelectedClusters)
	sel.Deselect(clusterID)
	p.SelectedClusters = sel.IDs()
	p.Priorities = s.withoutPriority(p.Priorities, clusterID)
	return s.save(ctx, p)
}

func (s *contentService) ToggleCluster(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
	p, err := s.withCluster(ctx, userID, id, clusterID)
	if err != nil {
		return model.ContentProject{}, err
	}
	sel := keyword.NewSelection(p.SelectedClusters)
	if !sel.Toggle(clusterID) {
		p.Priorities = s.withoutPriority(p.Priorities, clusterID)
	}
	p.SelectedClusters = sel.IDs()
	return s.save(ctx, p)
}

func (s *contentService) withoutPriority(slots map[string]int, clusterID string) map[string]int {
	pri := keyword.NewPrioritySelection(s.maxPriorities, slots)
	pri.Remove(clusterID)
	return pri.Slots()
}

// AssignPriority gives the cluster the lowest free slot and selects it.
func (s *contentService) AssignPriority(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
	p, err := s.withCluster(ctx, userID, id, clusterID)
	if err != nil {
		return model.ContentProject{}, err
	}
	pri := keyword.NewPrioritySelection(s.maxPriorities, p.Priorities)
	if _, err := pri.Assign(clusterID); err != nil {
		if errors.Is(err, keyword.ErrPriorityFull) {
			return model.ContentProject{}, fmt.Errorf("%w: all %d priority slots are taken", ErrConflict, pri.Max())
		}
		return model.ContentProject{}, err
	}
	sel := keyword.NewSelection(p.SelectedClusters)
	sel.Select(clusterID)
	p.SelectedClusters = sel.IDs()
	p.Priorities = pri.Slots()
	return s.save(ctx, p)
}

func (s *contentService) RemovePriority(ctx context.Context, userID, id int64, clusterID string) (model.ContentProject, error) {
	p, err := s.withCluster(ctx, userID, id, clusterID)
	if err != nil {
		return model.ContentProject{}, err
	}
	p.Priorities = s.withoutPriority(p.Priorities, clusterID)
	return s.save(ctx, p)
}

func (s *contentService) MovePriority(ctx context.Context, userID, id int64, clusterID string, slot int) (model.ContentProject, error) {
	p, err := s.withCluster(ctx, userID, id, clusterID)
	if err != nil {
		return model.ContentProject{}, err
	}
	pri := keyword.NewPrioritySelection(s.maxPriorities, p.Priorities)
	if err := pri.Move(clusterID, slot); err != nil {
		return model.ContentProject{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	p.Priorities = pri.Slots()
	return s.save(ctx, p)
}

// chosenClusters returns the selected clusters, prioritized ones first in
// slot order, the rest in selection order.
func (s *contentService) chosenClusters(p model.ContentProject) []model.Cluster {
	pri := keyword.NewPrioritySelection(s.maxPriorities, p.Priorities)
	sel := keyword.NewSelection(p.SelectedClusters)

	var out []model.Cluster
	used := make(map[string]struct{})
	add := func(id string) {
		if _, dup := used[id]; dup {
			return
		}
		if c, ok := p.ClusterByID(id); ok {
			used[id] = struct{}{}
			out = append(out, c)
		}
	}
	for _, id := range pri.Ordered() {
		if sel.IsSelected(id) {
			add(id)
		}
	}
	for _, id := range sel.IDs() {
		add(id)
	}
	return out
}

func (s *contentService) chosenKeywords(p model.ContentProject) []string {
	var out []string
	for _, c := range s.chosenClusters(p) {
		out = append(out, c.KeywordTexts()...)
	}
	return normalizeKeywords(out)
}

func (s *contentService) GenerateTitles(ctx context.Context, userID, id int64, count int) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	clusters := s.chosenClusters(p)
	if len(clusters) == 0 {
		return model.ContentProject{}, invalidf("select at least one cluster")
	}
	if count <= 0 {
		count = DefaultTitleCount
	}
	if count > MaxTitleCount {
		count = MaxTitleCount
	}

	titles, err := s.generator.GenerateTitles(ctx, model.TitleInput{Language: p.Language, Clusters: clusters, Count: count})
	if err != nil {
		return model.ContentProject{}, err
	}
	p.Titles = nil
	for _, t := range titles {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		t.Description = strings.TrimSpace(t.Description)
		p.Titles = append(p.Titles, t)
	}
	if len(p.Titles) == 0 {
		return model.ContentProject{}, fmt.Errorf("%w: no titles generated", ErrUpstream)
	}
	p.Advance(model.StepTitles)
	return s.save(ctx, p)
}

func (s *contentService) SelectTitle(ctx context.Context, userID, id int64, title, description string) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	if len(p.Titles) == 0 {
		return model.ContentProject{}, invalidf("generate titles first")
	}
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return model.ContentProject{}, invalidf("title is required")
	}

	meta, err := s.generator.GenerateMetadata(ctx, model.MetadataInput{
		Title:       title,
		Description: description,
		Keywords:    s.chosenKeywords(p),
		Language:    p.Language,
	})
	if err != nil {
		return model.ContentProject{}, err
	}
	if strings.TrimSpace(meta.Title) == "" {
		meta.Title = title
	}
	if strings.TrimSpace(meta.Description) == "" {
		meta.Description = description
	}
	if len(meta.Keywords) == 0 {
		meta.Keywords = s.chosenKeywords(p)
	}

	input := PostInput{
		Title:       &meta.Title,
		Description: &meta.Description,
		Keywords:    meta.Keywords,
		Language:    &p.Language,
	}
	if meta.Slug != "" {
		input.Slug = &meta.Slug
	}

	var post model.BlogPost
	if p.BlogPostID != nil {
		post, err = s.blog.UpdatePost(ctx, userID, *p.BlogPostID, input)
		if errors.Is(err, ErrNotFound) {
			p.BlogPostID = nil
		} else if err != nil {
			return model.ContentProject{}, err
		}
	}
	if p.BlogPostID == nil {
		post, err = s.blog.CreatePost(ctx, userID, input)
		if err != nil {
			return model.ContentProject{}, err
		}
	}

	p.BlogPostID = &post.ID
	p.SelectedTitle = post.Title
	p.SelectedDescription = post.Description
	p.Advance(model.StepOutline)
	logger.Info("title selected", "module", "service", "action", "update", "resource", "project", "result", "ok", "project_id", p.ID, "post_id", post.ID)
	return s.save(ctx, p)
}

func (s *contentService) GenerateOutline(ctx context.Context, userID, id int64) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	if p.SelectedTitle == "" {
		return model.ContentProject{}, invalidf("select a title first")
	}

	outline, err := s.generator.GenerateOutline(ctx, model.OutlineInput{
		Title:       p.SelectedTitle,
		Description: p.SelectedDescription,
		Keywords:    s.chosenKeywords(p),
		Language:    p.Language,
	})
	if err != nil {
		return model.ContentProject{}, err
	}
	outline, err = cleanOutline(outline)
	if err != nil {
		return model.ContentProject{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	p.Outline = outline
	p.Advance(model.StepOutline)
	return s.save(ctx, p)
}

func (s *contentService) UpdateOutline(ctx context.Context, userID, id int64, outline []model.OutlineSection) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	if p.SelectedTitle == "" {
		return model.ContentProject{}, invalidf("select a title first")
	}
	outline, err = cleanOutline(outline)
	if err != nil {
		return model.ContentProject{}, err
	}
	p.Outline = outline
	p.Advance(model.StepOutline)
	return s.save(ctx, p)
}

// cleanOutline trims sections and drops empty points. Every heading is required.
func cleanOutline(in []model.OutlineSection) ([]model.OutlineSection, error) {
	if len(in) == 0 {
		return nil, invalidf("outline is empty")
	}
	out := make([]model.OutlineSection, 0, len(in))
	for i, sec := range in {
		sec.Heading = strings.TrimSpace(sec.Heading)
		if sec.Heading == "" {
			return nil, invalidf("section %d has no heading", i+1)
		}
		var points []string
		for _, pt := range sec.Points {
			if pt = strings.TrimSpace(pt); pt != "" {
				points = append(points, pt)
			}
		}
		sec.Points = points
		out = append(out, sec)
	}
	return out, nil
}

func (s *contentService) GenerateArticle(ctx context.Context, userID, id int64, referenceURLs []string) (model.ContentProject, error) {
	p, err := s.owned(ctx, userID, id)
	if err != nil {
		return model.ContentProject{}, err
	}
	if len(p.Outline) == 0 {
		return model.ContentProject{}, invalidf("create an outline first")
	}
	if p.BlogPostID == nil {
		return model.ContentProject{}, invalidf("select a title first")
	}
	urls, err := ValidateReferenceURLs(referenceURLs)
	if err != nil {
		return model.ContentProject{}, err
	}
	var refs []model.Reference
	err = s.withQuota(ctx, userID, model.UsageArticle, func() error {
		if len(urls) > 0 {
			refs = s.references.ExtractAll(ctx, urls)
		}
		article, err := s.generator.GenerateArticle(ctx, model.ArticleInput{
			Title:       p.SelectedTitle,
			Description: p.SelectedDescription,
			Keywords:    s.chosenKeywords(p),
			Language:    p.Language,
			Outline:     p.Outline,
			References:  refs,
		})
		if err != nil {
			return err
		}
		if strings.TrimSpace(article.Content) == "" {
			return fmt.Errorf("%w: empty article", ErrUpstream)
		}
		_, err = s.blog.UpdatePost(ctx, userID, *p.BlogPostID, PostInput{Content: &article.Content})
		return err
	})
	if err != nil {
		return model.ContentProject{}, err
	}

	// The step moves only once the post holds the article.
	p.ReferenceURLs = urls
	p.Advance(model.StepDone)
	logger.Info("article generated", "module", "service", "action", "generate", "resource", "project", "result", "ok", "project_id", p.ID, "post_id", *p.BlogPostID, "references", len(refs))
	return s.save(ctx, p)
}
