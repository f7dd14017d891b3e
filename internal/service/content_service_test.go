package service_test

import (
	"context"
	"strings"
	"testing"

	"inkwell/backend/internal/keyword"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type contentFixture struct {
	svc        service.ContentService
	blog       service.BlogService
	generator  *svcmock.MockGenerator
	quotas     *svcmock.MockQuotaService
	references *svcmock.MockReadabilityService
	user       model.User
}

func newContentFixture(t *testing.T, maxPriorities int) contentFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctrl := gomock.NewController(t)
	generator := svcmock.NewMockGenerator(ctrl)
	quotas := svcmock.NewMockQuotaService(ctrl)
	references := svcmock.NewMockReadabilityService(ctrl)
	blog := service.NewBlogService(repository.NewBlogPostRepository(db), repository.NewTranslationRepository(db))
	return contentFixture{
		svc:        service.NewContentService(repository.NewProjectRepository(db), generator, quotas, blog, references, maxPriorities),
		blog:       blog,
		generator:  generator,
		quotas:     quotas,
		references: references,
		user:       testutil.SeedUser(t, db, model.User{}),
	}
}

var testKeywords = []model.Keyword{
	{Keyword: "go unit testing", Volume: 900, Difficulty: 30, Intent: "informational"},
	{Keyword: "Go Unit Testing", Volume: 900, Difficulty: 30},
	{Keyword: "table driven tests go", Volume: 300, Difficulty: 20, Intent: "informational"},
	{Keyword: "gomock tutorial", Volume: 150, Difficulty: 45, Intent: "informational"},
	{Keyword: "buy go course", Volume: 50, Difficulty: 60, Intent: "transactional"},
}

var testClusters = []model.Cluster{
	{MainKeyword: "go unit testing", Keywords: []model.Keyword{testKeywords[0], testKeywords[2]}},
	{ID: "mocks", Name: "Mocking", MainKeyword: "gomock tutorial", Keywords: []model.Keyword{testKeywords[3]}},
	{ID: "mocks", Name: "Courses", MainKeyword: "buy go course", Keywords: []model.Keyword{testKeywords[4]}},
}

func (f contentFixture) researched(t *testing.T) model.ContentProject {
	t.Helper()
	ctx := context.Background()
	p, err := f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{SeedKeyword: "go testing", Language: "en", Country: "us"})
	require.NoError(t, err)

	f.quotas.EXPECT().ReserveUsage(gomock.Any(), f.user.ID, model.UsageKeywordResearch).Return(int64(101), nil)
	f.generator.EXPECT().
		ResearchKeywords(gomock.Any(), model.KeywordResearchInput{SeedKeyword: "go testing", Language: "en", Country: "US"}).
		Return(testKeywords, nil)

	p, err = f.svc.ResearchKeywords(ctx, f.user.ID, p.ID)
	require.NoError(t, err)
	return p
}

func (f contentFixture) clustered(t *testing.T) model.ContentProject {
	t.Helper()
	p := f.researched(t)
	f.generator.EXPECT().ClusterKeywords(gomock.Any(), gomock.Any()).Return(testClusters, nil)
	p, err := f.svc.ClusterKeywords(context.Background(), f.user.ID, p.ID)
	require.NoError(t, err)
	return p
}

func TestContentService_CreateProject(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()

	p, err := f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{SeedKeyword: "  coffee  "})
	require.NoError(t, err)
	require.Equal(t, "coffee", p.Name)
	require.Equal(t, service.DefaultLanguage, p.Language)
	require.Equal(t, model.StepKeywords, p.Step)

	_, err = f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{})
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{SeedKeyword: "x", Country: "USA"})
	require.ErrorIs(t, err, service.ErrInvalid)

	list, err := f.svc.ListProjects(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = f.svc.GetProject(ctx, f.user.ID+1, p.ID)
	require.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, f.svc.DeleteProject(ctx, f.user.ID, p.ID))
	_, err = f.svc.GetProject(ctx, f.user.ID, p.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestContentService_ResearchKeywords_Dedupes(t *testing.T) {
	f := newContentFixture(t, 0)
	p := f.researched(t)

	require.Equal(t, model.StepKeywords, p.Step)
	require.Len(t, p.Keywords, 4)
	require.Equal(t, "go unit testing", p.Keywords[0].Keyword)
}

func TestContentService_ResearchKeywords_QuotaExceeded(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()
	p, err := f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{SeedKeyword: "coffee"})
	require.NoError(t, err)

	f.quotas.EXPECT().
		ReserveUsage(gomock.Any(), f.user.ID, model.UsageKeywordResearch).
		Return(int64(0), &service.QuotaError{Kind: model.UsageKeywordResearch, Limit: 5, Used: 5})

	_, err = f.svc.ResearchKeywords(ctx, f.user.ID, p.ID)
	require.ErrorIs(t, err, service.ErrQuotaExceeded)
}

func TestContentService_ResearchKeywords_FailureRefundsQuota(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()
	p, err := f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{SeedKeyword: "coffee"})
	require.NoError(t, err)

	gomock.InOrder(
		f.quotas.EXPECT().ReserveUsage(gomock.Any(), f.user.ID, model.UsageKeywordResearch).Return(int64(7), nil),
		f.generator.EXPECT().ResearchKeywords(gomock.Any(), gomock.Any()).Return(nil, &service.UpstreamError{Backend: "workflow", Err: context.DeadlineExceeded}),
		f.quotas.EXPECT().ReleaseUsage(gomock.Any(), int64(7)).Return(nil),
	)

	_, err = f.svc.ResearchKeywords(ctx, f.user.ID, p.ID)
	require.ErrorIs(t, err, service.ErrUpstream)
}

func TestContentService_FilterGroupAndReport(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()
	p := f.researched(t)

	got, err := f.svc.FilterKeywords(ctx, f.user.ID, p.ID, service.KeywordQuery{
		Filter:    keyword.Filter{Intents: []string{"informational"}},
		SortField: "volume",
		SortDir:   keyword.SortAsc,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "gomock tutorial", got[0].Keyword)

	groups, err := f.svc.GroupKeywords(ctx, f.user.ID, p.ID, "intent")
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	_, err = f.svc.GroupKeywords(ctx, f.user.ID, p.ID, "color")
	require.ErrorIs(t, err, service.ErrInvalid)

	report, err := f.svc.Report(ctx, f.user.ID, p.ID, service.ReportCSV, service.KeywordQuery{})
	require.NoError(t, err)
	require.Equal(t, "keywords-go-testing.csv", report.Filename)
	require.Equal(t, 5, strings.Count(string(report.Body), "\n"))

	table, err := f.svc.Report(ctx, f.user.ID, p.ID, service.ReportText, service.KeywordQuery{})
	require.NoError(t, err)
	require.Contains(t, string(table.Body), "gomock tutorial")

	_, err = f.svc.Report(ctx, f.user.ID, p.ID, "xlsx", service.KeywordQuery{})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestContentService_ClusterKeywords(t *testing.T) {
	f := newContentFixture(t, 0)
	p := f.clustered(t)

	require.Equal(t, model.StepClusters, p.Step)
	require.Len(t, p.Clusters, 3)
	require.Equal(t, "cluster-1", p.Clusters[0].ID)
	require.Equal(t, "go unit testing", p.Clusters[0].Name)
	require.Equal(t, "mocks", p.Clusters[1].ID)
	require.Equal(t, "cluster-3", p.Clusters[2].ID)
}

func TestContentService_Prerequisites(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()
	p, err := f.svc.CreateProject(ctx, f.user.ID, service.ProjectInput{SeedKeyword: "coffee"})
	require.NoError(t, err)

	_, err = f.svc.ClusterKeywords(ctx, f.user.ID, p.ID)
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.GenerateTitles(ctx, f.user.ID, p.ID, 3)
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.SelectTitle(ctx, f.user.ID, p.ID, "A title", "")
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.GenerateOutline(ctx, f.user.ID, p.ID)
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.UpdateOutline(ctx, f.user.ID, p.ID, []model.OutlineSection{{Heading: "Intro"}})
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.GenerateArticle(ctx, f.user.ID, p.ID, nil)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestContentService_SelectionAndPriorities(t *testing.T) {
	f := newContentFixture(t, 2)
	ctx := context.Background()
	p := f.clustered(t)

	p, err := f.svc.SelectCluster(ctx, f.user.ID, p.ID, "mocks")
	require.NoError(t, err)
	require.Equal(t, []string{"mocks"}, p.SelectedClusters)

	p, err = f.svc.AssignPriority(ctx, f.user.ID, p.ID, "cluster-3")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"mocks", "cluster-3"}, p.SelectedClusters)
	require.Equal(t, map[string]int{"cluster-3": 1}, p.Priorities)

	p, err = f.svc.AssignPriority(ctx, f.user.ID, p.ID, "mocks")
	require.NoError(t, err)
	require.Equal(t, 2, p.Priorities["mocks"])

	_, err = f.svc.AssignPriority(ctx, f.user.ID, p.ID, "cluster-1")
	require.ErrorIs(t, err, service.ErrConflict)

	p, err = f.svc.MovePriority(ctx, f.user.ID, p.ID, "mocks", 1)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"mocks": 1, "cluster-3": 2}, p.Priorities)

	_, err = f.svc.MovePriority(ctx, f.user.ID, p.ID, "mocks", 9)
	require.ErrorIs(t, err, service.ErrInvalid)

	// Deselecting drops the priority too.
	p, err = f.svc.ToggleCluster(ctx, f.user.ID, p.ID, "mocks")
	require.NoError(t, err)
	require.Equal(t, []string{"cluster-3"}, p.SelectedClusters)
	require.Equal(t, map[string]int{"cluster-3": 2}, p.Priorities)

	p, err = f.svc.RemovePriority(ctx, f.user.ID, p.ID, "cluster-3")
	require.NoError(t, err)
	require.Empty(t, p.Priorities)
	require.Equal(t, []string{"cluster-3"}, p.SelectedClusters)

	p, err = f.svc.DeselectCluster(ctx, f.user.ID, p.ID, "cluster-3")
	require.NoError(t, err)
	require.Empty(t, p.SelectedClusters)

	_, err = f.svc.SelectCluster(ctx, f.user.ID, p.ID, "nope")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestContentService_FullWorkflow(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()
	p := f.clustered(t)

	p, err := f.svc.AssignPriority(ctx, f.user.ID, p.ID, "mocks")
	require.NoError(t, err)
	p, err = f.svc.SelectCluster(ctx, f.user.ID, p.ID, "cluster-1")
	require.NoError(t, err)

	f.generator.EXPECT().
		GenerateTitles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in model.TitleInput) ([]model.TitleSuggestion, error) {
			require.Equal(t, service.MaxTitleCount, in.Count)
			require.Len(t, in.Clusters, 2)
			require.Equal(t, "mocks", in.Clusters[0].ID)
			return []model.TitleSuggestion{{Title: " Testing Go Code "}, {Title: " "}}, nil
		})
	p, err = f.svc.GenerateTitles(ctx, f.user.ID, p.ID, 50)
	require.NoError(t, err)
	require.Equal(t, model.StepTitles, p.Step)
	require.Equal(t, []model.TitleSuggestion{{Title: "Testing Go Code"}}, p.Titles)

	f.generator.EXPECT().
		GenerateMetadata(gomock.Any(), gomock.Any()).
		Return(model.PostMetadata{Title: "Testing Go Code", Slug: "testing-go", Description: "All about tests"}, nil)
	p, err = f.svc.SelectTitle(ctx, f.user.ID, p.ID, "Testing Go Code", "")
	require.NoError(t, err)
	require.Equal(t, model.StepOutline, p.Step)
	require.NotNil(t, p.BlogPostID)
	require.Equal(t, "All about tests", p.SelectedDescription)

	post, err := f.blog.GetPost(ctx, f.user.ID, *p.BlogPostID)
	require.NoError(t, err)
	require.Equal(t, "testing-go", post.Slug)
	require.Contains(t, post.Keywords, "gomock tutorial")

	f.generator.EXPECT().
		GenerateOutline(gomock.Any(), gomock.Any()).
		Return([]model.OutlineSection{{Heading: " Intro ", Points: []string{"why", " "}}, {Heading: "Mocks"}}, nil)
	p, err = f.svc.GenerateOutline(ctx, f.user.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, []model.OutlineSection{{Heading: "Intro", Points: []string{"why"}}, {Heading: "Mocks"}}, p.Outline)

	_, err = f.svc.UpdateOutline(ctx, f.user.ID, p.ID, []model.OutlineSection{{Heading: ""}})
	require.ErrorIs(t, err, service.ErrInvalid)

	refs := []model.Reference{{URL: "https://example.com/a", Title: "A", Excerpt: "text"}}
	f.quotas.EXPECT().ReserveUsage(gomock.Any(), f.user.ID, model.UsageArticle).Return(int64(202), nil)
	f.references.EXPECT().ExtractAll(gomock.Any(), []string{"https://example.com/a"}).Return(refs)
	f.generator.EXPECT().
		GenerateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in model.ArticleInput) (model.Article, error) {
			require.Equal(t, refs, in.References)
			require.Len(t, in.Outline, 2)
			return model.Article{Content: "# Testing Go Code\n\nBody"}, nil
		})

	p, err = f.svc.GenerateArticle(ctx, f.user.ID, p.ID, []string{" https://example.com/a ", "https://example.com/a"})
	require.NoError(t, err)
	require.Equal(t, model.StepDone, p.Step)
	require.Equal(t, []string{"https://example.com/a"}, p.ReferenceURLs)

	post, err = f.blog.GetPost(ctx, f.user.ID, *p.BlogPostID)
	require.NoError(t, err)
	require.Equal(t, "# Testing Go Code\n\nBody", post.Content)

	// Re-clustering resets selections but never moves the step back.
	f.generator.EXPECT().ClusterKeywords(gomock.Any(), gomock.Any()).Return(testClusters[:1], nil)
	p, err = f.svc.ClusterKeywords(ctx, f.user.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StepDone, p.Step)
	require.Empty(t, p.SelectedClusters)
	require.Empty(t, p.Priorities)
}

func TestContentService_GenerateArticle_FailureKeepsStepAndRefundsQuota(t *testing.T) {
	f := newContentFixture(t, 0)
	ctx := context.Background()
	p := f.clustered(t)

	p, err := f.svc.SelectCluster(ctx, f.user.ID, p.ID, "mocks")
	require.NoError(t, err)
	f.generator.EXPECT().GenerateTitles(gomock.Any(), gomock.Any()).Return([]model.TitleSuggestion{{Title: "T"}}, nil)
	p, err = f.svc.GenerateTitles(ctx, f.user.ID, p.ID, 0)
	require.NoError(t, err)
	f.generator.EXPECT().GenerateMetadata(gomock.Any(), gomock.Any()).Return(model.PostMetadata{}, nil)
	p, err = f.svc.SelectTitle(ctx, f.user.ID, p.ID, "T", "d")
	require.NoError(t, err)
	p, err = f.svc.UpdateOutline(ctx, f.user.ID, p.ID, []model.OutlineSection{{Heading: "Intro"}})
	require.NoError(t, err)

	_, err = f.svc.GenerateArticle(ctx, f.user.ID, p.ID, []string{"ftp://example.com"})
	require.ErrorIs(t, err, service.ErrInvalid)

	f.quotas.EXPECT().ReserveUsage(gomock.Any(), f.user.ID, model.UsageArticle).Return(int64(303), nil)
	f.generator.EXPECT().
		GenerateArticle(gomock.Any(), gomock.Any()).
		Return(model.Article{}, &service.UpstreamError{Backend: "workflow", Err: context.DeadlineExceeded})
	f.quotas.EXPECT().ReleaseUsage(gomock.Any(), int64(303)).Return(nil)

	_, err = f.svc.GenerateArticle(ctx, f.user.ID, p.ID, nil)
	require.ErrorIs(t, err, service.ErrUpstream)

	got, err := f.svc.GetProject(ctx, f.user.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.StepOutline, got.Step)
	require.Empty(t, got.ReferenceURLs)
}
