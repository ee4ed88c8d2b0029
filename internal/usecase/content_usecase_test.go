package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) BlogPosts(ctx context.Context) ([]domain.BlogArticle, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]domain.BlogArticle)
	return posts, args.Error(1)
}

func (m *MockContentRepository) CaseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	args := m.Called(ctx)
	studies, _ := args.Get(0).([]domain.CaseStudy)
	return studies, args.Error(1)
}

func (m *MockContentRepository) Services(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]domain.Service)
	return services, args.Error(1)
}

func (m *MockContentRepository) PricingPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]domain.PricingPlan)
	return plans, args.Error(1)
}

func (m *MockContentRepository) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	args := m.Called(ctx)
	faqs, _ := args.Get(0).([]domain.FAQ)
	return faqs, args.Error(1)
}

func post(slug, date string) domain.BlogArticle {
	published, _ := time.Parse(time.DateOnly, date)
	return domain.BlogArticle{
		BlogPost: domain.BlogPost{Slug: slug, Title: "Title " + slug, PublishedAt: date, Published: published},
		Content:  []string{"## Intro", "Body of " + slug},
	}
}

func study(slug string) domain.CaseStudy {
	return domain.CaseStudy{CaseStudySummary: domain.CaseStudySummary{Slug: slug, Title: slug}, Challenge: "hard"}
}

func TestListBlogPostsNewestFirst(t *testing.T) {
	repo := new(MockContentRepository)
	repo.On("BlogPosts", mock.Anything).Return([]domain.BlogArticle{
		post("older", "2024-11-28"),
		post("newest", "2024-12-15"),
		post("middle-a", "2024-12-05"),
		post("middle-b", "2024-12-05"),
	}, nil)
	uc := usecase.NewContentUsecase(repo)

	posts, err := uc.ListBlogPosts(context.Background())
	require.NoError(t, err)

	var slugs []string
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"newest", "middle-a", "middle-b", "older"}, slugs)
}

func TestGetBlogPost(t *testing.T) {
	repo := new(MockContentRepository)
	repo.On("BlogPosts", mock.Anything).Return([]domain.BlogArticle{
		post("old", "2024-11-28"),
		post("new", "2024-12-15"),
		post("mid", "2024-12-05"),
	}, nil)
	uc := usecase.NewContentUsecase(repo)

	t.Run("Should return the full post", func(t *testing.T) {
		p, err := uc.GetBlogPost(context.Background(), "mid")
		require.NoError(t, err)
		assert.Equal(t, "mid", p.Slug)
		assert.Equal(t, "Title mid", p.Title)
		assert.Equal(t, []string{"## Intro", "Body of mid"}, p.Content)
	})

	t.Run("Should report unknown slugs as not found", func(t *testing.T) {
		_, err := uc.GetBlogPost(context.Background(), "missing")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Blog post not found", appErr.Message)
	})
}

func TestGetCaseStudyNavigation(t *testing.T) {
	repo := new(MockContentRepository)
	repo.On("CaseStudies", mock.Anything).Return([]domain.CaseStudy{study("a"), study("b"), study("c")}, nil)
	uc := usecase.NewContentUsecase(repo)

	link := func(slug string) *domain.ContentLink {
		if slug == "" {
			return nil
		}
		return &domain.ContentLink{Slug: slug, Title: slug}
	}
	cases := []struct{ slug, prev, next string }{
		{"a", "", "b"},
		{"b", "a", "c"},
		{"c", "b", ""},
	}
	for _, tc := range cases {
		page, err := uc.GetCaseStudy(context.Background(), tc.slug)
		require.NoError(t, err)
		assert.Equal(t, link(tc.prev), page.Previous, tc.slug)
		assert.Equal(t, link(tc.next), page.Next, tc.slug)
		assert.Equal(t, "hard", page.Challenge)
	}

	_, err := uc.GetCaseStudy(context.Background(), "zzz")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.EqualError(t, err, "Case study not found")
}

func TestGetCaseStudySingleEntry(t *testing.T) {
	repo := new(MockContentRepository)
	repo.On("CaseStudies", mock.Anything).Return([]domain.CaseStudy{study("only")}, nil)

	page, err := usecase.NewContentUsecase(repo).GetCaseStudy(context.Background(), "only")
	require.NoError(t, err)
	assert.Nil(t, page.Previous)
	assert.Nil(t, page.Next)
}

func TestListCaseStudiesReturnsSummaries(t *testing.T) {
	repo := new(MockContentRepository)
	repo.On("CaseStudies", mock.Anything).Return([]domain.CaseStudy{study("a"), study("b")}, nil)

	summaries, err := usecase.NewContentUsecase(repo).ListCaseStudies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CaseStudySummary{{Slug: "a", Title: "a"}, {Slug: "b", Title: "b"}}, summaries)
}

func TestSitemap(t *testing.T) {
	repo := new(MockContentRepository)
	repo.On("CaseStudies", mock.Anything).Return([]domain.CaseStudy{study("clinic")}, nil)
	repo.On("BlogPosts", mock.Anything).Return([]domain.BlogArticle{post("old", "2024-01-01"), post("new", "2024-12-01")}, nil)

	entries, err := usecase.NewContentUsecase(repo).Sitemap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.SitemapEntry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/about-me", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/case-studies", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/blog", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/case-studies/clinic", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/blog/new", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/blog/old", ChangeFreq: "monthly", Priority: 0.7},
	}, entries)
}

func TestContentRepositoryFailuresAreInternal(t *testing.T) {
	repo := new(MockContentRepository)
	boom := errors.New("boom")
	repo.On("Services", mock.Anything).Return(nil, boom)
	repo.On("PricingPlans", mock.Anything).Return(nil, boom)
	repo.On("FAQs", mock.Anything).Return(nil, boom)
	uc := usecase.NewContentUsecase(repo)

	_, err := uc.ListServices(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))

	_, err = uc.ListPricingPlans(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = uc.ListFAQs(context.Background())
	assert.ErrorIs(t, err, boom)
}
