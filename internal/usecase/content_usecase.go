package usecase

import (
	"context"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"slices"
)

// staticPages are the fixed routes of the site, in sitemap order.
var staticPages = []domain.SitemapEntry{
	{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
	{Path: "/about-me", ChangeFreq: "monthly", Priority: 0.8},
	{Path: "/case-studies", ChangeFreq: "weekly", Priority: 0.9},
	{Path: "/blog", ChangeFreq: "weekly", Priority: 0.9},
}

type contentUsecase struct {
	repo domain.ContentRepository
}

func NewContentUsecase(repo domain.ContentRepository) domain.ContentUsecase {
	return &contentUsecase{repo: repo}
}

// ListBlogPosts returns post previews newest first.
func (uc *contentUsecase) ListBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	articles, err := uc.articles(ctx)
	if err != nil {
		return nil, err
	}
	posts := make([]domain.BlogPost, 0, len(articles))
	for _, a := range articles {
		posts = append(posts, a.BlogPost)
	}
	return posts, nil
}

func (uc *contentUsecase) GetBlogPost(ctx context.Context, slug string) (*domain.BlogArticle, error) {
	articles, err := uc.repo.BlogPosts(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	i := slices.IndexFunc(articles, func(a domain.BlogArticle) bool { return a.Slug == slug })
	if i < 0 {
		return nil, apperror.NotFound("Blog post not found")
	}
	return &articles[i], nil
}

// articles returns every post newest first; posts sharing a date keep catalog order.
func (uc *contentUsecase) articles(ctx context.Context) ([]domain.BlogArticle, error) {
	articles, err := uc.repo.BlogPosts(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	slices.SortStableFunc(articles, func(a, b domain.BlogArticle) int {
		return b.Published.Compare(a.Published)
	})
	return articles, nil
}

func (uc *contentUsecase) ListCaseStudies(ctx context.Context) ([]domain.CaseStudySummary, error) {
	studies, err := uc.repo.CaseStudies(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	summaries := make([]domain.CaseStudySummary, 0, len(studies))
	for _, s := range studies {
		summaries = append(summaries, s.CaseStudySummary)
	}
	return summaries, nil
}

// GetCaseStudy returns the study with its neighbours in catalog order.
func (uc *contentUsecase) GetCaseStudy(ctx context.Context, slug string) (*domain.CaseStudyPage, error) {
	studies, err := uc.repo.CaseStudies(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	i := slices.IndexFunc(studies, func(s domain.CaseStudy) bool { return s.Slug == slug })
	if i < 0 {
		return nil, apperror.NotFound("Case study not found")
	}

	page := &domain.CaseStudyPage{CaseStudy: studies[i]}
	if i > 0 {
		page.Previous = &domain.ContentLink{Slug: studies[i-1].Slug, Title: studies[i-1].Title}
	}
	if i < len(studies)-1 {
		page.Next = &domain.ContentLink{Slug: studies[i+1].Slug, Title: studies[i+1].Title}
	}
	return page, nil
}

func (uc *contentUsecase) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := uc.repo.Services(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return services, nil
}

func (uc *contentUsecase) ListPricingPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	plans, err := uc.repo.PricingPlans(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return plans, nil
}

func (uc *contentUsecase) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	faqs, err := uc.repo.FAQs(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return faqs, nil
}

// Sitemap lists static pages, then case studies, then blog posts newest first.
// Paths are site-relative; the handler makes them absolute.
func (uc *contentUsecase) Sitemap(ctx context.Context) ([]domain.SitemapEntry, error) {
	studies, err := uc.repo.CaseStudies(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	posts, err := uc.articles(ctx)
	if err != nil {
		return nil, err
	}

	entries := slices.Clone(staticPages)
	for _, s := range studies {
		entries = append(entries, domain.SitemapEntry{Path: "/case-studies/" + s.Slug, ChangeFreq: "monthly", Priority: 0.8})
	}
	for _, p := range posts {
		entries = append(entries, domain.SitemapEntry{Path: "/blog/" + p.Slug, ChangeFreq: "monthly", Priority: 0.7})
	}
	return entries, nil
}

