package domain

import (
	"context"
	"time"
)

// BlogPost is a blog post preview shown in listings.
type BlogPost struct {
	Slug           string    `json:"slug" yaml:"slug" validate:"required,slug"`
	Title          string    `json:"title" yaml:"title" validate:"required"`
	Excerpt        string    `json:"excerpt" yaml:"excerpt"`
	Category       string    `json:"category" yaml:"category"`
	ReadTime       string    `json:"readTime" yaml:"readTime"`
	PublishedAt    string    `json:"publishedAt" yaml:"publishedAt" validate:"required,iso_date"`
	PublishedLabel string    `json:"publishedLabel" yaml:"-"`
	Author         string    `json:"author" yaml:"author"`
	Image          string    `json:"image" yaml:"image"`
	Published      time.Time `json:"-" yaml:"-"`
}

// BlogArticle is a full post. Content holds paragraphs and markdown-style
// headings in reading order.
type BlogArticle struct {
	BlogPost           `yaml:",inline"`
	Content            []string `json:"content" yaml:"content"`
	RelatedServices    []string `json:"relatedServices" yaml:"relatedServices"`
	RelatedCaseStudies []string `json:"relatedCaseStudies,omitempty" yaml:"relatedCaseStudies"`
}

// ContentLink points at a neighbouring page.
type ContentLink struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type Testimonial struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
	Role   string `json:"role" yaml:"role"`
}

// CaseStudySummary is the listing view of a case study.
type CaseStudySummary struct {
	Slug        string `json:"slug" yaml:"slug" validate:"required,slug"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Client      string `json:"client" yaml:"client"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}

type CaseStudy struct {
	CaseStudySummary `yaml:",inline"`
	Challenge        string       `json:"challenge" yaml:"challenge"`
	Approach         []string     `json:"approach" yaml:"approach"`
	Solution         string       `json:"solution" yaml:"solution"`
	Results          []string     `json:"results" yaml:"results"`
	Technologies     []string     `json:"technologies" yaml:"technologies"`
	Testimonial      *Testimonial `json:"testimonial,omitempty" yaml:"testimonial,omitempty"`
}

// CaseStudyPage is a case study with its neighbours in catalog order. The
// first study has no Previous and the last has no Next.
type CaseStudyPage struct {
	CaseStudy
	Previous *ContentLink `json:"previous"`
	Next     *ContentLink `json:"next"`
}

type Service struct {
	Slug        string   `json:"slug" yaml:"slug" validate:"required,slug"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Outcome     string   `json:"outcome" yaml:"outcome"`
	Description string   `json:"description" yaml:"description"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
}

type PricingPlan struct {
	Slug        string   `json:"slug" yaml:"slug" validate:"required,slug"`
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Price       string   `json:"price" yaml:"price"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Description string   `json:"description" yaml:"description"`
	Timeline    string   `json:"timeline" yaml:"timeline"`
	Features    []string `json:"features" yaml:"features"`
	CTA         string   `json:"cta" yaml:"cta"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

type FAQ struct {
	Slug     string `json:"slug" yaml:"slug" validate:"required,slug"`
	Question string `json:"question" yaml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer" validate:"required"`
}

// SitemapEntry is one <url> of the public sitemap.
type SitemapEntry struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// ContentRepository is read-only; content ships with the binary.
type ContentRepository interface {
	BlogPosts(ctx context.Context) ([]BlogArticle, error)
	CaseStudies(ctx context.Context) ([]CaseStudy, error)
	Services(ctx context.Context) ([]Service, error)
	PricingPlans(ctx context.Context) ([]PricingPlan, error)
	FAQs(ctx context.Context) ([]FAQ, error)
}

type ContentUsecase interface {
	ListBlogPosts(ctx context.Context) ([]BlogArticle, error)
	GetBlogPost(ctx context.Context, slug string) (*BlogArticle, error)
	ListCaseStudies(ctx context.Context) ([]CaseStudySummary, error)
	GetCaseStudy(ctx context.Context, slug string) (*CaseStudyPage, error)
	ListServices(ctx context.Context) ([]Service, error)
	ListPricingPlans(ctx context.Context) ([]PricingPlan, error)
	ListFAQs(ctx context.Context) ([]FAQ, error)
	Sitemap(ctx context.Context) ([]SitemapEntry, error)
}
