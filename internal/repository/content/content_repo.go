package content

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// PublishedLabelLayout renders blog dates the way the site shows them, e.g. "15 December 2024".
const PublishedLabelLayout = "2 January 2006"

//go:embed data/*.yaml
var embedded embed.FS

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type contentRepo struct {
	blog        []domain.BlogArticle
	caseStudies []domain.CaseStudy
	services    []domain.Service
	plans       []domain.PricingPlan
	faqs        []domain.FAQ
}

// NewContentRepository loads the catalog compiled into the binary.
func NewContentRepository() (domain.ContentRepository, error) {
	data, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load reads blog.yaml, case_studies.yaml, services.yaml, pricing.yaml and
// faq.yaml from fsys. Any malformed entry fails the whole load.
func Load(fsys fs.FS) (domain.ContentRepository, error) {
	v := validation.New()
	r := &contentRepo{}

	if err := decode(fsys, "blog.yaml", &r.blog); err != nil {
		return nil, err
	}
	for i := range r.blog {
		post := &r.blog[i]
		post.Slug = strings.TrimSpace(post.Slug)
		if err := v.Struct(post); err != nil {
			return nil, fmt.Errorf("blog.yaml entry %d: %w", i, err)
		}
		published, _ := time.Parse(time.DateOnly, post.PublishedAt)
		post.Published = published
		post.PublishedLabel = published.Format(PublishedLabelLayout)
	}
	if err := checkUnique("blog.yaml", r.blog, func(p domain.BlogArticle) string { return p.Slug }); err != nil {
		return nil, err
	}

	if err := decode(fsys, "case_studies.yaml", &r.caseStudies); err != nil {
		return nil, err
	}
	if err := validateAll(v, "case_studies.yaml", r.caseStudies); err != nil {
		return nil, err
	}
	if err := checkUnique("case_studies.yaml", r.caseStudies, func(c domain.CaseStudy) string { return c.Slug }); err != nil {
		return nil, err
	}

	if err := decode(fsys, "services.yaml", &r.services); err != nil {
		return nil, err
	}
	for i := range r.services {
		r.services[i].Slug = slugOr(r.services[i].Slug, r.services[i].Title)
	}
	if err := validateAll(v, "services.yaml", r.services); err != nil {
		return nil, err
	}
	if err := checkUnique("services.yaml", r.services, func(s domain.Service) string { return s.Slug }); err != nil {
		return nil, err
	}

	if err := decode(fsys, "pricing.yaml", &r.plans); err != nil {
		return nil, err
	}
	for i := range r.plans {
		r.plans[i].Slug = slugOr(r.plans[i].Slug, r.plans[i].Name)
	}
	if err := validateAll(v, "pricing.yaml", r.plans); err != nil {
		return nil, err
	}
	if err := checkUnique("pricing.yaml", r.plans, func(p domain.PricingPlan) string { return p.Slug }); err != nil {
		return nil, err
	}

	if err := decode(fsys, "faq.yaml", &r.faqs); err != nil {
		return nil, err
	}
	for i := range r.faqs {
		r.faqs[i].Slug = slugOr(r.faqs[i].Slug, r.faqs[i].Question)
	}
	if err := validateAll(v, "faq.yaml", r.faqs); err != nil {
		return nil, err
	}
	if err := checkUnique("faq.yaml", r.faqs, func(f domain.FAQ) string { return f.Slug }); err != nil {
		return nil, err
	}

	if err := r.checkRelated(); err != nil {
		return nil, err
	}
	return r, nil
}

// checkRelated makes sure every post links only to case studies and
// services that exist in the catalog.
func (r *contentRepo) checkRelated() error {
	for _, post := range r.blog {
		for _, slug := range post.RelatedCaseStudies {
			if !slices.ContainsFunc(r.caseStudies, func(c domain.CaseStudy) bool { return c.Slug == slug }) {
				return fmt.Errorf("blog.yaml %q: unknown related case study %q", post.Slug, slug)
			}
		}
		for _, title := range post.RelatedServices {
			if !slices.ContainsFunc(r.services, func(s domain.Service) bool { return s.Title == title }) {
				return fmt.Errorf("blog.yaml %q: unknown related service %q", post.Slug, title)
			}
		}
	}
	return nil
}

// The getters return deep copies so callers cannot mutate the catalog.

func (r *contentRepo) BlogPosts(ctx context.Context) ([]domain.BlogArticle, error) {
	posts := make([]domain.BlogArticle, len(r.blog))
	for i, p := range r.blog {
		p.Content = slices.Clone(p.Content)
		p.RelatedServices = slices.Clone(p.RelatedServices)
		p.RelatedCaseStudies = slices.Clone(p.RelatedCaseStudies)
		posts[i] = p
	}
	return posts, nil
}

func (r *contentRepo) CaseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	studies := make([]domain.CaseStudy, len(r.caseStudies))
	for i, c := range r.caseStudies {
		c.Approach = slices.Clone(c.Approach)
		c.Results = slices.Clone(c.Results)
		c.Technologies = slices.Clone(c.Technologies)
		if c.Testimonial != nil {
			t := *c.Testimonial
			c.Testimonial = &t
		}
		studies[i] = c
	}
	return studies, nil
}

func (r *contentRepo) Services(ctx context.Context) ([]domain.Service, error) {
	services := make([]domain.Service, len(r.services))
	for i, s := range r.services {
		s.Bullets = slices.Clone(s.Bullets)
		services[i] = s
	}
	return services, nil
}

func (r *contentRepo) PricingPlans(ctx context.Context) ([]domain.PricingPlan, error) {
	plans := make([]domain.PricingPlan, len(r.plans))
	for i, p := range r.plans {
		p.Features = slices.Clone(p.Features)
		plans[i] = p
	}
	return plans, nil
}

func (r *contentRepo) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	return slices.Clone(r.faqs), nil
}

// Slugify lowercases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	return strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func slugOr(slug, fallback string) string {
	if slug = strings.TrimSpace(slug); slug != "" {
		return slug
	}
	return Slugify(fallback)
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func validateAll[T any](v *validator.Validate, file string, items []T) error {
	for i := range items {
		if err := v.Struct(&items[i]); err != nil {
			return fmt.Errorf("%s entry %d: %w", file, i, err)
		}
	}
	return nil
}

func checkUnique[T any](file string, items []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%s: duplicate slug %q", file, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
