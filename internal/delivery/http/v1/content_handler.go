package v1

import (
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the read-only catalog routes.
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	public.GET("/blog", handler.ListBlogPosts)
	public.GET("/blog/:slug", handler.GetBlogPost)
	public.GET("/case-studies", handler.ListCaseStudies)
	public.GET("/case-studies/:slug", handler.GetCaseStudy)
	public.GET("/services", handler.ListServices)
	public.GET("/pricing", handler.ListPricingPlans)
	public.GET("/faq", handler.ListFAQs)
}

// ListBlogPosts godoc
// @Summary      List blog posts
// @Description  Blog post previews, newest first
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.BlogPost}
// @Router       /blog [get]
func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.contentUC.ListBlogPosts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GetBlogPost godoc
// @Summary      Get a blog post
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  response.Response{data=domain.BlogArticle}
// @Failure      404   {object}  response.Response
// @Router       /blog/{slug} [get]
func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	post, err := h.contentUC.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// ListCaseStudies godoc
// @Summary      List case studies
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CaseStudySummary}
// @Router       /case-studies [get]
func (h *ContentHandler) ListCaseStudies(c *gin.Context) {
	studies, err := h.contentUC.ListCaseStudies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, studies)
}

// GetCaseStudy godoc
// @Summary      Get a case study
// @Description  Full case study with previous and next links, null at the ends
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Case study slug"
// @Success      200   {object}  response.Response{data=domain.CaseStudyPage}
// @Failure      404   {object}  response.Response
// @Router       /case-studies/{slug} [get]
func (h *ContentHandler) GetCaseStudy(c *gin.Context) {
	page, err := h.contentUC.GetCaseStudy(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// ListServices godoc
// @Summary      List services
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services [get]
func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.contentUC.ListServices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, services)
}

// ListPricingPlans godoc
// @Summary      List pricing plans
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.PricingPlan}
// @Router       /pricing [get]
func (h *ContentHandler) ListPricingPlans(c *gin.Context) {
	plans, err := h.contentUC.ListPricingPlans(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, plans)
}

// ListFAQs godoc
// @Summary      List FAQs
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.FAQ}
// @Router       /faq [get]
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.contentUC.ListFAQs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, faqs)
}
