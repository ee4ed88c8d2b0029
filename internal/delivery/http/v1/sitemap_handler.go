package v1

import (
	"encoding/xml"
	"net/http"
	"portfolio-backend/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type SitemapHandler struct {
	contentUC domain.ContentUsecase
	siteURL   string
	now       func() time.Time
}

// NewSitemapHandler registers GET /sitemap.xml at the root of r. Locations are
// absolute under siteURL.
func NewSitemapHandler(r gin.IRoutes, contentUC domain.ContentUsecase, siteURL string) {
	handler := &SitemapHandler{
		contentUC: contentUC,
		siteURL:   strings.TrimRight(siteURL, "/"),
		now:       time.Now,
	}
	r.GET("/sitemap.xml", handler.Sitemap)
}

// Sitemap renders the sitemaps.org document for search engines.
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	entries, err := h.contentUC.Sitemap(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	lastMod := h.now().UTC().Format(time.DateOnly)
	set := urlSet{Xmlns: sitemapNamespace, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		loc := h.siteURL + e.Path
		if e.Path == "/" {
			loc = h.siteURL
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}

	c.XML(http.StatusOK, set)
}
