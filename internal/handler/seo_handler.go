package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"workshop-site/internal/logger"
	"workshop-site/internal/navigation"
	"workshop-site/internal/service"
	"workshop-site/internal/state"
)

// SeoHandler holds dependencies for SEO-related handlers.
type SeoHandler struct {
	baseURL string
	store   *state.Store
	blog    *service.BlogService
	log     logger.Logger
}

// NewSeoHandler creates a new SeoHandler.
func NewSeoHandler(baseURL string, store *state.Store, blog *service.BlogService, log logger.Logger) *SeoHandler {
	return &SeoHandler{baseURL: strings.TrimRight(baseURL, "/"), store: store, blog: blog, log: log}
}

// robotsHandler serves robots.txt. The dashboard is kept out of search results.
func (h *SeoHandler) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Allow: /")
	fmt.Fprintln(w, "Disallow: /admin")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", h.baseURL)
}

const sitemapDateFormat = "2006-01-02"

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapHandler lists the home page, every active panel and each blog post.
func (h *SeoHandler) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	pages, count := h.store.Pages()
	layout := navigation.Compose(pages, count)

	sitemap := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, item := range layout.NavItems() {
		loc := h.baseURL + "/"
		if item.Screen != navigation.ScreenHome {
			loc += "?screen=" + item.Screen.Slug()
		}
		sitemap.URLs = append(sitemap.URLs, sitemapURL{Loc: loc})
	}

	if layout.Has(navigation.ScreenBlog) {
		posts, err := h.blog.List(r.Context())
		if err != nil {
			h.log.Error(err, "Failed to list blog posts for sitemap")
		}
		for _, p := range posts {
			sitemap.URLs = append(sitemap.URLs, sitemapURL{
				Loc:     h.baseURL + "/blog/" + p.ID,
				LastMod: p.PostDate.Format(sitemapDateFormat),
			})
		}
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(sitemap); err != nil {
		h.log.Error(err, "Failed to generate sitemap XML")
	}
}
