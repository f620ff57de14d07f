package http

import (
	"net/http"

	"github.com/beevik/etree"
	"github.com/fwojciec/contractors"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// BuildSitemap returns a sitemap document listing the home page and every
// service page under baseURL.
func BuildSitemap(baseURL string, services contractors.Services) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	addURL := func(loc, priority string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(loc)
		u.CreateElement("changefreq").SetText("weekly")
		u.CreateElement("priority").SetText(priority)
	}

	addURL(pageURL(baseURL, "/"), "1.0")
	for _, s := range services {
		addURL(pageURL(baseURL, s.Slug), "0.8")
	}

	doc.Indent(2)
	return doc
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	doc := BuildSitemap(s.BaseURL, s.Services)
	w.Header().Set("Content-Type", "application/xml")
	if _, err := doc.WriteTo(w); err != nil {
		s.Logger.Error("write sitemap", "err", err)
	}
}
