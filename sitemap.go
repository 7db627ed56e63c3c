package codernote

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) renderSitemap(c echo.Context, posts []BlogPost) error {
	urls := []sitemapURL{{Loc: a.absURL("/")}}

	// Every listing page exists even when empty, so page 1 is always listed.
	pages := 1
	if first, err := Paginate(posts, 1, a.site.NumberOfBlogPostsPerPage); err == nil {
		pages = first.TotalPages
	}
	for n := 1; n <= pages; n++ {
		urls = append(urls, sitemapURL{Loc: a.absURL(PageURL(n))})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     a.absURL(p.Link),
			LastMod: p.Date,
		})
	}
	for _, kind := range TaxonomyKinds {
		terms, err := a.Cache.Terms(kind)
		if err != nil {
			return err
		}
		urls = append(urls, sitemapURL{Loc: a.absURL(kind.Path())})
		for _, t := range terms {
			urls = append(urls, sitemapURL{Loc: a.absURL(t.Link())})
		}
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
