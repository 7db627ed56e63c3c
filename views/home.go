package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/codernote"
)

// Home renders the front page. Sections switched off in the site
// configuration are left out entirely.
func (t Theme) Home(page codernote.HomePage) templ.Component {
	body := component(func(h *htmlWriter) {
		if t.Site.ShowFeaturedPostsOnHomePage && len(page.Featured) > 0 {
			h.render(t.featuredSection(page.Featured))
		}
		if t.Site.NumberOfLatestPostsOnHomePage > 0 {
			h.open("section", "class", "latest")
			h.elem("h2", t.Site.Labels.LatestPosts)
			h.render(t.postList(page.Latest))
			if page.TotalPosts > 0 {
				h.open("p", "class", "view-all")
				h.link(codernote.PageURL(1), t.Site.Labels.ViewAllPosts)
				h.close("p")
			}
			h.close("section")
		} else if page.TotalPosts == 0 {
			h.elem("p", t.Site.Labels.NoArticlesFound, "class", "empty")
		}
		if t.Site.ShowAuthorsOnHomePage && len(page.Authors) > 0 {
			h.open("section", "class", "authors")
			h.elem("h2", t.Site.Labels.AllAuthors)
			h.render(t.termList(page.Authors))
			h.close("section")
		}
	})
	return t.layout(t.meta("", "", "/", "website"), "", body)
}

func (t Theme) featuredSection(posts []codernote.BlogPost) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "featured")
		h.elem("h2", t.Site.Labels.FeaturedPosts)
		h.open("div", "class", "featured-grid")
		for _, p := range posts {
			h.open("article", "class", "card")
			if t.Site.ShowThumbnailOnFeaturedPosts && p.Thumbnail != "" {
				h.open("a", "href", p.Link)
				h.open("img", "src", p.Thumbnail, "alt", p.Title, "loading", "lazy")
				h.close("a")
			}
			h.open("div", "class", "card-body")
			h.open("h3")
			h.link(p.Link, p.Title)
			h.close("h3")
			t.postMeta(h, p)
			if p.Summary != "" {
				h.elem("p", p.Summary)
			}
			if t.Site.ShowReadMoreLinkOnFeaturedPosts {
				h.link(p.Link, t.Site.Labels.ReadMore, "class", "read-more")
			}
			h.close("div")
			h.close("article")
		}
		h.close("div")
		h.close("section")
	})
}
