package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/codernote"
	"github.com/eringen/codernote/markdown"
)

// BlogList renders one page of the paginated blog listing.
func (t Theme) BlogList(page codernote.Page) templ.Component {
	body := component(func(h *htmlWriter) {
		h.open("section", "class", "blog")
		h.elem("h2", t.Site.Labels.LatestPosts)
		h.render(t.postList(page.Posts))
		if page.TotalPages > 1 {
			h.open("nav", "class", "pagination", "aria-label", "Pagination")
			if page.HasPrev() {
				h.link(codernote.PageURL(page.Number-1), "← "+strconv.Itoa(page.Number-1), "rel", "prev")
			} else {
				h.raw("<span></span>")
			}
			h.elem("span", strconv.Itoa(page.Number)+" / "+strconv.Itoa(page.TotalPages), "class", "page-number")
			if page.HasNext() {
				h.link(codernote.PageURL(page.Number+1), strconv.Itoa(page.Number+1)+" →", "rel", "next")
			} else {
				h.raw("<span></span>")
			}
			h.close("nav")
		}
		h.close("section")
	})
	title := t.Site.Labels.ViewAllPosts
	if page.Number > 1 {
		title += " (" + strconv.Itoa(page.Number) + ")"
	}
	return t.layout(t.meta(title, "", codernote.PageURL(page.Number), "website"), "", body)
}

// Post renders a single article. similar is only shown when the site
// enables similar posts.
func (t Theme) Post(post codernote.BlogPost, similar []codernote.BlogPost) templ.Component {
	body := component(func(h *htmlWriter) {
		h.open("article", "class", "post")
		h.raw("<header>")
		h.elem("h1", post.Title)
		t.postMeta(h, post)
		if len(post.Tags) > 0 {
			h.open("ul", "class", "terms")
			for _, tag := range post.Tags {
				h.raw("<li>")
				h.link(termLink(codernote.KindTags, tag), "#"+tag, "rel", "tag")
				h.raw("</li>")
			}
			h.close("ul")
		}
		h.raw("</header>")
		if post.Thumbnail != "" {
			h.open("img", "class", "post-thumbnail", "src", post.Thumbnail, "alt", post.Title)
		}
		h.open("div", "class", "post-content")
		h.render(markdown.Markdown(post.Content))
		h.close("div")
		h.close("article")

		if t.Site.ShowSimilarPosts && len(similar) > 0 {
			h.open("section", "class", "similar")
			h.elem("h2", t.Site.Labels.YouMightAlsoLike)
			h.render(t.postList(similar))
			h.close("section")
		}

		h.open("p", "class", "back")
		h.link("/", "← "+t.Site.Labels.BackToHome)
		h.close("p")
	})
	meta := t.meta(post.Title, post.Summary, post.Link, "article")
	return t.layout(meta, codernote.BlogPostingJsonLD(post, t.Site, t.SiteURL), body)
}
