package views

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/codernote"
)

// formatDate renders an ISO date as "Jan 2, 2006"; other input is returned as is.
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

func termLink(kind codernote.TaxonomyKind, name string) string {
	return codernote.Term{Kind: kind, Slug: codernote.Slugify(name)}.Link()
}

// postMeta writes the date, author and category line of a post.
func (t Theme) postMeta(h *htmlWriter, p codernote.BlogPost) {
	h.open("p", "class", "meta")
	h.open("time", "datetime", p.Date)
	h.text(formatDate(p.Date))
	h.close("time")
	author := p.Author
	if author == "" {
		author = t.Site.DefaultAuthorName
	}
	h.text(" · ")
	h.link(termLink(codernote.KindAuthors, author), author, "rel", "author")
	if p.Category != "" {
		h.text(" · " + t.Site.Labels.PostedIn + " ")
		h.link(termLink(codernote.KindCategories, p.Category), p.Category)
	}
	h.close("p")
}

// postList renders posts as a list, or the empty-state label.
func (t Theme) postList(posts []codernote.BlogPost) templ.Component {
	return component(func(h *htmlWriter) {
		if len(posts) == 0 {
			h.elem("p", t.Site.Labels.NoArticlesFound, "class", "empty")
			return
		}
		h.open("ul", "class", "post-list")
		for _, p := range posts {
			h.raw("<li>")
			h.open("h3")
			h.link(p.Link, p.Title)
			h.close("h3")
			t.postMeta(h, p)
			if p.Summary != "" {
				h.elem("p", p.Summary, "class", "summary")
			}
			h.raw("</li>")
		}
		h.close("ul")
	})
}

// termList renders terms as pills with post counts.
func (t Theme) termList(terms []codernote.Term) templ.Component {
	return component(func(h *htmlWriter) {
		if len(terms) == 0 {
			h.elem("p", t.Site.Labels.NoArticlesFound, "class", "empty")
			return
		}
		h.open("ul", "class", "terms")
		for _, term := range terms {
			h.raw("<li>")
			h.open("a", "href", term.Link())
			h.text(term.Name)
			h.elem("span", " ("+strconv.Itoa(term.Count)+")", "class", "count")
			h.close("a")
			h.raw("</li>")
		}
		h.close("ul")
	})
}
