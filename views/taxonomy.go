package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/codernote"
)

// taxonomyText returns the title and description labels for kind.
func (t Theme) taxonomyText(kind codernote.TaxonomyKind) (title, description string) {
	l := t.Site.Labels
	switch kind {
	case codernote.KindCategories:
		return l.AllCategories, l.ExploreArticlesByCategories
	case codernote.KindTags:
		return l.AllTags, l.ExploreArticlesByTags
	case codernote.KindAuthors:
		return l.AllAuthors, l.ExploreArticlesByAuthors
	}
	return string(kind), ""
}

// TermIndex renders the list of every category, tag or author.
func (t Theme) TermIndex(kind codernote.TaxonomyKind, terms []codernote.Term) templ.Component {
	title, description := t.taxonomyText(kind)
	body := component(func(h *htmlWriter) {
		h.open("section", "class", "taxonomy "+string(kind))
		h.elem("h2", title)
		h.elem("p", description, "class", "description")
		h.render(t.termList(terms))
		h.close("section")
	})
	return t.layout(t.meta(title, description, kind.Path(), "website"), "", body)
}

// TermPosts renders the posts filed under one term.
func (t Theme) TermPosts(term codernote.Term, posts []codernote.BlogPost) templ.Component {
	indexTitle, _ := t.taxonomyText(term.Kind)
	body := component(func(h *htmlWriter) {
		h.open("section", "class", "term")
		h.open("p", "class", "meta")
		h.link(term.Kind.Path(), indexTitle)
		h.close("p")
		h.elem("h2", term.Name)
		h.render(t.postList(posts))
		h.open("p", "class", "back")
		h.link("/", "← "+t.Site.Labels.BackToHome)
		h.close("p")
		h.close("section")
	})
	return t.layout(t.meta(term.Name, "", term.Link(), "website"), "", body)
}
