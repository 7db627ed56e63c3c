package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/codernote"
)

// layout wraps body in the page shell: head, site header and footer.
// jsonLD is an optional structured-data document for the page.
func (t Theme) layout(meta codernote.PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "en")
		h.render(t.head(meta, jsonLD))
		h.raw("<body>")
		h.render(t.header())
		h.open("main", "class", "container")
		h.render(body)
		h.close("main")
		h.render(t.footer())
		h.raw("</body></html>")
	})
}

func (t Theme) head(meta codernote.PageMeta, jsonLD string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.elem("title", meta.Title)
		if meta.Description != "" {
			h.open("meta", "name", "description", "content", meta.Description)
			h.open("meta", "property", "og:description", "content", meta.Description)
		}
		h.open("meta", "property", "og:title", "content", meta.Title)
		h.open("meta", "property", "og:type", "content", meta.OGType)
		h.open("meta", "property", "og:url", "content", meta.URL)
		h.open("meta", "property", "og:site_name", "content", t.Site.SiteTitle)
		h.open("link", "rel", "canonical", "href", meta.URL)
		h.open("link", "rel", "alternate", "type", "application/rss+xml", "title", t.Site.SiteTitle, "href", "/feed.xml")
		h.open("link", "rel", "icon", "href", "/favicon.svg")
		h.open("link", "rel", "stylesheet", "href", "/public/theme.css")
		if jsonLD == "" {
			jsonLD = codernote.WebsiteJsonLD(t.Site, t.SiteURL)
		}
		h.raw(`<script type="application/ld+json">` + jsonLD + `</script>`)
		h.render(GTag(t.Site.GTag))
		h.raw("</head>")
	})
}

func (t Theme) header() templ.Component {
	return component(func(h *htmlWriter) {
		h.open("header", "class", "site-header")
		h.open("div", "class", "container")
		h.open("h1", "class", "site-title")
		h.link("/", t.Site.SiteTitle)
		h.close("h1")
		if t.Site.SiteSubTitle != "" {
			h.elem("p", t.Site.SiteSubTitle, "class", "site-subtitle")
		}
		h.close("div")
		h.close("header")
	})
}

func (t Theme) footer() templ.Component {
	return component(func(h *htmlWriter) {
		h.open("footer", "class", "site-footer")
		h.open("div", "class", "container")
		links := t.footerLinks()
		if len(links) > 0 {
			h.raw("<nav>")
			for _, l := range links {
				h.link(l.href, l.text)
			}
			h.raw("</nav>")
		}
		h.elem("p", t.Site.Copyright, "class", "copyright")
		h.close("div")
		h.close("footer")
	})
}

type navLink struct {
	href, text string
}

// footerLinks returns the taxonomy links the site enables, in footer order.
func (t Theme) footerLinks() []navLink {
	var links []navLink
	if t.Site.ShowCategoriesLinkOnFooter {
		links = append(links, navLink{codernote.KindCategories.Path(), t.Site.Labels.AllCategories})
	}
	if t.Site.ShowTagsLinkOnFooter {
		links = append(links, navLink{codernote.KindTags.Path(), t.Site.Labels.AllTags})
	}
	if t.Site.ShowAuthorsLinkOnFooter {
		links = append(links, navLink{codernote.KindAuthors.Path(), t.Site.Labels.AllAuthors})
	}
	return links
}
