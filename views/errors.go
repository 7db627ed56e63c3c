package views

import "github.com/a-h/templ"

func (t Theme) errorPage(title, message string) templ.Component {
	body := component(func(h *htmlWriter) {
		h.elem("h2", title)
		h.elem("p", message)
		h.open("p", "class", "back")
		h.link("/", "← "+t.Site.Labels.BackToHome)
		h.close("p")
	})
	return t.layout(t.meta(title, "", "/", "website"), "", body)
}

// NotFound renders the 404 page.
func (t Theme) NotFound() templ.Component {
	return t.errorPage("Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func (t Theme) ServerError() templ.Component {
	return t.errorPage("Something went wrong", "Please try again in a moment.")
}
