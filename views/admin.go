package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/codernote"
)

func csrfField(h *htmlWriter, token string) {
	h.open("input", "type", "hidden", "name", "_csrf", "value", token)
}

func (t Theme) adminPage(title string, body templ.Component) templ.Component {
	return t.layout(t.meta(title, "", "/admin/", "website"), "", body)
}

// AdminLogin renders the password form.
func (t Theme) AdminLogin(showError bool, csrfToken string) templ.Component {
	return t.adminPage("Admin", component(func(h *htmlWriter) {
		h.elem("h2", "Admin login")
		if showError {
			h.elem("p", "Invalid password.", "class", "error")
		}
		h.open("form", "method", "post", "action", "/admin/login/", "class", "admin-form")
		csrfField(h, csrfToken)
		h.elem("label", "Password", "for", "password")
		h.open("input", "type", "password", "id", "password", "name", "password", "autocomplete", "current-password")
		h.raw(`<p><button type="submit">Log in</button></p>`)
		h.close("form")
	}))
}

// AdminDashboard lists every post, drafts included.
func (t Theme) AdminDashboard(posts []codernote.BlogPost, message string, csrfToken string) templ.Component {
	return t.adminPage("Dashboard", component(func(h *htmlWriter) {
		h.elem("h2", "Posts")
		if message != "" {
			h.elem("p", message, "class", "flash")
		}
		h.open("p")
		h.link("/admin/new/", "New post")
		h.close("p")
		h.open("table", "class", "admin-table")
		h.raw("<tr><th>Title</th><th>Date</th><th>Category</th><th>Status</th><th></th></tr>")
		for _, p := range posts {
			h.raw("<tr><td>")
			h.link("/admin/post/"+codernote.PathEscape(p.Slug)+"/", p.Title)
			if p.Featured {
				h.elem("span", " ★", "title", "featured")
			}
			h.raw("</td>")
			h.elem("td", p.Date)
			h.elem("td", p.Category)
			status := "draft"
			if p.Published {
				status = "published"
			}
			h.elem("td", status)
			h.raw("<td>")
			h.open("form", "method", "post", "action", "/admin/post/"+codernote.PathEscape(p.Slug)+"/delete/")
			csrfField(h, csrfToken)
			h.raw(`<button type="submit">Delete</button>`)
			h.close("form")
			h.raw("</td></tr>")
		}
		h.close("table")
		h.open("form", "method", "post", "action", "/admin/logout/")
		csrfField(h, csrfToken)
		h.raw(`<p><button type="submit">Log out</button></p>`)
		h.close("form")
	}))
}

// AdminForm renders the create/edit form for post.
func (t Theme) AdminForm(post codernote.BlogPost, csrfToken string) templ.Component {
	return t.adminPage("Edit post", component(func(h *htmlWriter) {
		h.elem("h2", "Edit post")
		h.open("form", "method", "post", "action", "/admin/save/", "enctype", "multipart/form-data", "class", "admin-form")
		csrfField(h, csrfToken)
		textField(h, "title", "Title", post.Title)
		textField(h, "slug", "Slug", post.Slug)
		textField(h, "date", "Date (YYYY-MM-DD)", post.Date)
		textField(h, "category", "Category", post.Category)
		textField(h, "tags", "Tags (comma separated)", codernote.JoinTags(post.Tags))
		textField(h, "author", "Author", post.Author)
		h.elem("label", "Summary", "for", "summary")
		h.open("textarea", "id", "summary", "name", "summary", "rows", "3")
		h.text(post.Summary)
		h.close("textarea")
		h.elem("label", "Content (Markdown)", "for", "content")
		h.open("textarea", "id", "content", "name", "content", "rows", "20")
		h.text(post.Content)
		h.close("textarea")

		h.elem("label", "Thumbnail", "for", "thumbnail")
		if post.Thumbnail != "" {
			h.open("img", "src", post.Thumbnail, "alt", "", "width", "200")
			h.open("input", "type", "hidden", "name", "thumbnail_url", "value", post.Thumbnail)
			h.raw(`<label><input type="checkbox" name="remove_thumbnail" value="1"> Remove thumbnail</label>`)
		}
		h.open("input", "type", "file", "id", "thumbnail", "name", "thumbnail", "accept", "image/*")

		checkbox(h, "featured", "Featured", post.Featured)
		checkbox(h, "published", "Published", post.Published)
		h.raw(`<p><button type="submit">Save</button></p>`)
		h.close("form")
	}))
}

func textField(h *htmlWriter, name, label, value string) {
	h.elem("label", label, "for", name)
	h.open("input", "type", "text", "id", name, "name", name, "value", value)
}

func checkbox(h *htmlWriter, name, label string, checked bool) {
	h.raw("<label>")
	if checked {
		h.open("input", "type", "checkbox", "name", name, "value", "1", "checked", "checked")
	} else {
		h.open("input", "type", "checkbox", "name", name, "value", "1")
	}
	h.text(" " + label)
	h.raw("</label>")
}
