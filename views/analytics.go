package views

import (
	"encoding/json"
	"net/url"

	"github.com/a-h/templ"
)

const gtagScriptURL = "https://www.googletagmanager.com/gtag/js?id="

// GTag returns the Google Analytics loader for the tracking ID id. An empty
// id renders nothing at all.
func GTag(id string) templ.Component {
	return component(func(h *htmlWriter) {
		if id == "" {
			return
		}
		h.open("script", "async", "async", "src", gtagScriptURL+url.QueryEscape(id))
		h.close("script")
		// json.Marshal escapes <, > and & so the ID cannot end the script.
		quoted, err := json.Marshal(id)
		if err != nil {
			h.err = err
			return
		}
		h.raw("<script>window.dataLayer=window.dataLayer||[];" +
			"function gtag(){dataLayer.push(arguments);}" +
			"gtag('js',new Date());" +
			"gtag('config'," + string(quoted) + ");</script>")
	})
}
