// Package views is the default codernote theme. Every section toggle,
// label and count it honors comes from the siteconfig.SiteConfig it was
// built with.
package views

import (
	"strings"

	"github.com/eringen/codernote"
	"github.com/eringen/codernote/siteconfig"
)

// Theme renders pages for one site. It holds its own copy of the site
// configuration.
type Theme struct {
	Site    siteconfig.SiteConfig
	SiteURL string
}

// New returns the default theme's ViewFuncs for site.
func New(site siteconfig.SiteConfig, siteURL string) codernote.ViewFuncs {
	t := Theme{Site: site, SiteURL: siteURL}
	return codernote.ViewFuncs{
		Home:           t.Home,
		BlogList:       t.BlogList,
		Post:           t.Post,
		TermIndex:      t.TermIndex,
		TermPosts:      t.TermPosts,
		AdminLogin:     t.AdminLogin,
		AdminDashboard: t.AdminDashboard,
		AdminForm:      t.AdminForm,
		NotFound:       t.NotFound,
		ServerError:    t.ServerError,
	}
}

// meta returns the PageMeta for a page at path with the given title. An
// empty title means the site title alone.
func (t Theme) meta(title, description, path, ogType string) codernote.PageMeta {
	full := t.Site.SiteTitle
	if title != "" {
		full = title + " | " + t.Site.SiteTitle
	}
	if description == "" {
		description = t.Site.SiteSubTitle
	}
	if ogType == "" {
		ogType = "website"
	}
	return codernote.PageMeta{
		Title:       full,
		Description: description,
		URL:         strings.TrimRight(t.SiteURL, "/") + path,
		OGType:      ogType,
	}
}
