package siteconfig

import (
	"strconv"
	"strings"
)

// envOverrides lists the environment variables that may replace a loaded
// value. Label strings are file-only.
var envOverrides = []struct {
	env   string
	field string
	set   func(*SiteConfig, string) error
}{
	{"SITE_TITLE", "siteTitle", setString(func(c *SiteConfig) *string { return &c.SiteTitle })},
	{"SITE_SUBTITLE", "siteSubTitle", setString(func(c *SiteConfig) *string { return &c.SiteSubTitle })},
	{"SITE_COPYRIGHT", "copyright", setString(func(c *SiteConfig) *string { return &c.Copyright })},
	{"SITE_DEFAULT_AUTHOR", "defaultAuthorName", setString(func(c *SiteConfig) *string { return &c.DefaultAuthorName })},
	{"SITE_GTAG", "gTag", setString(func(c *SiteConfig) *string { return &c.GTag })},
	{"SITE_LATEST_POSTS", "numberOfLatestPostsOnHomePage", setInt(func(c *SiteConfig) *int { return &c.NumberOfLatestPostsOnHomePage })},
	{"SITE_POSTS_PER_PAGE", "numberOfBlogPostsPerPage", setInt(func(c *SiteConfig) *int { return &c.NumberOfBlogPostsPerPage })},
	{"SITE_SHOW_AUTHORS", "showAuthorsOnHomePage", setBool(func(c *SiteConfig) *bool { return &c.ShowAuthorsOnHomePage })},
	{"SITE_SHOW_FEATURED", "showFeaturedPostsOnHomePage", setBool(func(c *SiteConfig) *bool { return &c.ShowFeaturedPostsOnHomePage })},
	{"SITE_SHOW_SIMILAR", "showSimilarPosts", setBool(func(c *SiteConfig) *bool { return &c.ShowSimilarPosts })},
}

// applyEnv overwrites fields for every override that is set. SITE_GTAG and
// SITE_SUBTITLE may be set to the empty string to clear the value; the
// other variables are ignored when empty.
func (l Loader) applyEnv(cfg *SiteConfig) error {
	if l.Lookup == nil {
		return nil
	}
	var c checker
	for _, o := range envOverrides {
		v, ok := l.Lookup(o.env)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v == "" && o.env != "SITE_GTAG" && o.env != "SITE_SUBTITLE" {
			continue
		}
		if err := o.set(cfg, v); err != nil {
			c.add(o.field, "invalid "+o.env+" override: "+err.Error())
			continue
		}
		l.Logger.Debug().
			Str("key", o.env).
			Str("field", o.field).
			Str("source", "environment").
			Msg("site config override")
	}
	return c.err(l.Path)
}

func setString(field func(*SiteConfig) *string) func(*SiteConfig, string) error {
	return func(c *SiteConfig, v string) error {
		*field(c) = v
		return nil
	}
}

func setInt(field func(*SiteConfig) *int) func(*SiteConfig, string) error {
	return func(c *SiteConfig, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func setBool(field func(*SiteConfig) *bool) func(*SiteConfig, string) error {
	return func(c *SiteConfig, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}
