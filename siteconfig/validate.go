package siteconfig

// Validate checks the field constraints of cfg. It returns a *ConfigError
// listing every violation, or nil.
func Validate(cfg SiteConfig) error {
	return validate(cfg, "")
}

func validate(cfg SiteConfig, path string) error {
	var c checker
	c.nonEmpty("siteTitle", cfg.SiteTitle)
	c.nonEmpty("copyright", cfg.Copyright)
	c.nonEmpty("defaultAuthorName", cfg.DefaultAuthorName)
	for _, f := range labelFields {
		c.nonEmpty("labels."+f.key, *f.field(&cfg.Labels))
	}
	c.atLeast("numberOfLatestPostsOnHomePage", cfg.NumberOfLatestPostsOnHomePage, 0)
	c.atLeast("numberOfBlogPostsPerPage", cfg.NumberOfBlogPostsPerPage, 1)
	return c.err(path)
}
