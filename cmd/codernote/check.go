package main

import (
	"errors"
	"fmt"

	"github.com/eringen/codernote/logging"
	"github.com/eringen/codernote/siteconfig"
)

// runCheck loads the configuration the way serve would and reports the
// outcome. It returns the process exit code.
func (c cli) runCheck(args []string) int {
	path := c.configPath(args)
	logger := logging.New(c.stderr, c.env("LOG_LEVEL", "warn"), c.env("LOG_FORMAT", "console"))
	site, err := siteconfig.Loader{
		Path:   path,
		Lookup: c.lookup,
		Logger: logging.WithComponent(logger, "siteconfig"),
	}.Load()
	if err != nil {
		var ce *siteconfig.ConfigError
		if !errors.As(err, &ce) || len(ce.Problems) == 0 {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(c.stderr, "%s: %d problem(s)\n", displayPath(path), len(ce.Problems))
		for _, p := range ce.Problems {
			fmt.Fprintf(c.stderr, "  - %s\n", p)
		}
		return 1
	}

	fmt.Fprintf(c.stdout, "%s: ok\n", displayPath(path))
	fmt.Fprintf(c.stdout, "  title:           %s\n", site.SiteTitle)
	fmt.Fprintf(c.stdout, "  posts per page:  %d\n", site.NumberOfBlogPostsPerPage)
	fmt.Fprintf(c.stdout, "  latest on home:  %d\n", site.NumberOfLatestPostsOnHomePage)
	fmt.Fprintf(c.stdout, "  featured posts:  %s\n", onOff(site.ShowFeaturedPostsOnHomePage))
	fmt.Fprintf(c.stdout, "  authors on home: %s\n", onOff(site.ShowAuthorsOnHomePage))
	fmt.Fprintf(c.stdout, "  similar posts:   %s\n", onOff(site.ShowSimilarPosts))
	if site.AnalyticsEnabled() {
		fmt.Fprintf(c.stdout, "  analytics:       %s\n", site.GTag)
	} else {
		fmt.Fprintf(c.stdout, "  analytics:       off\n")
	}
	return 0
}

func displayPath(path string) string {
	if path == "" {
		return "(built-in default)"
	}
	return path
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
