// Package siteconfig defines the theme configuration of a codernote site:
// titles, UI labels, section toggles, pagination counts and the analytics
// tracking ID.
//
// A SiteConfig is loaded once at startup and then passed by value to every
// component that reads it. It contains only value types, so copies never
// share state and no reader can change what another reader sees.
package siteconfig

// SiteConfig is the validated theme configuration.
type SiteConfig struct {
	SiteTitle    string `yaml:"siteTitle"`
	SiteSubTitle string `yaml:"siteSubTitle"`
	Copyright    string `yaml:"copyright"`

	ShowAuthorsOnHomePage       bool `yaml:"showAuthorsOnHomePage"`
	ShowFeaturedPostsOnHomePage bool `yaml:"showFeaturedPostsOnHomePage"`

	Labels Labels `yaml:"labels"`

	DefaultAuthorName string `yaml:"defaultAuthorName"`

	ShowCategoriesLinkOnFooter bool `yaml:"showCategoriesLinkOnFooter"`
	ShowTagsLinkOnFooter       bool `yaml:"showTagsLinkOnFooter"`
	ShowAuthorsLinkOnFooter    bool `yaml:"showAuthorsLinkOnFooter"`

	ShowSimilarPosts                bool `yaml:"showSimilarPosts"`
	ShowReadMoreLinkOnFeaturedPosts bool `yaml:"showReadMoreLinkOnFeaturedPosts"`
	ShowThumbnailOnFeaturedPosts    bool `yaml:"showThumbnailOnFeaturedPosts"`

	NumberOfLatestPostsOnHomePage int `yaml:"numberOfLatestPostsOnHomePage"`
	NumberOfBlogPostsPerPage      int `yaml:"numberOfBlogPostsPerPage"`

	// GTag is the Google Analytics tracking ID. Empty disables analytics.
	GTag string `yaml:"gTag"`
}

// AnalyticsEnabled reports whether a tracking snippet should be emitted.
func (c SiteConfig) AnalyticsEnabled() bool {
	return c.GTag != ""
}

// Labels holds the UI display strings, keyed by purpose.
type Labels struct {
	FeaturedPosts               string `yaml:"featuredPosts"`
	LatestPosts                 string `yaml:"latestPosts"`
	ViewAllPosts                string `yaml:"viewAllPosts"`
	BackToHome                  string `yaml:"backToHome"`
	YouMightAlsoLike            string `yaml:"youMightAlsoLike"`
	PostedIn                    string `yaml:"postedIn"`
	NoArticlesFound             string `yaml:"noArticlesFound"`
	AllCategories               string `yaml:"allCategories"`
	AllTags                     string `yaml:"allTags"`
	AllAuthors                  string `yaml:"allAuthors"`
	ExploreArticlesByTags       string `yaml:"exploreArticlesByTags"`
	ExploreArticlesByCategories string `yaml:"exploreArticlesByCategories"`
	ExploreArticlesByAuthors    string `yaml:"exploreArticlesByAuthors"`
	ReadMore                    string `yaml:"readMore"`
}

// labelFields maps each label key to its struct field. It is the single
// source for LabelKeys, Get and the file decoder.
var labelFields = []struct {
	key   string
	field func(*Labels) *string
}{
	{"featuredPosts", func(l *Labels) *string { return &l.FeaturedPosts }},
	{"latestPosts", func(l *Labels) *string { return &l.LatestPosts }},
	{"viewAllPosts", func(l *Labels) *string { return &l.ViewAllPosts }},
	{"backToHome", func(l *Labels) *string { return &l.BackToHome }},
	{"youMightAlsoLike", func(l *Labels) *string { return &l.YouMightAlsoLike }},
	{"postedIn", func(l *Labels) *string { return &l.PostedIn }},
	{"noArticlesFound", func(l *Labels) *string { return &l.NoArticlesFound }},
	{"allCategories", func(l *Labels) *string { return &l.AllCategories }},
	{"allTags", func(l *Labels) *string { return &l.AllTags }},
	{"allAuthors", func(l *Labels) *string { return &l.AllAuthors }},
	{"exploreArticlesByTags", func(l *Labels) *string { return &l.ExploreArticlesByTags }},
	{"exploreArticlesByCategories", func(l *Labels) *string { return &l.ExploreArticlesByCategories }},
	{"exploreArticlesByAuthors", func(l *Labels) *string { return &l.ExploreArticlesByAuthors }},
	{"readMore", func(l *Labels) *string { return &l.ReadMore }},
}

// LabelKeys returns the fixed set of label keys in declaration order.
func LabelKeys() []string {
	keys := make([]string, len(labelFields))
	for i, f := range labelFields {
		keys[i] = f.key
	}
	return keys
}

// Get returns the display string for key. The boolean is false for keys
// outside the known set.
func (l Labels) Get(key string) (string, bool) {
	for _, f := range labelFields {
		if f.key == key {
			return *f.field(&l), true
		}
	}
	return "", false
}

// Default returns the built-in configuration used when no file is given.
func Default() SiteConfig {
	return SiteConfig{
		SiteTitle:                   "The Coder Note",
		SiteSubTitle:                "Minimal musings on code, design, and life",
		Copyright:                   "© 2025 The Coder Note. All Rights Reserved.",
		ShowAuthorsOnHomePage:       false,
		ShowFeaturedPostsOnHomePage: true,
		Labels: Labels{
			FeaturedPosts:               "Featured Posts",
			LatestPosts:                 "Latest Posts",
			ViewAllPosts:                "View All Posts",
			BackToHome:                  "Back to Home",
			YouMightAlsoLike:            "You Might Also Like",
			PostedIn:                    "Posted in",
			NoArticlesFound:             "No articles found.",
			AllCategories:               "All Categories",
			AllTags:                     "All Tags",
			AllAuthors:                  "All Authors",
			ExploreArticlesByTags:       "Explore articles organized by topics",
			ExploreArticlesByCategories: "Explore articles organized by topics",
			ExploreArticlesByAuthors:    "Explore articles organized by authors",
			ReadMore:                    "Read More",
		},
		DefaultAuthorName:               "Hasin Hayder",
		ShowCategoriesLinkOnFooter:      true,
		ShowTagsLinkOnFooter:            true,
		ShowAuthorsLinkOnFooter:         true,
		ShowSimilarPosts:                true,
		ShowReadMoreLinkOnFeaturedPosts: true,
		ShowThumbnailOnFeaturedPosts:    true,
		NumberOfLatestPostsOnHomePage:   6,
		NumberOfBlogPostsPerPage:        8,
		GTag:                            "G-V5QHDKBFP",
	}
}
