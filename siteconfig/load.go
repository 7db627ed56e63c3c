package siteconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// legacyFeaturedKey is the misspelled key older config files used.
const legacyFeaturedKey = "showFeaturrdPostsOnHomePage"

// Loader builds a SiteConfig from the built-in default or a YAML file, then
// applies environment overrides and validates the result.
type Loader struct {
	// Path of the YAML file. Empty means start from Default().
	Path string
	// Lookup resolves environment overrides. Nil disables them.
	Lookup func(key string) (string, bool)
	// Logger receives deprecation warnings and the load summary.
	Logger zerolog.Logger
}

// Load reads the configuration at path (or the default when path is empty)
// with overrides from the process environment.
func Load(path string) (SiteConfig, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with overrides resolved through lookup instead of
// the process environment.
func LoadWithEnv(path string, lookup func(key string) (string, bool)) (SiteConfig, error) {
	return Loader{Path: path, Lookup: lookup}.Load()
}

// Load runs the full pipeline: source, environment overrides, validation.
// Any failure is a *ConfigError.
func (l Loader) Load() (SiteConfig, error) {
	cfg := Default()
	source := "default"
	if l.Path != "" {
		// #nosec G304 -- the config path is chosen by the operator
		data, err := os.ReadFile(filepath.Clean(l.Path))
		if err != nil {
			return SiteConfig{}, &ConfigError{Path: l.Path, Err: err}
		}
		cfg, err = l.decode(data)
		if err != nil {
			return SiteConfig{}, err
		}
		source = "file"
	}
	if err := l.applyEnv(&cfg); err != nil {
		return SiteConfig{}, err
	}
	if err := validate(cfg, l.Path); err != nil {
		return SiteConfig{}, err
	}
	l.Logger.Debug().
		Str("source", source).
		Str("path", l.Path).
		Str("site_title", cfg.SiteTitle).
		Int("posts_per_page", cfg.NumberOfBlogPostsPerPage).
		Bool("analytics", cfg.AnalyticsEnabled()).
		Msg("site config loaded")
	return cfg, nil
}

// Parse decodes and validates a YAML document without environment
// overrides.
func (l Loader) Parse(data []byte) (SiteConfig, error) {
	cfg, err := l.decode(data)
	if err != nil {
		return SiteConfig{}, err
	}
	if err := validate(cfg, l.Path); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// fileConfig mirrors SiteConfig with pointers so that absent keys can be
// told apart from zero values.
type fileConfig struct {
	SiteTitle                       *string           `yaml:"siteTitle"`
	SiteSubTitle                    *string           `yaml:"siteSubTitle"`
	Copyright                       *string           `yaml:"copyright"`
	ShowAuthorsOnHomePage           *bool             `yaml:"showAuthorsOnHomePage"`
	ShowFeaturedPostsOnHomePage     *bool             `yaml:"showFeaturedPostsOnHomePage"`
	LegacyShowFeaturedPosts         *bool             `yaml:"showFeaturrdPostsOnHomePage"`
	Labels                          map[string]string `yaml:"labels"`
	DefaultAuthorName               *string           `yaml:"defaultAuthorName"`
	ShowCategoriesLinkOnFooter      *bool             `yaml:"showCategoriesLinkOnFooter"`
	ShowTagsLinkOnFooter            *bool             `yaml:"showTagsLinkOnFooter"`
	ShowAuthorsLinkOnFooter         *bool             `yaml:"showAuthorsLinkOnFooter"`
	ShowSimilarPosts                *bool             `yaml:"showSimilarPosts"`
	ShowReadMoreLinkOnFeaturedPosts *bool             `yaml:"showReadMoreLinkOnFeaturedPosts"`
	ShowThumbnailOnFeaturedPosts    *bool             `yaml:"showThumbnailOnFeaturedPosts"`
	NumberOfLatestPostsOnHomePage   *int              `yaml:"numberOfLatestPostsOnHomePage"`
	NumberOfBlogPostsPerPage        *int              `yaml:"numberOfBlogPostsPerPage"`
	GTag                            *string           `yaml:"gTag"`
}

func (l Loader) decode(data []byte) (SiteConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			ce := &ConfigError{Path: l.Path, Err: err}
			for _, msg := range te.Errors {
				ce.Problems = append(ce.Problems, FieldError{Message: msg})
			}
			return SiteConfig{}, ce
		}
		return SiteConfig{}, &ConfigError{Path: l.Path, Err: fmt.Errorf("parse yaml: %w", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return SiteConfig{}, &ConfigError{Path: l.Path, Problems: []FieldError{
			{Message: "file contains multiple documents or trailing content"},
		}}
	}
	return l.fromFile(fc)
}

func (l Loader) fromFile(fc fileConfig) (SiteConfig, error) {
	var (
		c   checker
		cfg SiteConfig
	)
	required(&c, "siteTitle", fc.SiteTitle, &cfg.SiteTitle)
	optional(fc.SiteSubTitle, &cfg.SiteSubTitle)
	required(&c, "copyright", fc.Copyright, &cfg.Copyright)
	required(&c, "showAuthorsOnHomePage", fc.ShowAuthorsOnHomePage, &cfg.ShowAuthorsOnHomePage)

	switch {
	case fc.ShowFeaturedPostsOnHomePage != nil && fc.LegacyShowFeaturedPosts != nil:
		c.add("showFeaturedPostsOnHomePage", "conflicts with legacy key "+legacyFeaturedKey+"; remove one")
	case fc.LegacyShowFeaturedPosts != nil:
		l.Logger.Warn().
			Str("path", l.Path).
			Str("key", legacyFeaturedKey).
			Str("replacement", "showFeaturedPostsOnHomePage").
			Msg("deprecated config key")
		cfg.ShowFeaturedPostsOnHomePage = *fc.LegacyShowFeaturedPosts
	default:
		required(&c, "showFeaturedPostsOnHomePage", fc.ShowFeaturedPostsOnHomePage, &cfg.ShowFeaturedPostsOnHomePage)
	}

	known := make(map[string]struct{}, len(labelFields))
	for _, f := range labelFields {
		known[f.key] = struct{}{}
		v, ok := fc.Labels[f.key]
		if !ok {
			c.add("labels."+f.key, "is required")
			continue
		}
		*f.field(&cfg.Labels) = v
	}
	for key := range fc.Labels {
		if _, ok := known[key]; !ok {
			c.add("labels."+key, "unknown label key")
		}
	}

	required(&c, "defaultAuthorName", fc.DefaultAuthorName, &cfg.DefaultAuthorName)
	required(&c, "showCategoriesLinkOnFooter", fc.ShowCategoriesLinkOnFooter, &cfg.ShowCategoriesLinkOnFooter)
	required(&c, "showTagsLinkOnFooter", fc.ShowTagsLinkOnFooter, &cfg.ShowTagsLinkOnFooter)
	required(&c, "showAuthorsLinkOnFooter", fc.ShowAuthorsLinkOnFooter, &cfg.ShowAuthorsLinkOnFooter)
	required(&c, "showSimilarPosts", fc.ShowSimilarPosts, &cfg.ShowSimilarPosts)
	required(&c, "showReadMoreLinkOnFeaturedPosts", fc.ShowReadMoreLinkOnFeaturedPosts, &cfg.ShowReadMoreLinkOnFeaturedPosts)
	required(&c, "showThumbnailOnFeaturedPosts", fc.ShowThumbnailOnFeaturedPosts, &cfg.ShowThumbnailOnFeaturedPosts)
	required(&c, "numberOfLatestPostsOnHomePage", fc.NumberOfLatestPostsOnHomePage, &cfg.NumberOfLatestPostsOnHomePage)
	required(&c, "numberOfBlogPostsPerPage", fc.NumberOfBlogPostsPerPage, &cfg.NumberOfBlogPostsPerPage)
	optional(fc.GTag, &cfg.GTag)

	if err := c.err(l.Path); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

func required[T any](c *checker, field string, v *T, dst *T) {
	if v == nil {
		c.add(field, "is required")
		return
	}
	*dst = *v
}

func optional[T any](v *T, dst *T) {
	if v != nil {
		*dst = *v
	}
}
