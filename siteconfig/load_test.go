package siteconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

const validYAML = `
siteTitle: "The Coder Note"
siteSubTitle: "Minimal musings on code, design, and life"
copyright: "© 2025 The Coder Note. All Rights Reserved."
showAuthorsOnHomePage: false
showFeaturedPostsOnHomePage: true
labels:
  featuredPosts: "Featured Posts"
  latestPosts: "Latest Posts"
  viewAllPosts: "View All Posts"
  backToHome: "Back to Home"
  youMightAlsoLike: "You Might Also Like"
  postedIn: "Posted in"
  noArticlesFound: "No articles found."
  allCategories: "All Categories"
  allTags: "All Tags"
  allAuthors: "All Authors"
  exploreArticlesByTags: "Explore articles organized by topics"
  exploreArticlesByCategories: "Explore articles organized by topics"
  exploreArticlesByAuthors: "Explore articles organized by authors"
  readMore: "Read More"
defaultAuthorName: "Hasin Hayder"
showCategoriesLinkOnFooter: true
showTagsLinkOnFooter: true
showAuthorsLinkOnFooter: true
showSimilarPosts: true
showReadMoreLinkOnFeaturedPosts: true
showThumbnailOnFeaturedPosts: true
numberOfLatestPostsOnHomePage: 6
numberOfBlogPostsPerPage: 8
gTag: "G-V5QHDKBFP"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// dropLine removes the first line containing needle.
func dropLine(doc, needle string) string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		if strings.Contains(l, needle) {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	return doc
}

func replaceLine(doc, needle, repl string) string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		if strings.Contains(l, needle) {
			lines[i] = repl
			break
		}
	}
	return strings.Join(lines, "\n")
}

func asConfigError(t *testing.T, err error) *ConfigError {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	return ce
}

func TestLoadFileMatchesDefault(t *testing.T) {
	path := writeConfig(t, validYAML)
	got, err := Loader{Path: path, Lookup: noEnv}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("loaded config differs from default (-want +got):\n%s", diff)
	}
}

func TestLoadWithoutPathUsesDefault(t *testing.T) {
	got, err := Loader{Lookup: noEnv}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	path := writeConfig(t, validYAML)
	l := Loader{Path: path, Lookup: noEnv}
	first, err := l.Load()
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := l.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two loads differ (-first +second):\n%s", diff)
	}
}

func TestLoadEveryLabelPresent(t *testing.T) {
	cfg, err := Loader{Path: writeConfig(t, validYAML)}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, key := range LabelKeys() {
		v, ok := cfg.Labels.Get(key)
		if !ok {
			t.Errorf("label %q not found", key)
		}
		if v == "" {
			t.Errorf("label %q is empty", key)
		}
	}
}

func TestLoadMissingLabelFails(t *testing.T) {
	for _, key := range LabelKeys() {
		t.Run(key, func(t *testing.T) {
			doc := dropLine(validYAML, "  "+key+":")
			_, err := Loader{Path: writeConfig(t, doc)}.Load()
			ce := asConfigError(t, err)
			if !ce.HasField("labels." + key) {
				t.Errorf("expected problem for labels.%s, got %v", key, ce.Problems)
			}
			if len(ce.Problems) != 1 {
				t.Errorf("expected exactly one problem, got %v", ce.Problems)
			}
		})
	}
}

func TestLoadMissingLabelsBlockReportsEveryKey(t *testing.T) {
	doc := validYAML
	doc = dropLine(doc, "labels:")
	for _, key := range LabelKeys() {
		doc = dropLine(doc, "  "+key+":")
	}
	_, err := Loader{Path: writeConfig(t, doc)}.Load()
	ce := asConfigError(t, err)
	if len(ce.Problems) != len(LabelKeys()) {
		t.Fatalf("got %d problems, want %d: %v", len(ce.Problems), len(LabelKeys()), ce.Problems)
	}
}

func TestLoadMissingRequiredFields(t *testing.T) {
	fields := []string{
		"siteTitle",
		"copyright",
		"showAuthorsOnHomePage",
		"showFeaturedPostsOnHomePage",
		"defaultAuthorName",
		"showCategoriesLinkOnFooter",
		"showTagsLinkOnFooter",
		"showAuthorsLinkOnFooter",
		"showSimilarPosts",
		"showReadMoreLinkOnFeaturedPosts",
		"showThumbnailOnFeaturedPosts",
		"numberOfLatestPostsOnHomePage",
		"numberOfBlogPostsPerPage",
	}
	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			doc := dropLine(validYAML, field+":")
			_, err := Loader{Path: writeConfig(t, doc)}.Load()
			ce := asConfigError(t, err)
			if !ce.HasField(field) {
				t.Errorf("expected problem for %s, got %v", field, ce.Problems)
			}
		})
	}
}

func TestLoadOptionalFields(t *testing.T) {
	doc := dropLine(validYAML, "gTag:")
	doc = dropLine(doc, "siteSubTitle:")
	cfg, err := Loader{Path: writeConfig(t, doc)}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GTag != "" {
		t.Errorf("GTag = %q, want empty", cfg.GTag)
	}
	if cfg.AnalyticsEnabled() {
		t.Error("analytics should be disabled without gTag")
	}
	if cfg.SiteSubTitle != "" {
		t.Errorf("SiteSubTitle = %q, want empty", cfg.SiteSubTitle)
	}
}

func TestLoadRangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		field   string
		wantErr bool
	}{
		{"zero per page", "numberOfBlogPostsPerPage: 0", "numberOfBlogPostsPerPage", true},
		{"negative per page", "numberOfBlogPostsPerPage: -3", "numberOfBlogPostsPerPage", true},
		{"one per page", "numberOfBlogPostsPerPage: 1", "numberOfBlogPostsPerPage", false},
		{"negative latest", "numberOfLatestPostsOnHomePage: -1", "numberOfLatestPostsOnHomePage", true},
		{"zero latest", "numberOfLatestPostsOnHomePage: 0", "numberOfLatestPostsOnHomePage", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := replaceLine(validYAML, tt.field+":", tt.line)
			cfg, err := Loader{Path: writeConfig(t, doc)}.Load()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Load: %v", err)
				}
				if cfg.NumberOfBlogPostsPerPage < 1 || cfg.NumberOfLatestPostsOnHomePage < 0 {
					t.Errorf("loaded config violates ranges: %+v", cfg)
				}
				return
			}
			ce := asConfigError(t, err)
			if !ce.HasField(tt.field) {
				t.Errorf("expected problem for %s, got %v", tt.field, ce.Problems)
			}
		})
	}
}

func TestLoadEmptyRequiredString(t *testing.T) {
	doc := replaceLine(validYAML, "siteTitle:", `siteTitle: "  "`)
	doc = replaceLine(doc, "  readMore:", `  readMore: ""`)
	_, err := Loader{Path: writeConfig(t, doc)}.Load()
	ce := asConfigError(t, err)
	if !ce.HasField("siteTitle") || !ce.HasField("labels.readMore") {
		t.Errorf("expected siteTitle and labels.readMore problems, got %v", ce.Problems)
	}
}

func TestLoadUnknownKeys(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		_, err := Loader{Path: writeConfig(t, validYAML+"siteTitel: typo\n")}.Load()
		ce := asConfigError(t, err)
		if !strings.Contains(ce.Error(), "siteTitel") {
			t.Errorf("error should name the unknown key: %v", ce)
		}
	})
	t.Run("label", func(t *testing.T) {
		doc := strings.Replace(validYAML, "  readMore:", "  readMroe: \"x\"\n  readMore:", 1)
		_, err := Loader{Path: writeConfig(t, doc)}.Load()
		ce := asConfigError(t, err)
		if !ce.HasField("labels.readMroe") {
			t.Errorf("expected labels.readMroe problem, got %v", ce.Problems)
		}
	})
}

func TestLoadWrongType(t *testing.T) {
	doc := replaceLine(validYAML, "numberOfBlogPostsPerPage:", "numberOfBlogPostsPerPage: eight")
	_, err := Loader{Path: writeConfig(t, doc)}.Load()
	ce := asConfigError(t, err)
	if ce.Unwrap() == nil {
		t.Error("expected wrapped yaml error")
	}
}

func TestLoadLegacyFeaturedKey(t *testing.T) {
	doc := replaceLine(validYAML, "showFeaturedPostsOnHomePage:", "showFeaturrdPostsOnHomePage: false")
	cfg, err := Loader{Path: writeConfig(t, doc)}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ShowFeaturedPostsOnHomePage {
		t.Error("legacy key value was not applied")
	}

	both := validYAML + "showFeaturrdPostsOnHomePage: true\n"
	_, err = Loader{Path: writeConfig(t, both)}.Load()
	ce := asConfigError(t, err)
	if !ce.HasField("showFeaturedPostsOnHomePage") {
		t.Errorf("expected conflict problem, got %v", ce.Problems)
	}
}

func TestLoadLegacyFeaturedKeyWarns(t *testing.T) {
	var buf bytes.Buffer
	doc := replaceLine(validYAML, "showFeaturedPostsOnHomePage:", "showFeaturrdPostsOnHomePage: true")
	if _, err := (Loader{Path: writeConfig(t, doc), Logger: zerolog.New(&buf)}).Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "deprecated config key") || !strings.Contains(out, "showFeaturrdPostsOnHomePage") {
		t.Errorf("no deprecation warning logged: %q", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Loader{Path: filepath.Join(t.TempDir(), "nope.yaml")}.Load()
	ce := asConfigError(t, err)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", ce.Err)
	}
}

func TestLoadRejectsMultipleDocuments(t *testing.T) {
	_, err := Loader{Path: writeConfig(t, validYAML+"---\nsiteTitle: again\n")}.Load()
	asConfigError(t, err)
}

func TestLoadEmptyDocument(t *testing.T) {
	_, err := Loader{Path: writeConfig(t, "")}.Load()
	ce := asConfigError(t, err)
	if !ce.HasField("siteTitle") || !ce.HasField("labels.featuredPosts") {
		t.Errorf("expected every required field reported, got %v", ce.Problems)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := envMap(map[string]string{
		"SITE_TITLE":          "Override",
		"SITE_GTAG":           "",
		"SITE_POSTS_PER_PAGE": "12",
		"SITE_SHOW_AUTHORS":   "true",
		"SITE_COPYRIGHT":      "",
	})
	cfg, err := Loader{Path: writeConfig(t, validYAML), Lookup: env}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SiteTitle != "Override" {
		t.Errorf("SiteTitle = %q", cfg.SiteTitle)
	}
	if cfg.GTag != "" {
		t.Errorf("GTag = %q, want cleared", cfg.GTag)
	}
	if cfg.NumberOfBlogPostsPerPage != 12 {
		t.Errorf("NumberOfBlogPostsPerPage = %d", cfg.NumberOfBlogPostsPerPage)
	}
	if !cfg.ShowAuthorsOnHomePage {
		t.Error("ShowAuthorsOnHomePage should be true")
	}
	if cfg.Copyright != Default().Copyright {
		t.Errorf("empty SITE_COPYRIGHT should be ignored, got %q", cfg.Copyright)
	}
}

func TestLoadWithEnv(t *testing.T) {
	path := writeConfig(t, validYAML)
	cfg, err := LoadWithEnv(path, envMap(map[string]string{"SITE_LATEST_POSTS": "0"}))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.NumberOfLatestPostsOnHomePage != 0 {
		t.Errorf("NumberOfLatestPostsOnHomePage = %d, want 0", cfg.NumberOfLatestPostsOnHomePage)
	}

	_, err = LoadWithEnv(path, envMap(map[string]string{"SITE_POSTS_PER_PAGE": "0"}))
	if ce := asConfigError(t, err); !ce.HasField("numberOfBlogPostsPerPage") {
		t.Errorf("expected numberOfBlogPostsPerPage problem, got %v", ce.Problems)
	}
}

func TestLoadEnvOverrideErrors(t *testing.T) {
	tests := []struct {
		env   map[string]string
		field string
	}{
		{map[string]string{"SITE_POSTS_PER_PAGE": "many"}, "numberOfBlogPostsPerPage"},
		{map[string]string{"SITE_POSTS_PER_PAGE": "0"}, "numberOfBlogPostsPerPage"},
		{map[string]string{"SITE_SHOW_SIMILAR": "maybe"}, "showSimilarPosts"},
	}
	for _, tt := range tests {
		_, err := Loader{Lookup: envMap(tt.env)}.Load()
		ce := asConfigError(t, err)
		if !ce.HasField(tt.field) {
			t.Errorf("env %v: expected problem for %s, got %v", tt.env, tt.field, ce.Problems)
		}
	}
}

func TestParseReportsPath(t *testing.T) {
	_, err := Loader{Path: "site.yaml"}.Parse([]byte("siteTitle: x\n"))
	ce := asConfigError(t, err)
	if ce.Path != "site.yaml" {
		t.Errorf("Path = %q", ce.Path)
	}
	if !strings.HasPrefix(ce.Error(), `invalid site config "site.yaml": `) {
		t.Errorf("unexpected message: %s", ce.Error())
	}
}
