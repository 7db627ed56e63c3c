package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/codernote"
	"github.com/eringen/codernote/siteconfig"
)

const testURL = "https://blog.example.com"

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func samplePosts() []codernote.BlogPost {
	return []codernote.BlogPost{
		{
			Slug: "first", Title: "First Post", Date: "2025-03-01", Link: "/blog/first/",
			Tags: []string{"go"}, Category: "Engineering", Author: "Ada Lovelace",
			Summary: "Summary one", Featured: true, Thumbnail: "/public/uploads/first.jpg", Published: true,
		},
		{
			Slug: "second", Title: "Second Post", Date: "2025-02-01", Link: "/blog/second/",
			Tags: []string{"design"}, Author: "Hasin Hayder", Summary: "Summary two", Published: true,
		},
	}
}

func TestGTagEmptyRendersNothing(t *testing.T) {
	if got := renderString(t, GTag("")); got != "" {
		t.Errorf("GTag(\"\") = %q, want empty", got)
	}
}

func TestGTagSnippet(t *testing.T) {
	got := renderString(t, GTag("G-V5QHDKBFP"))
	for _, want := range []string{
		`src="https://www.googletagmanager.com/gtag/js?id=G-V5QHDKBFP"`,
		`gtag('config',"G-V5QHDKBFP")`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("snippet missing %q:\n%s", want, got)
		}
	}
}

func TestGTagEscapesID(t *testing.T) {
	got := renderString(t, GTag(`</script><script>alert(1)`))
	if strings.Contains(got, "<script>alert") {
		t.Errorf("tracking ID not escaped:\n%s", got)
	}
}

func TestLayoutAnalyticsToggle(t *testing.T) {
	site := siteconfig.Default()
	on := renderString(t, Theme{Site: site, SiteURL: testURL}.NotFound())
	if !strings.Contains(on, "googletagmanager.com") {
		t.Error("expected analytics snippet when gTag is set")
	}

	site.GTag = ""
	off := renderString(t, Theme{Site: site, SiteURL: testURL}.NotFound())
	if strings.Contains(off, "googletagmanager") || strings.Contains(off, "gtag(") {
		t.Error("analytics snippet emitted with empty gTag")
	}
}

func TestHomeOmitsAuthorSection(t *testing.T) {
	site := siteconfig.Default()
	site.ShowAuthorsOnHomePage = false
	page := codernote.HomePage{
		Latest:     samplePosts(),
		Authors:    []codernote.Term{{Kind: codernote.KindAuthors, Name: "Ada Lovelace", Slug: "ada-lovelace", Count: 1}},
		TotalPosts: 2,
	}
	got := renderString(t, Theme{Site: site, SiteURL: testURL}.Home(page))
	if strings.Contains(got, `class="authors"`) {
		t.Error("author section rendered although disabled")
	}

	site.ShowAuthorsOnHomePage = true
	got = renderString(t, Theme{Site: site, SiteURL: testURL}.Home(page))
	if !strings.Contains(got, `class="authors"`) || !strings.Contains(got, "/authors/ada-lovelace/") {
		t.Error("author section missing although enabled")
	}
}

func TestHomeFeaturedSection(t *testing.T) {
	posts := samplePosts()
	page := codernote.HomePage{Featured: posts[:1], Latest: posts, TotalPosts: 2}

	tests := []struct {
		name                      string
		featured, thumb, readMore bool
		wantSection, wantThumb    bool
		wantReadMore              bool
	}{
		{"all on", true, true, true, true, true, true},
		{"section off", false, true, true, false, false, false},
		{"no thumbnails", true, false, true, true, false, true},
		{"no read more", true, true, false, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := siteconfig.Default()
			site.ShowFeaturedPostsOnHomePage = tt.featured
			site.ShowThumbnailOnFeaturedPosts = tt.thumb
			site.ShowReadMoreLinkOnFeaturedPosts = tt.readMore
			got := renderString(t, Theme{Site: site, SiteURL: testURL}.Home(page))

			if has := strings.Contains(got, `class="featured"`); has != tt.wantSection {
				t.Errorf("featured section = %v, want %v", has, tt.wantSection)
			}
			if has := strings.Contains(got, `src="/public/uploads/first.jpg"`); has != tt.wantThumb {
				t.Errorf("thumbnail = %v, want %v", has, tt.wantThumb)
			}
			if has := strings.Contains(got, `class="read-more"`); has != tt.wantReadMore {
				t.Errorf("read more = %v, want %v", has, tt.wantReadMore)
			}
		})
	}
}

func TestHomeLabels(t *testing.T) {
	site := siteconfig.Default()
	site.Labels.LatestPosts = "Fresh Notes"
	site.Labels.ViewAllPosts = "Everything"
	got := renderString(t, Theme{Site: site, SiteURL: testURL}.Home(codernote.HomePage{
		Latest: samplePosts(), TotalPosts: 2,
	}))
	for _, want := range []string{"Fresh Notes", "Everything", `href="/blog/"`, "The Coder Note", "Minimal musings"} {
		if !strings.Contains(got, want) {
			t.Errorf("home missing %q", want)
		}
	}
}

func TestHomeEmpty(t *testing.T) {
	got := renderString(t, Theme{Site: siteconfig.Default(), SiteURL: testURL}.Home(codernote.HomePage{}))
	if !strings.Contains(got, "No articles found.") {
		t.Error("expected empty-state label")
	}
	if strings.Contains(got, "View All Posts") {
		t.Error("view-all link shown without posts")
	}
}

func TestHomeWithoutLatestSection(t *testing.T) {
	site := siteconfig.Default()
	site.NumberOfLatestPostsOnHomePage = 0
	got := renderString(t, Theme{Site: site, SiteURL: testURL}.Home(codernote.HomePage{TotalPosts: 2}))
	if strings.Contains(got, `class="latest"`) {
		t.Error("latest section rendered with a count of 0")
	}
}

func TestFooterLinks(t *testing.T) {
	site := siteconfig.Default()
	site.ShowTagsLinkOnFooter = false
	got := renderString(t, Theme{Site: site, SiteURL: testURL}.NotFound())
	if !strings.Contains(got, `href="/categories/"`) || !strings.Contains(got, `href="/authors/"`) {
		t.Error("enabled footer links missing")
	}
	if strings.Contains(got, `href="/tags/"`) {
		t.Error("tags link shown although disabled")
	}
	if !strings.Contains(got, "© 2025 The Coder Note. All Rights Reserved.") {
		t.Error("copyright missing")
	}

	site.ShowCategoriesLinkOnFooter = false
	site.ShowAuthorsLinkOnFooter = false
	got = renderString(t, Theme{Site: site, SiteURL: testURL}.NotFound())
	if strings.Contains(got, "<nav>") {
		t.Error("empty footer nav rendered")
	}
}

func TestHeaderSubtitle(t *testing.T) {
	site := siteconfig.Default()
	site.SiteSubTitle = ""
	got := renderString(t, Theme{Site: site, SiteURL: testURL}.NotFound())
	if strings.Contains(got, "site-subtitle") {
		t.Error("empty subtitle rendered")
	}
}

func TestPostSimilarToggle(t *testing.T) {
	posts := samplePosts()
	site := siteconfig.Default()
	got := renderString(t, Theme{Site: site, SiteURL: testURL}.Post(posts[0], posts[1:]))
	for _, want := range []string{"You Might Also Like", "Second Post", "Posted in", `href="/categories/engineering/"`, "Back to Home", `"@type":"BlogPosting"`} {
		if !strings.Contains(got, want) {
			t.Errorf("post page missing %q", want)
		}
	}

	site.ShowSimilarPosts = false
	got = renderString(t, Theme{Site: site, SiteURL: testURL}.Post(posts[0], posts[1:]))
	if strings.Contains(got, "You Might Also Like") {
		t.Error("similar posts shown although disabled")
	}
}

func TestPostDefaultAuthor(t *testing.T) {
	post := samplePosts()[1]
	post.Author = ""
	got := renderString(t, Theme{Site: siteconfig.Default(), SiteURL: testURL}.Post(post, nil))
	if !strings.Contains(got, `href="/authors/hasin-hayder/"`) {
		t.Error("post without author should link the default author")
	}
}

func TestBlogListPagination(t *testing.T) {
	posts := samplePosts()
	page, err := codernote.Paginate(posts, 2, 1)
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	got := renderString(t, Theme{Site: siteconfig.Default(), SiteURL: testURL}.BlogList(page))
	if !strings.Contains(got, `href="/blog/"`) || !strings.Contains(got, `rel="prev"`) {
		t.Error("prev link to page 1 missing")
	}
	if strings.Contains(got, `rel="next"`) {
		t.Error("next link on last page")
	}
	if !strings.Contains(got, "2 / 2") {
		t.Error("page indicator missing")
	}
}

func TestTermIndexLabels(t *testing.T) {
	theme := Theme{Site: siteconfig.Default(), SiteURL: testURL}
	tests := []struct {
		kind  codernote.TaxonomyKind
		title string
		desc  string
	}{
		{codernote.KindCategories, "All Categories", "Explore articles organized by topics"},
		{codernote.KindTags, "All Tags", "Explore articles organized by topics"},
		{codernote.KindAuthors, "All Authors", "Explore articles organized by authors"},
	}
	for _, tt := range tests {
		got := renderString(t, theme.TermIndex(tt.kind, nil))
		if !strings.Contains(got, "<h2>"+tt.title+"</h2>") {
			t.Errorf("%s: title %q missing", tt.kind, tt.title)
		}
		if !strings.Contains(got, tt.desc) {
			t.Errorf("%s: description missing", tt.kind)
		}
		if !strings.Contains(got, "No articles found.") {
			t.Errorf("%s: empty state missing", tt.kind)
		}
	}
}

func TestEscapesContent(t *testing.T) {
	post := samplePosts()[0]
	post.Title = `<img src=x onerror=alert(1)>`
	got := renderString(t, Theme{Site: siteconfig.Default(), SiteURL: testURL}.Post(post, nil))
	if strings.Contains(got, "<img src=x") {
		t.Error("title not escaped")
	}
}
