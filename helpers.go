package codernote

import (
	"encoding/json"
	"net/url"
	"path"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/eringen/codernote/siteconfig"
)

// Slugify converts a title or term name to a URL slug. Letters and digits
// of any script are kept in lower case; accents on Latin letters are
// folded ("Café" -> "cafe"); everything else collapses to single dashes.
func Slugify(s string) string {
	s = norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	latin, dash := false, false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
			latin = unicode.Is(unicode.Latin, r)
		case unicode.IsMark(r):
			// Marks belong to the preceding letter; only Latin ones are dropped.
			if b.Len() > 0 && !latin && !dash {
				b.WriteRune(r)
			}
		default:
			dash = b.Len() > 0
		}
	}
	return norm.NFC.String(b.String())
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SimilarPosts returns up to limit posts related to current, ranked by the
// number of shared tags plus one for a shared category. Posts with nothing
// in common are left out; ties keep the newest-first input order.
func SimilarPosts(current BlogPost, posts []BlogPost, limit int) []BlogPost {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		if tag := normalizeTag(t); tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	category := Slugify(current.Category)

	type scored struct {
		post  BlogPost
		score int
	}
	var candidates []scored
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		score := 0
		for _, t := range p.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				score++
			}
		}
		if category != "" && Slugify(p.Category) == category {
			score++
		}
		if score > 0 {
			candidates = append(candidates, scored{p, score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	related := make([]BlogPost, len(candidates))
	for i, c := range candidates {
		related[i] = c.post
	}
	return related
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(site siteconfig.SiteConfig, siteURL string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.SiteTitle,
		"url":      BuildURL(siteURL),
	}
	if site.SiteSubTitle != "" {
		data["description"] = site.SiteSubTitle
	}
	if site.DefaultAuthorName != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.DefaultAuthorName,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post BlogPost, site siteconfig.SiteConfig, siteURL string) string {
	postURL := BuildURL(siteURL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Summary,
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.SiteTitle,
		},
	}
	author := post.Author
	if author == "" {
		author = site.DefaultAuthorName
	}
	data["author"] = map[string]string{
		"@type": "Person",
		"name":  author,
	}
	if post.Category != "" {
		data["articleSection"] = post.Category
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	if post.Thumbnail != "" {
		data["image"] = strings.TrimRight(siteURL, "/") + "/" + strings.TrimPrefix(post.Thumbnail, "/")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
