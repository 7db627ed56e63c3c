package codernote

// BlogPost is the core content type stored in SQLite and rendered by the theme.
type BlogPost struct {
	Title     string
	Date      string
	Tags      []string
	Category  string
	Author    string
	Summary   string
	Link      string
	Slug      string
	Content   string
	Thumbnail string // public URL of the featured thumbnail, may be empty
	Featured  bool
	Published bool
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// TaxonomyKind names one of the ways posts are grouped.
type TaxonomyKind string

const (
	KindCategories TaxonomyKind = "categories"
	KindTags       TaxonomyKind = "tags"
	KindAuthors    TaxonomyKind = "authors"
)

// TaxonomyKinds lists every kind in footer order.
var TaxonomyKinds = []TaxonomyKind{KindCategories, KindTags, KindAuthors}

// Path returns the index path of the taxonomy, e.g. "/tags/".
func (k TaxonomyKind) Path() string {
	return "/" + string(k) + "/"
}

// Term is one category, tag or author together with its post count.
type Term struct {
	Kind  TaxonomyKind
	Name  string
	Slug  string
	Count int
}

// Link returns the listing path of the term, e.g. "/tags/go/".
func (t Term) Link() string {
	return t.Kind.Path() + PathEscape(t.Slug) + "/"
}

// HomePage is the data the home view receives. Featured is empty when the
// featured section is disabled; Authors is nil when the author section is
// disabled.
type HomePage struct {
	Featured   []BlogPost
	Latest     []BlogPost
	Authors    []Term
	TotalPosts int
}
