package codernote

import (
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested post or term does not exist.
var ErrNotFound = sql.ErrNoRows

// PostCache is an in-memory cache of published blog posts and their
// taxonomy terms with TTL.
type PostCache struct {
	mu            sync.RWMutex
	snap          *snapshot
	fetched       time.Time
	ttl           time.Duration
	store         *Store
	defaultAuthor string
}

// snapshot is rebuilt as a whole on every reload and never modified
// afterwards, so readers may hold on to it without the lock.
type snapshot struct {
	posts []BlogPost
	terms map[TaxonomyKind][]Term
}

// NewPostCache creates a PostCache backed by the given Store. Posts without
// an author are attributed to defaultAuthor.
func NewPostCache(s *Store, ttl time.Duration, defaultAuthor string) *PostCache {
	return &PostCache{store: s, ttl: ttl, defaultAuthor: defaultAuthor}
}

func (c *PostCache) valid() bool {
	return c.snap != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// ensureLoaded returns the current snapshot, reloading it if stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() (*snapshot, error) {
	c.mu.RLock()
	if c.valid() {
		snap := c.snap
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.snap, nil
	}
	posts, err := c.store.ListPosts()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Author == "" {
			posts[i].Author = c.defaultAuthor
		}
	}
	c.snap = &snapshot{posts: posts, terms: buildTerms(posts)}
	c.fetched = time.Now()
	return c.snap, nil
}

// Posts returns every published post, newest first.
func (c *PostCache) Posts() ([]BlogPost, error) {
	snap, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return snap.posts, nil
}

// Featured returns the published posts marked as featured, newest first.
func (c *PostCache) Featured() ([]BlogPost, error) {
	snap, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var featured []BlogPost
	for _, p := range snap.posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// GetPost returns a single published post by slug from the cache.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	snap, err := c.ensureLoaded()
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range snap.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Terms returns every term of kind sorted by name.
func (c *PostCache) Terms(kind TaxonomyKind) ([]Term, error) {
	snap, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	return snap.terms[kind], nil
}

// PostsByTerm returns the term of kind with the given slug and its posts.
func (c *PostCache) PostsByTerm(kind TaxonomyKind, slug string) (Term, []BlogPost, error) {
	snap, err := c.ensureLoaded()
	if err != nil {
		return Term{}, nil, err
	}
	var term Term
	found := false
	for _, t := range snap.terms[kind] {
		if t.Slug == slug {
			term, found = t, true
			break
		}
	}
	if !found {
		return Term{}, nil, ErrNotFound
	}
	var posts []BlogPost
	for _, p := range snap.posts {
		for _, name := range termNames(kind, p) {
			if Slugify(name) == slug {
				posts = append(posts, p)
				break
			}
		}
	}
	return term, posts, nil
}

// termNames returns the names p is filed under for kind.
func termNames(kind TaxonomyKind, p BlogPost) []string {
	switch kind {
	case KindCategories:
		if p.Category == "" {
			return nil
		}
		return []string{p.Category}
	case KindTags:
		return p.Tags
	case KindAuthors:
		if p.Author == "" {
			return nil
		}
		return []string{p.Author}
	}
	return nil
}

func buildTerms(posts []BlogPost) map[TaxonomyKind][]Term {
	out := make(map[TaxonomyKind][]Term, len(TaxonomyKinds))
	for _, kind := range TaxonomyKinds {
		bySlug := make(map[string]*Term)
		for _, p := range posts {
			seen := make(map[string]struct{})
			for _, name := range termNames(kind, p) {
				name = strings.TrimSpace(name)
				slug := Slugify(name)
				if slug == "" {
					continue
				}
				if _, dup := seen[slug]; dup {
					continue
				}
				seen[slug] = struct{}{}
				t, ok := bySlug[slug]
				if !ok {
					t = &Term{Kind: kind, Name: name, Slug: slug}
					bySlug[slug] = t
				}
				t.Count++
			}
		}
		terms := make([]Term, 0, len(bySlug))
		for _, t := range bySlug {
			terms = append(terms, *t)
		}
		sort.Slice(terms, func(i, j int) bool {
			return strings.ToLower(terms[i].Name) < strings.ToLower(terms[j].Name)
		})
		out[kind] = terms
	}
	return out
}
