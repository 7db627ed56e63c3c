package codernote

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrPageOutOfRange is returned by Paginate for page numbers past either end.
var ErrPageOutOfRange = errors.New("codernote: page out of range")

// Page is one slice of the paginated blog listing.
type Page struct {
	Posts      []BlogPost
	Number     int // 1-based
	TotalPages int
	TotalPosts int
	PerPage    int
}

// HasPrev reports whether a page precedes p.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a page follows p.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate returns page number (1-based) of posts, perPage posts per page.
// Every page but the last holds exactly perPage posts; the last holds the
// remainder. An empty listing still has one (empty) page.
func Paginate(posts []BlogPost, number, perPage int) (Page, error) {
	if perPage < 1 {
		return Page{}, fmt.Errorf("codernote: invalid page size %d", perPage)
	}
	total := len(posts) / perPage
	if len(posts)%perPage != 0 || total == 0 {
		total++
	}
	if number < 1 || number > total {
		return Page{}, ErrPageOutOfRange
	}
	start := (number - 1) * perPage
	end := min(start+perPage, len(posts))
	return Page{
		Posts:      posts[start:end:end],
		Number:     number,
		TotalPages: total,
		TotalPosts: len(posts),
		PerPage:    perPage,
	}, nil
}

// PageURL returns the path of blog listing page n. Page 1 is "/blog/".
func PageURL(n int) string {
	if n <= 1 {
		return "/blog/"
	}
	return "/blog/page/" + strconv.Itoa(n) + "/"
}
