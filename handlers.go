package codernote

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

const similarPostsLimit = 3

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func (a *App) notFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	page := HomePage{TotalPosts: len(posts)}
	if a.site.ShowFeaturedPostsOnHomePage {
		if page.Featured, err = a.Cache.Featured(); err != nil {
			return err
		}
	}
	if n := min(a.site.NumberOfLatestPostsOnHomePage, len(posts)); n > 0 {
		page.Latest = posts[:n:n]
	}
	if a.site.ShowAuthorsOnHomePage {
		if page.Authors, err = a.Cache.Terms(KindAuthors); err != nil {
			return err
		}
	}
	return Render(c, a.Views.Home(page))
}

func (a *App) handleBlog(c echo.Context) error {
	number := 1
	if raw := c.Param("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || strconv.Itoa(n) != raw {
			return a.notFound(c)
		}
		if n == 1 {
			return c.Redirect(http.StatusMovedPermanently, PageURL(1))
		}
		number = n
	}
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	page, err := Paginate(posts, number, a.site.NumberOfBlogPostsPerPage)
	if errors.Is(err, ErrPageOutOfRange) {
		return a.notFound(c)
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.BlogList(page))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.notFound(c)
		}
		return err
	}
	var similar []BlogPost
	if a.site.ShowSimilarPosts {
		posts, err := a.Cache.Posts()
		if err != nil {
			return err
		}
		similar = SimilarPosts(post, posts, similarPostsLimit)
	}
	return Render(c, a.Views.Post(post, similar))
}

func (a *App) handleTermIndex(kind TaxonomyKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		terms, err := a.Cache.Terms(kind)
		if err != nil {
			return err
		}
		return Render(c, a.Views.TermIndex(kind, terms))
	}
}

func (a *App) handleTermPosts(kind TaxonomyKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		term, posts, err := a.Cache.PostsByTerm(kind, c.Param("slug"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return a.notFound(c)
			}
			return err
		}
		return Render(c, a.Views.TermPosts(term, posts))
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleThemeCSS(c echo.Context) error {
	css, err := EmbeddedAssets.ReadFile("embedded/theme.css")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", css)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt pointing at the sitemap under Config.URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n", a.absURL("/sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.notFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
