package codernote

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminNew(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, a.Views.AdminForm(BlogPost{
		Date:      time.Now().Format("2006-01-02"),
		Author:    a.site.DefaultAuthorName,
		Published: true,
	}, CsrfToken(c)))
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Store.GetPostAny(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.notFound(c)
		}
		return err
	}
	return Render(c, a.Views.AdminForm(post, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		a.Logger.Warn().Str("remote_ip", c.RealIP()).Msg("login rate limited")
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.Logger.Warn().Str("remote_ip", c.RealIP()).Msg("failed admin login")
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func adminRedirect(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return adminRedirect(c, "Slug is required. Add a title or slug.")
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return adminRedirect(c, "Invalid date format. Use YYYY-MM-DD.")
	}
	author := strings.TrimSpace(c.FormValue("author"))
	if author == "" {
		author = a.site.DefaultAuthorName
	}
	post := BlogPost{
		Slug:      slug,
		Title:     title,
		Date:      date,
		Tags:      FilterEmpty(strings.Split(c.FormValue("tags"), ",")),
		Category:  strings.TrimSpace(c.FormValue("category")),
		Author:    author,
		Summary:   c.FormValue("summary"),
		Content:   c.FormValue("content"),
		Thumbnail: strings.TrimSpace(c.FormValue("thumbnail_url")),
		Featured:  c.FormValue("featured") != "",
		Published: c.FormValue("published") != "",
	}

	if c.FormValue("remove_thumbnail") != "" {
		a.removeThumbnail(post.Thumbnail)
		post.Thumbnail = ""
	}
	if file, err := c.FormFile("thumbnail"); err == nil {
		if file.Size > maxUploadSize {
			return adminRedirect(c, "Thumbnail too large (max 10MB).")
		}
		src, err := file.Open()
		if err != nil {
			return err
		}
		defer src.Close()
		thumb, err := a.saveThumbnail(slug, src)
		if err != nil {
			return adminRedirect(c, "Invalid thumbnail: "+err.Error())
		}
		post.Thumbnail = thumb
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}

	if err := a.Store.SavePost(post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info().Str("slug", slug).Bool("published", post.Published).Msg("post saved")
	return adminRedirect(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	slug := c.Param("slug")
	if post, err := a.Store.GetPostAny(slug); err == nil {
		a.removeThumbnail(post.Thumbnail)
	}
	if err := a.Store.DeletePost(slug); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info().Str("slug", slug).Msg("post deleted")
	return adminRedirect(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListAllPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(posts, msg, CsrfToken(c)))
}
