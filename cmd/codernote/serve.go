package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/eringen/codernote"
	"github.com/eringen/codernote/logging"
	"github.com/eringen/codernote/siteconfig"
	"github.com/eringen/codernote/views"
)

func (c cli) runServe(ctx context.Context, args []string) error {
	logger := logging.New(c.stderr, c.env("LOG_LEVEL", "info"), c.env("LOG_FORMAT", "json"))

	site, err := siteconfig.Loader{
		Path:   c.configPath(args),
		Lookup: c.lookup,
		Logger: logging.WithComponent(logger, "siteconfig"),
	}.Load()
	if err != nil {
		return err
	}

	password, err := c.require("ADMIN_PASSWORD")
	if err != nil {
		return err
	}
	secret, err := c.require("ADMIN_SESSION_SECRET")
	if err != nil {
		return err
	}

	siteURL := strings.TrimSuffix(c.env("SITE_URL", "http://localhost:3000"), "/")
	app := codernote.New(codernote.Config{
		URL:           siteURL,
		Addr:          c.env("ADDR", ":3000"),
		DatabasePath:  c.env("DATABASE_PATH", "data/blog.db"),
		AdminPassword: password,
		SessionSecret: secret,
		CookieSecure:  strings.EqualFold(c.env("COOKIE_SECURE", ""), "true"),
	}, site, views.New(site, siteURL),
		codernote.WithStaticDir(c.env("STATIC_DIR", "public")),
		codernote.WithLogger(logging.WithComponent(logger, "http")),
	)
	return app.Run(ctx)
}

func (c cli) require(key string) (string, error) {
	v := c.env(key, "")
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}
