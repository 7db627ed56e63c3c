package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via ldflags.
var version = "dev"

// cli carries the process surroundings so commands can run in tests.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	lookup func(key string) (string, bool)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c := cli{stdout: os.Stdout, stderr: os.Stderr, lookup: os.LookupEnv}
	code := c.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func (c cli) run(ctx context.Context, args []string) int {
	if len(args) < 1 {
		c.printUsage(c.stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "serve":
		err = c.runServe(ctx, args[1:])
	case "check":
		return c.runCheck(args[1:])
	case "init":
		err = c.runInit(args[1:])
	case "version":
		fmt.Fprintf(c.stdout, "codernote %s\n", version)
	case "help", "-h", "--help":
		c.printUsage(c.stdout)
	default:
		fmt.Fprintf(c.stderr, "Unknown command: %s\n\n", args[0])
		c.printUsage(c.stderr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// env returns the value of key, or fallback when unset or empty.
func (c cli) env(key, fallback string) string {
	if v, ok := c.lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

// configPath picks the site.yaml path from the first argument, then
// SITE_CONFIG. Empty means the built-in default theme.
func (c cli) configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.env("SITE_CONFIG", "")
}

func (c cli) printUsage(w io.Writer) {
	fmt.Fprintln(w, `codernote - A themeable blog engine built with Go, Echo, and templ

Usage:
  codernote <command> [arguments]

Commands:
  serve [config]   Start the web server
  check [config]   Validate a site configuration file
  init [path]      Write a starter site.yaml (default ./site.yaml)
  version          Print the codernote version
  help             Show this help message

Environment:
  SITE_CONFIG            Path to site.yaml when no argument is given
  SITE_URL               Canonical site URL (default http://localhost:3000)
  ADDR                   Listen address (default :3000)
  DATABASE_PATH          SQLite database (default data/blog.db)
  STATIC_DIR             Directory served under /public (default public)
  ADMIN_PASSWORD         Admin login password (required for serve)
  ADMIN_SESSION_SECRET   Session encryption secret (required for serve)
  COOKIE_SECURE          Set to true behind HTTPS
  LOG_LEVEL, LOG_FORMAT  debug|info|warn|error, json|console
  SITE_TITLE, SITE_GTAG, SITE_POSTS_PER_PAGE, ...
                         Override single site.yaml values

Examples:
  codernote init
  codernote check site.yaml
  ADMIN_PASSWORD=secret ADMIN_SESSION_SECRET=... codernote serve site.yaml`)
}
