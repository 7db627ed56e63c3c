package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/eringen/codernote/scaffold"
	"github.com/eringen/codernote/siteconfig"
)

const defaultConfigFile = "site.yaml"

// runInit writes a starter site.yaml. An existing file is never replaced.
func (c cli) runInit(args []string) error {
	path := defaultConfigFile
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	site := siteconfig.Default()
	site.GTag = ""
	data, err := scaffold.SiteYAML(site)
	if err != nil {
		return err
	}
	// The starter file must load cleanly before it is handed out.
	if _, err := (siteconfig.Loader{Path: path}).Parse(data); err != nil {
		return fmt.Errorf("scaffold is invalid: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(c.stdout, "  created %s\n\n", path)
	fmt.Fprintln(c.stdout, "Next steps:")
	fmt.Fprintf(c.stdout, "  codernote check %s\n", path)
	fmt.Fprintf(c.stdout, "  ADMIN_PASSWORD=... ADMIN_SESSION_SECRET=... codernote serve %s\n", path)
	return nil
}
