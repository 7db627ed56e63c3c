// Package scaffold provides the embedded starter files written by
// "codernote init".
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"text/template"

	"github.com/eringen/codernote/siteconfig"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// SiteYAMLTemplate is the path of the site configuration template in Templates.
const SiteYAMLTemplate = "templates/site.yaml.tmpl"

var funcs = template.FuncMap{
	// quote renders a string as a YAML double-quoted scalar.
	"quote": strconv.Quote,
}

// SiteYAML renders the starter site.yaml with every key set from site.
func SiteYAML(site siteconfig.SiteConfig) ([]byte, error) {
	content, err := Templates.ReadFile(SiteYAMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SiteYAMLTemplate, err)
	}
	tmpl, err := template.New("site.yaml").Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", SiteYAMLTemplate, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, site); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", SiteYAMLTemplate, err)
	}
	return buf.Bytes(), nil
}
