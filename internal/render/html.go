package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed assets
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/page.html.tmpl"))

// PreviewSelector is the CSS selector of the page-sized root element.
const PreviewSelector = "#resume-preview"

type htmlPage struct {
	*Page
	CSS template.CSS
}

func stylesheet(p *Page) (template.CSS, error) {
	base, err := assets.ReadFile("assets/base.css")
	if err != nil {
		return "", err
	}
	theme, err := assets.ReadFile("assets/" + string(p.Template) + ".css")
	if err != nil {
		return "", fmt.Errorf("stylesheet for %q: %w", p.Template, err)
	}
	return template.CSS(string(base) + "\n" + string(theme)), nil
}

// HTML encodes p as a standalone document whose #resume-preview element is
// sized like an A4 sheet.
func (p *Page) HTML() (string, error) {
	css, err := stylesheet(p)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, htmlPage{Page: p, CSS: css}); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}
