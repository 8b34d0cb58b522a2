// Package view renders station snapshots as HTML pages or plain text.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

const pageTemplate = "index.html"

// errNoTemplates is returned when a page is rendered before LoadTemplates.
var errNoTemplates = errors.New("station page template not loaded")

var stationPage *template.Template

func parsePages(fsys fs.FS, dir string) (*template.Template, error) {
	pages, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", dir, err)
	}
	tmpl, err := template.ParseFS(pages, "*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing station templates: %w", err)
	}
	return tmpl, nil
}

// LoadTemplates parses the embedded station page. serve calls it once at
// startup; a failure there stops the server from starting.
func LoadTemplates() error {
	tmpl, err := parsePages(templatesFS, "templates")
	if err != nil {
		return err
	}
	stationPage = tmpl
	return nil
}

// RenderPage writes page as HTML.
func RenderPage(w io.Writer, page *Page) error {
	if stationPage == nil {
		return errNoTemplates
	}
	return stationPage.ExecuteTemplate(w, pageTemplate, page)
}
