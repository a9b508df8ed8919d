package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageFiles = map[string]string{
	"shop":           "templates/shop.html",
	"add-product":    "templates/add_product.html",
	"admin-products": "templates/admin_products.html",
	"not-found":      "templates/not_found.html",
}

// Renderer executes embedded HTML pages. Each page is the shared layout
// plus one content template, parsed once at construction.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into a buffer before writing, so a
// template failure never emits a half-written body.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := rn.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
