package web

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	blogdomain "github.com/avasilyev/blogd/internal/blog/domain"
)

type Renderer struct {
	templates *template.Template
}

func NewRenderer(templateDir string) (*Renderer, error) {
	t, err := template.ParseGlob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// pageData is the single shape handed to every template. User is empty
// for the anonymous variant of a page.
type pageData struct {
	User  string
	Flash string
	Posts []blogdomain.PostWithID
	Post  *blogdomain.Post
	Error string
}

func (rd *Renderer) render(w http.ResponseWriter, name string, data pageData) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return rd.templates.ExecuteTemplate(w, name, data)
}
