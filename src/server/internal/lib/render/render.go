package render

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

var _ echo.Renderer = &Template{}

type Template struct {
	templates *template.Template
}

// MustLoad parses every template matching the glob pattern,
// e.g. frontend/templates/*.html
func MustLoad(pattern string) *Template {
	return &Template{
		templates: template.Must(template.ParseGlob(pattern)),
	}
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
