package handler

import (
	"html/template"
	"io"

	"github.com/Astemirdum/library-portal/web"
	"github.com/labstack/echo/v4"
)

type templateRenderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded page templates. Template names are the
// base file names (login.html, browse.html, ...).
func NewRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(web.Templates, "templates/*.html")),
	}
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
