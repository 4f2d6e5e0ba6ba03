// Package templates embeds and parses the HTML template set. Every page
// template is parsed together with the shared layout so a missing define
// fails at startup, not at request time.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed html/*.html
var htmlFS embed.FS

var pageNames = []string{
	"home.html",
	"courses.html",
	"course.html",
	"announcements.html",
	"announcement.html",
	"blog.html",
	"article.html",
	"page.html",
	"notfound.html",
}

var funcs = template.FuncMap{
	"formatDate": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("02.01.2006")
	},
	"formatPrice": func(price float64) string {
		return fmt.Sprintf("%.0f ₺", price)
	},
}

// Set holds one parsed template per page, each including the layout.
type Set struct {
	pages map[string]*template.Template
}

func Load() (*Set, error) {
	set := &Set{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(htmlFS, "html/layout.html", "html/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		set.pages[name] = tmpl
	}
	return set, nil
}

// Render executes the named page template into w.
func (s *Set) Render(w io.Writer, name string, data any) error {
	tmpl, ok := s.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}
