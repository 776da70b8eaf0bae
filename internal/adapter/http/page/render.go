package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var FS embed.FS

// ChartJSURL is the Chart.js 2.x build the pages load.
const ChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@2.9.4/dist/Chart.min.js"

// Renderer executes the page templates. Each page template is parsed
// together with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"chartJSURL": func() string { return ChartJSURL },
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Dashboard, Guests, Users} {
		t, err := template.New(name).Funcs(funcs).ParseFS(FS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes p as a complete HTML document. Nothing is written to w if
// execution fails.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	t, ok := r.pages[p.Name]
	if !ok {
		return fmt.Errorf("unknown page %q", p.Name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", p.Name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
