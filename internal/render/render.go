// Package render serves the HTML pages. Every page is parsed once together
// with the shared layout and exposed to gin as an HTMLRender.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page names accepted by Instance
const (
	PageHome            = "home"
	PageCampgroundIndex = "campgrounds/index"
	PageCampgroundNew   = "campgrounds/new"
	PageCampgroundShow  = "campgrounds/show"
	PageCampgroundEdit  = "campgrounds/edit"
	PageError           = "error"
)

// Renderer holds one parsed template set per page
type Renderer struct {
	pages map[string]*template.Template
}

// Ensure Renderer implements gin's render.HTMLRender
var _ render.HTMLRender = (*Renderer)(nil)

// New parses every page under templates/ against the layout
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == layoutFile || !strings.HasSuffix(path, ".html") {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, path)
		if err != nil {
			return fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Instance returns the render for page name
func (r *Renderer) Instance(name string, data interface{}) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		return missingPage(name)
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

// Has reports whether a page was parsed
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

type missingPage string

func (m missingPage) Render(http.ResponseWriter) error {
	return fmt.Errorf("render: no page named %q", string(m))
}

func (m missingPage) WriteContentType(w http.ResponseWriter) {
	render.HTML{}.WriteContentType(w)
}

var funcs = template.FuncMap{
	"price": formatPrice,
	"stars": stars,
}

// formatPrice prints a price without trailing zeros, or nothing when unset
func formatPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// stars prints a rating as filled and empty stars out of five
func stars(rating float64) string {
	n := int(rating + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
