package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"sort"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Page template names.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageServices = "services"
	PageProducts = "products"
	PageProduct  = "product"
	PageJobs     = "jobs"
	PageApply    = "apply"
	PageContact  = "contact"
	PageNotFound = "notfound"
	PageError    = "error"
)

var pageNames = []string{
	PageHome, PageAbout, PageServices, PageProducts, PageProduct,
	PageJobs, PageApply, PageContact, PageNotFound, PageError,
}

var shared = []string{"templates/layout.html", "templates/partials.html"}

// Renderer holds one parsed template set per page, each layered on the
// shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page.
func New() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(Funcs()).ParseFS(templateFiles, shared...)
	if err != nil {
		return nil, &TemplateError{Page: "layout", Message: "failed to parse layout", Cause: err}
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, &TemplateError{Page: name, Message: "failed to clone layout", Cause: err}
		}
		if _, err := t.ParseFS(templateFiles, "templates/"+name+".html"); err != nil {
			return nil, &TemplateError{Page: name, Message: "failed to parse page", Cause: err}
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes page into w. Output is buffered so a failing template
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data *Page) error {
	t, ok := r.pages[page]
	if !ok {
		return &TemplateError{Page: page, Message: "unknown page"}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return &RenderError{Page: page, Message: "failed to execute template", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Page: page, Message: "failed to write response", Cause: err}
	}
	return nil
}

// Pages lists the known page names.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Static is the embedded asset tree, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static is embedded at build time
		panic(err)
	}
	return sub
}
