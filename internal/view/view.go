package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"strconv"
	"time"
	"workshop-site/internal/middleware"
	"workshop-site/internal/navigation"
	"workshop-site/internal/state"

	"github.com/gorilla/csrf"
)

// View represents a collection of parsed HTML templates.
type View struct {
	templates map[string]*template.Template
	store     *state.Store
}

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"icon": navigation.IconFor,
	"top":  navigation.Top,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("01-02-2006")
	},
	"longDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	"inputDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"inputDateTime": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02T15:04")
	},
	"money": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
	"dict":  dict,
}

// dict builds a map from alternating keys and values, for passing several
// values to a nested template.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict requires an even number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// New parses every page in templateFS together with the shared layouts and
// partials. store supplies the theme and socials shown on every page and may be nil.
func New(templateFS fs.FS, store *state.Store) (*View, error) {
	v := &View{
		templates: make(map[string]*template.Template),
		store:     store,
	}

	layouts, err := fs.Glob(templateFS, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}
	partials, err := fs.Glob(templateFS, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	shared := append(layouts, partials...)
	for _, page := range pages {
		files := append(append([]string{}, shared...), page)
		// The name of the template is the base name of the page file
		name := filepath.Base(page)
		ts, err := template.New(name).Funcs(Funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		v.templates[name] = ts
	}

	return v, nil
}

// Render executes a specific template by name.
func (v *View) Render(w io.Writer, r *http.Request, name string, data map[string]interface{}) error {
	ts, ok := v.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	data["IsMobile"] = middleware.IsMobile(r.Context())
	data["User"] = middleware.GetUserInfo(r.Context())
	data["CSRFField"] = csrf.TemplateField(r)
	theme := state.DefaultTheme
	if v.store != nil {
		theme = v.store.Theme()
		if _, ok := data["Socials"]; !ok {
			data["Socials"] = v.store.Socials()
		}
	}
	data["Theme"] = theme

	// Execute the template into a buffer first to catch any errors
	// before writing to the response writer.
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}
