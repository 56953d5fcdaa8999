// Package web holds the embedded page templates.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"

	"portfolio/internal/model"
)

//go:embed templates
var templates embed.FS

// NewEngine returns the fiber view engine for the site pages. Object keys are
// resolved to public URLs against mediaBaseURL.
func NewEngine(mediaBaseURL string) *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"media": func(key *string, fallback string) string {
			return model.MediaURL(mediaBaseURL, key, fallback)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"monthYear": func(t *time.Time) string {
			if t == nil || t.IsZero() {
				return ""
			}
			return t.Format("Jan 2006")
		},
		// rich text is authored by the administrator
		"rich": func(s string) template.HTML {
			return template.HTML(s)
		},
		"thumb":  func() string { return model.DefaultThumbURL },
		"avatar": func() string { return model.DefaultAvatarURL },
	})
	return engine
}
