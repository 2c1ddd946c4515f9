// Package admin renders the server-side admin screens: the content type menu, document
// lists and the document edit screen with its meta boxes.
package admin

import (
	"bytes"
	"embed"
	"html/template"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", apperrors.Wrapf(err, "failed to render %s", name)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // output of html/template
}
