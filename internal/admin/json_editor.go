package admin

import (
	"html/template"
	"strings"

	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

// JSONEditorMetaBox replaces free-text body editing with a JSON editor. The editor writes
// its serialized state into a hidden "content" field so a normal form save persists it.
type JSONEditorMetaBox struct {
	assetsURL string
}

// NewJSONEditorMetaBox creates the editor box loading jsoneditor assets from assetsURL.
func NewJSONEditorMetaBox(assetsURL string) *JSONEditorMetaBox {
	return &JSONEditorMetaBox{assetsURL: strings.TrimSuffix(assetsURL, "/")}
}

func (m *JSONEditorMetaBox) ID() string         { return "json_editor" }
func (m *JSONEditorMetaBox) Title() string      { return "JSON Editor" }
func (m *JSONEditorMetaBox) Context() Context   { return ContextNormal }
func (m *JSONEditorMetaBox) Priority() Priority { return PriorityHigh }

func (m *JSONEditorMetaBox) Scripts() []string {
	return []string{m.assetsURL + "/jsoneditor.min.js"}
}

func (m *JSONEditorMetaBox) Styles() []string {
	return []string{m.assetsURL + "/jsoneditor.min.css"}
}

// Render seeds the editor with the document body, or {} when the body is empty.
// Bodies that are not valid JSON are loaded as text.
func (m *JSONEditorMetaBox) Render(doc *documentDomain.Document) (template.HTML, error) {
	seed := doc.Content
	if seed == "" {
		seed = "{}"
	}
	return render("json_editor.html", struct{ Seed string }{Seed: seed})
}
