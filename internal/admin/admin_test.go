package admin

import (
	"html/template"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

func jsonType() contentTypeDomain.ContentType {
	return contentTypeDomain.ContentType{Args: contentTypeDomain.JSONContentType{}.ContentTypeArgs()}
}

func newDocument(content string, status documentDomain.Status) *documentDomain.Document {
	now := time.Now().UTC()
	return &documentDomain.Document{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      "json",
		Title:     "config",
		Content:   content,
		Status:    status,
		AuthorID:  uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestJSONEditorMetaBox(t *testing.T) {
	box := NewJSONEditorMetaBox("https://cdn.example.com/jsoneditor/")

	assert.Equal(t, "json_editor", box.ID())
	assert.Equal(t, "JSON Editor", box.Title())
	assert.Equal(t, ContextNormal, box.Context())
	assert.Equal(t, PriorityHigh, box.Priority())
	assert.Equal(t, []string{"https://cdn.example.com/jsoneditor/jsoneditor.min.js"}, box.Scripts())
	assert.Equal(t, []string{"https://cdn.example.com/jsoneditor/jsoneditor.min.css"}, box.Styles())

	t.Run("EmptyBodySeedsEmptyObject", func(t *testing.T) {
		html, err := box.Render(newDocument("", documentDomain.StatusAutoDraft))
		require.NoError(t, err)

		out := string(html)
		assert.Contains(t, out, `<textarea class="hidden" id="content" name="content">{}</textarea>`)
		assert.Contains(t, out, `var seed = "{}";`)
		assert.Contains(t, out, "editor.setText(seed)")
	})

	t.Run("BodyIsEscaped", func(t *testing.T) {
		html, err := box.Render(newDocument(`{"x":"</script><b>"}`, documentDomain.StatusDraft))
		require.NoError(t, err)

		out := string(html)
		assert.NotContains(t, out, "</script><b>")
		assert.Contains(t, out, "&lt;/script&gt;&lt;b&gt;")
	})

	t.Run("InvalidBodyStillRenders", func(t *testing.T) {
		html, err := box.Render(newDocument("not json", documentDomain.StatusDraft))
		require.NoError(t, err)
		assert.Contains(t, string(html), `var seed = "not json";`)
	})
}

func TestPermalink(t *testing.T) {
	permalink := NewPermalink(documentDomain.NewPresenter("http://localhost:8080/", documentDomain.ShapeFlatten))

	t.Run("AutoDraftRendersNothing", func(t *testing.T) {
		doc := newDocument("", documentDomain.StatusAutoDraft)

		_, ok := permalink.RESTLink(jsonType(), doc)
		assert.False(t, ok)

		html, err := permalink.Render(jsonType(), doc)
		require.NoError(t, err)
		assert.Empty(t, html)
	})

	t.Run("NoIdentifierRendersNothing", func(t *testing.T) {
		doc := newDocument("", documentDomain.StatusDraft)
		doc.ID = uuid.Nil

		html, err := permalink.Render(jsonType(), doc)
		require.NoError(t, err)
		assert.Empty(t, html)
	})

	t.Run("SavedDocumentRendersLink", func(t *testing.T) {
		doc := newDocument(`{"a":1}`, documentDomain.StatusDraft)
		url := "http://localhost:8080/v1/json/" + doc.ID.String()

		link, ok := permalink.RESTLink(jsonType(), doc)
		require.True(t, ok)
		assert.Equal(t, url, link)

		html, err := permalink.Render(jsonType(), doc)
		require.NoError(t, err)
		assert.Contains(t, string(html), "<strong>REST API URL:</strong>")
		assert.Contains(t, string(html), `<a href="`+url+`" target="_blank">`+url+`</a>`)
	})
}

type stubMetaBox struct {
	id       string
	context  Context
	priority Priority
}

func (s stubMetaBox) ID() string         { return s.id }
func (s stubMetaBox) Title() string      { return s.id }
func (s stubMetaBox) Context() Context   { return s.context }
func (s stubMetaBox) Priority() Priority { return s.priority }
func (s stubMetaBox) Scripts() []string  { return nil }
func (s stubMetaBox) Styles() []string   { return nil }

func (s stubMetaBox) Render(*documentDomain.Document) (template.HTML, error) {
	return template.HTML("<p>" + s.id + "</p>"), nil //nolint:gosec // test fixture
}

func TestSortMetaBoxes(t *testing.T) {
	boxes := []MetaBox{
		stubMetaBox{id: "side-low", context: ContextSide, priority: PriorityLow},
		stubMetaBox{id: "normal-default", context: ContextNormal, priority: PriorityDefault},
		stubMetaBox{id: "side-high", context: ContextSide, priority: PriorityHigh},
		stubMetaBox{id: "normal-high", context: ContextNormal, priority: PriorityHigh},
		stubMetaBox{id: "normal-core", context: ContextNormal, priority: PriorityCore},
		stubMetaBox{id: "unknown", context: "advanced", priority: PriorityHigh},
	}

	var ids []string
	for _, box := range SortMetaBoxes(boxes) {
		ids = append(ids, box.ID())
	}

	assert.Equal(t, []string{
		"normal-high", "normal-core", "normal-default", "side-high", "side-low", "unknown",
	}, ids)
	assert.Equal(t, "side-low", boxes[0].ID())
}
