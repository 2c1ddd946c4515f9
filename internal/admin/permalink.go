package admin

import (
	"html/template"

	"github.com/google/uuid"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

// Permalink links the edit screen to the REST representation of a document.
type Permalink struct {
	presenter *documentDomain.Presenter
}

// NewPermalink creates a Permalink building URLs with presenter.
func NewPermalink(presenter *documentDomain.Presenter) *Permalink {
	return &Permalink{presenter: presenter}
}

// RESTLink returns the REST read URL of doc. ok is false for placeholders: documents
// without an identifier or still in auto-draft.
func (p *Permalink) RESTLink(ct contentTypeDomain.ContentType, doc *documentDomain.Document) (string, bool) {
	if doc == nil || doc.ID == uuid.Nil || doc.Status == documentDomain.StatusAutoDraft {
		return "", false
	}
	return p.presenter.ItemURL(ct, doc.ID), true
}

// Render returns the link markup, or nothing when RESTLink is not ok.
func (p *Permalink) Render(ct contentTypeDomain.ContentType, doc *documentDomain.Document) (template.HTML, error) {
	url, ok := p.RESTLink(ct, doc)
	if !ok {
		return "", nil
	}
	return render("permalink.html", url)
}
