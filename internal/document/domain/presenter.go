package domain

import (
	"strings"

	"github.com/google/uuid"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
)

// ResponseShape selects how documents are represented on read.
type ResponseShape string

const (
	// ShapeFlatten returns the decoded document, or the generic envelope when the body
	// does not decode to a non-empty structure.
	ShapeFlatten ResponseShape = "flatten"
	// ShapeWrapped always returns {id, document}.
	ShapeWrapped ResponseShape = "wrapped"
)

// Presenter turns documents into their outbound REST form.
type Presenter struct {
	baseURL string
	shape   ResponseShape
}

// NewPresenter creates a Presenter building URLs under baseURL. Unknown shapes fall back to flatten.
func NewPresenter(baseURL string, shape ResponseShape) *Presenter {
	if shape != ShapeWrapped {
		shape = ShapeFlatten
	}
	return &Presenter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		shape:   shape,
	}
}

// CollectionURL returns the REST collection URL of ct.
func (p *Presenter) CollectionURL(ct contentTypeDomain.ContentType) string {
	return p.baseURL + "/v1/" + ct.RESTBase
}

// ItemURL returns the REST read URL of the document id.
func (p *Presenter) ItemURL(ct contentTypeDomain.ContentType, id uuid.UUID) string {
	return p.CollectionURL(ct) + "/" + id.String()
}

// Links returns the hypermedia links of the generic representation.
func (p *Presenter) Links(ct contentTypeDomain.ContentType, doc *Document) map[string][]Link {
	self := p.ItemURL(ct, doc.ID)
	links := map[string][]Link{
		"self":       {{Href: self}},
		"collection": {{Href: p.CollectionURL(ct)}},
		"about":      {{Href: p.baseURL + "/v1/types/" + ct.Name}},
	}
	if ct.SupportsFeature("revisions") {
		links["version-history"] = []Link{{Href: self + "/revisions"}}
	}
	return links
}

// Present returns the JSON-serializable representation of doc.
func (p *Presenter) Present(ct contentTypeDomain.ContentType, doc *Document) any {
	if p.shape == ShapeWrapped {
		return Wrap(doc)
	}

	rep := NewRepresentation(doc, p.Links(ct, doc))
	Shape(rep, doc)
	return rep
}
