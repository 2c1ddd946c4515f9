package domain

import (
	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
)

// Policy answers access questions for one content type.
type Policy struct {
	caps contentTypeDomain.Capabilities
}

// NewPolicy creates the policy for ct.
func NewPolicy(ct contentTypeDomain.ContentType) Policy {
	return Policy{caps: ct.Capabilities()}
}

// CanRead: published documents are public to anonymous readers (nil actor) and need the
// base read capability otherwise. Anything else needs edit rights on the document, and
// private documents are also readable with read_private.
func (p Policy) CanRead(actor *authDomain.Principal, doc *Document) bool {
	switch {
	case doc.Status == StatusPublish:
		return actor == nil || actor.Can(p.caps.Read)
	case doc.Status == StatusPrivate && actor.Can(p.caps.ReadPrivatePosts):
		return true
	default:
		return p.CanEdit(actor, doc)
	}
}

// CanEdit: own documents need edit, others' documents need edit_others.
func (p Policy) CanEdit(actor *authDomain.Principal, doc *Document) bool {
	if actor.Owns(doc.AuthorID) {
		return actor.Can(p.caps.EditPosts)
	}
	return actor.Can(p.caps.EditOthersPosts)
}

// CanCreate reports whether actor may create documents at all.
func (p Policy) CanCreate(actor *authDomain.Principal) bool {
	return actor.Can(p.caps.EditPosts)
}

// CanSetStatus reports whether actor may move a document into status.
func (p Policy) CanSetStatus(actor *authDomain.Principal, status Status) bool {
	if status.RequiresPublish() {
		return actor.Can(p.caps.PublishPosts)
	}
	return true
}

// CanListOthers reports whether listings include documents authored by others.
func (p Policy) CanListOthers(actor *authDomain.Principal) bool {
	return actor.Can(p.caps.EditOthersPosts)
}
