// Package domain defines documents: content-type instances whose body holds JSON text,
// their revisions, their REST representation and the rules deciding who may touch them.
//
// The body is free text. Nothing here requires it to be valid JSON; invalid bodies are
// stored as-is and only change how a document is represented on read.
package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a document.
type Status string

const (
	StatusAutoDraft Status = "auto-draft"
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPrivate   Status = "private"
	StatusPublish   Status = "publish"
	StatusTrash     Status = "trash"
)

// WritableStatuses are the statuses a client may set directly.
var WritableStatuses = []Status{StatusDraft, StatusPending, StatusPrivate, StatusPublish}

// ParseStatus parses a client-supplied status. Only writable statuses are accepted.
func ParseStatus(s string) (Status, error) {
	for _, st := range WritableStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// RequiresPublish reports whether moving a document into s needs the publish capability.
func (s Status) RequiresPublish() bool {
	return s == StatusPublish || s == StatusPrivate
}

// Document is one instance of a content type.
type Document struct {
	ID        uuid.UUID
	Type      string
	Title     string
	Content   string
	Status    Status
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPersisted reports whether the document has a real identifier and has left the
// auto-draft placeholder state.
func (d *Document) IsPersisted() bool {
	return d.ID != uuid.Nil && d.Status != StatusAutoDraft
}

// Slug derives a URL-friendly name from the title, falling back to the identifier.
func (d *Document) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(d.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return d.ID.String()
	}
	return slug
}

// Revision is a snapshot of a document's title and body.
type Revision struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Title      string
	Content    string
	AuthorID   uuid.UUID
	CreatedAt  time.Time
}

// NewRevision snapshots doc as authored by authorID.
func NewRevision(doc *Document, authorID uuid.UUID, at time.Time) *Revision {
	return &Revision{
		ID:         uuid.Must(uuid.NewV7()),
		DocumentID: doc.ID,
		Title:      doc.Title,
		Content:    doc.Content,
		AuthorID:   authorID,
		CreatedAt:  at,
	}
}

// CreateDocumentInput holds the fields of a new document. An empty status means draft.
type CreateDocumentInput struct {
	Title   string
	Content string
	Status  Status
}

// UpdateDocumentInput holds a partial update. Nil fields are left unchanged.
type UpdateDocumentInput struct {
	Title   *string
	Content *string
	Status  *Status
}

// ListFilter selects documents of one type.
type ListFilter struct {
	Type     string
	AuthorID *uuid.UUID
	Statuses []Status
	Offset   int
	Limit    int
}
