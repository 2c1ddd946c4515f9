package dto

import (
	"time"

	"github.com/google/uuid"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

// RevisionResponse represents one revision of a document.
type RevisionResponse struct {
	ID      uuid.UUID `json:"id"`
	Parent  uuid.UUID `json:"parent"`
	Author  uuid.UUID `json:"author"`
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

// MapRevisionToResponse converts a domain revision to its API response.
func MapRevisionToResponse(rev *documentDomain.Revision) RevisionResponse {
	return RevisionResponse{
		ID:      rev.ID,
		Parent:  rev.DocumentID,
		Author:  rev.AuthorID,
		Date:    rev.CreatedAt,
		Title:   rev.Title,
		Content: rev.Content,
	}
}

// ListRevisionsResponse represents the revision history of a document, newest first.
type ListRevisionsResponse struct {
	Data []RevisionResponse `json:"data"`
}

// MapRevisionsToListResponse converts domain revisions to a list response.
func MapRevisionsToListResponse(revs []*documentDomain.Revision) ListRevisionsResponse {
	data := make([]RevisionResponse, 0, len(revs))
	for _, rev := range revs {
		data = append(data, MapRevisionToResponse(rev))
	}
	return ListRevisionsResponse{Data: data}
}

// ListDocumentsResponse wraps the presented documents of a listing.
type ListDocumentsResponse struct {
	Data []any `json:"data"`
}

// DeleteDocumentResponse reports the outcome of a delete.
type DeleteDocumentResponse struct {
	Deleted  bool `json:"deleted"`
	Previous any  `json:"previous"`
}

// ContentTypeResponse describes a registered content type.
type ContentTypeResponse struct {
	Name         string                         `json:"name"`
	Slug         string                         `json:"slug"`
	Description  string                         `json:"description"`
	Hierarchical bool                           `json:"hierarchical"`
	Labels       contentTypeDomain.Labels       `json:"labels"`
	RESTBase     string                         `json:"rest_base"`
	Supports     []string                       `json:"supports"`
	Capabilities contentTypeDomain.Capabilities `json:"capabilities"`
}

// MapContentTypeToResponse converts a content type to its API response.
func MapContentTypeToResponse(ct contentTypeDomain.ContentType) ContentTypeResponse {
	supports := ct.Supports
	if supports == nil {
		supports = []string{}
	}
	return ContentTypeResponse{
		Name:         ct.Label,
		Slug:         ct.Name,
		Description:  ct.Description,
		Hierarchical: ct.Hierarchical,
		Labels:       ct.Labels,
		RESTBase:     ct.RESTBase,
		Supports:     supports,
		Capabilities: ct.Capabilities(),
	}
}

// ListContentTypesResponse lists the content types exposed over REST.
type ListContentTypesResponse struct {
	Data []ContentTypeResponse `json:"data"`
}

// MapContentTypesToListResponse converts content types to a list response.
func MapContentTypesToListResponse(types []contentTypeDomain.ContentType) ListContentTypesResponse {
	data := make([]ContentTypeResponse, 0, len(types))
	for _, ct := range types {
		data = append(data, MapContentTypeToResponse(ct))
	}
	return ListContentTypesResponse{Data: data}
}
