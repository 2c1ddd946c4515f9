// Package dto provides request and response bodies for the document endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

var writableStatuses = []interface{}{
	string(documentDomain.StatusDraft),
	string(documentDomain.StatusPending),
	string(documentDomain.StatusPrivate),
	string(documentDomain.StatusPublish),
}

// CreateDocumentRequest is the body of POST /v1/<rest_base>.
// Content is free text; it is stored as-is.
type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// Validate checks the request fields.
func (r *CreateDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Status, validation.In(writableStatuses...)),
	)
}

// ToInput maps the request to the use case input.
func (r *CreateDocumentRequest) ToInput() *documentDomain.CreateDocumentInput {
	return &documentDomain.CreateDocumentInput{
		Title:   r.Title,
		Content: r.Content,
		Status:  documentDomain.Status(r.Status),
	}
}

// UpdateDocumentRequest is the body of a partial update. Omitted fields are unchanged.
type UpdateDocumentRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// Validate checks the request fields.
func (r *UpdateDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(writableStatuses...)),
	)
}

// ToInput maps the request to the use case input.
func (r *UpdateDocumentRequest) ToInput() *documentDomain.UpdateDocumentInput {
	input := &documentDomain.UpdateDocumentInput{
		Title:   r.Title,
		Content: r.Content,
	}
	if r.Status != nil {
		status := documentDomain.Status(*r.Status)
		input.Status = &status
	}
	return input
}
