package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	"github.com/allisson/jsondocs/internal/document/http/dto"
	documentUseCase "github.com/allisson/jsondocs/internal/document/usecase"
	"github.com/allisson/jsondocs/internal/httputil"
	customValidation "github.com/allisson/jsondocs/internal/validation"
)

// DocumentHandler serves the document collection of a content type.
// Routes must be mounted behind WithContentType. Reads accept anonymous requests,
// writes require the authentication middleware.
type DocumentHandler struct {
	documentUseCase documentUseCase.DocumentUseCase
	presenter       *documentDomain.Presenter
	logger          *slog.Logger
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(
	documentUseCase documentUseCase.DocumentUseCase,
	presenter *documentDomain.Presenter,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
		presenter:       presenter,
		logger:          logger,
	}
}

// ListHandler lists documents.
// GET /v1/<rest_base>?offset&limit&status - status is a comma-separated list.
func (h *DocumentHandler) ListHandler(c *gin.Context) {
	ct, err := contentTypeFrom(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	principal := optionalPrincipal(c)

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	statuses, err := parseStatusFilter(c.Query("status"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	docs, err := h.documentUseCase.List(c.Request.Context(), principal, ct, documentDomain.ListFilter{
		Statuses: statuses,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	data := make([]any, 0, len(docs))
	for _, doc := range docs {
		data = append(data, h.presenter.Present(ct, doc))
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{Data: data})
}

// CreateHandler creates a document.
// POST /v1/<rest_base> - 201 with the shaped document.
func (h *DocumentHandler) CreateHandler(c *gin.Context) {
	ct, err := contentTypeFrom(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	principal, err := principalFrom(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	doc, err := h.documentUseCase.Create(c.Request.Context(), principal, ct, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Location", h.presenter.ItemURL(ct, doc.ID))
	c.JSON(http.StatusCreated, h.presenter.Present(ct, doc))
}

// GetHandler reads a document.
// GET /v1/<rest_base>/:id
func (h *DocumentHandler) GetHandler(c *gin.Context) {
	ct, id, ok := h.documentTarget(c)
	if !ok {
		return
	}
	principal := optionalPrincipal(c)

	doc, err := h.documentUseCase.Get(c.Request.Context(), principal, ct, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, h.presenter.Present(ct, doc))
}

// UpdateHandler applies a partial update.
// POST|PUT|PATCH /v1/<rest_base>/:id
func (h *DocumentHandler) UpdateHandler(c *gin.Context) {
	ct, principal, id, ok := h.documentRequest(c)
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	doc, err := h.documentUseCase.Update(c.Request.Context(), principal, ct, id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, h.presenter.Present(ct, doc))
}

// DeleteHandler trashes a document, or deletes it permanently with ?force=true.
// DELETE /v1/<rest_base>/:id
func (h *DocumentHandler) DeleteHandler(c *gin.Context) {
	ct, principal, id, ok := h.documentRequest(c)
	if !ok {
		return
	}

	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid force parameter: must be a boolean"), h.logger)
		return
	}

	doc, err := h.documentUseCase.Delete(c.Request.Context(), principal, ct, id, force)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !force {
		c.JSON(http.StatusOK, h.presenter.Present(ct, doc))
		return
	}
	c.JSON(http.StatusOK, dto.DeleteDocumentResponse{
		Deleted:  true,
		Previous: h.presenter.Present(ct, doc),
	})
}

// ListRevisionsHandler lists the revisions of a document, newest first.
// GET /v1/<rest_base>/:id/revisions
func (h *DocumentHandler) ListRevisionsHandler(c *gin.Context) {
	ct, principal, id, ok := h.documentRequest(c)
	if !ok {
		return
	}

	revs, err := h.documentUseCase.ListRevisions(c.Request.Context(), principal, ct, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRevisionsToListResponse(revs))
}

// GetRevisionHandler reads one revision of a document.
// GET /v1/<rest_base>/:id/revisions/:revision_id
func (h *DocumentHandler) GetRevisionHandler(c *gin.Context) {
	ct, principal, id, ok := h.documentRequest(c)
	if !ok {
		return
	}

	revisionID, err := uuid.Parse(c.Param("revision_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid revision id: %w", err), h.logger)
		return
	}

	rev, err := h.documentUseCase.GetRevision(c.Request.Context(), principal, ct, id, revisionID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRevisionToResponse(rev))
}

// documentRequest resolves the content type, principal and :id of an item route.
// It writes the error response and returns false when any of them is missing.
func (h *DocumentHandler) documentRequest(
	c *gin.Context,
) (ct contentTypeDomain.ContentType, principal *authDomain.Principal, id uuid.UUID, ok bool) {
	if ct, id, ok = h.documentTarget(c); !ok {
		return ct, nil, id, false
	}
	principal, err := principalFrom(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return ct, nil, uuid.Nil, false
	}
	return ct, principal, id, true
}

// documentTarget resolves the content type and document id of the request.
func (h *DocumentHandler) documentTarget(c *gin.Context) (contentTypeDomain.ContentType, uuid.UUID, bool) {
	ct, err := contentTypeFrom(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return ct, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid document id: %w", err), h.logger)
		return ct, uuid.Nil, false
	}
	return ct, id, true
}

// parseStatusFilter parses a comma-separated status list. Trash is listable but not writable.
func parseStatusFilter(raw string) ([]documentDomain.Status, error) {
	if raw == "" {
		return nil, nil
	}

	var statuses []documentDomain.Status
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == string(documentDomain.StatusTrash) {
			statuses = append(statuses, documentDomain.StatusTrash)
			continue
		}
		status, err := documentDomain.ParseStatus(part)
		if err != nil {
			return nil, fmt.Errorf("invalid status parameter: %q", part)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
