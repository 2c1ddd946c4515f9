package admin

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	authHTTP "github.com/allisson/jsondocs/internal/auth/http"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	documentUseCase "github.com/allisson/jsondocs/internal/document/usecase"
	apperrors "github.com/allisson/jsondocs/internal/errors"
	"github.com/allisson/jsondocs/internal/httputil"
	customValidation "github.com/allisson/jsondocs/internal/validation"
)

const (
	listLimit      = 100
	maxTitleLength = 255
)

var errInvalidDocumentID = apperrors.Wrap(apperrors.ErrNotFound, "invalid document id")

// ContentTypeReader reads registered content types.
type ContentTypeReader interface {
	Get(name string) (contentTypeDomain.ContentType, error)
	MenuItems() []contentTypeDomain.ContentType
}

// Handler serves the admin screens. Routes must be mounted behind an authentication
// middleware that stores the principal in the request context.
type Handler struct {
	contentTypes    ContentTypeReader
	documentUseCase documentUseCase.DocumentUseCase
	metaBoxes       []MetaBox
	permalink       *Permalink
	logger          *slog.Logger
}

// NewHandler creates a new admin Handler. Meta boxes are rendered on every edit screen.
func NewHandler(
	contentTypes ContentTypeReader,
	documentUseCase documentUseCase.DocumentUseCase,
	permalink *Permalink,
	logger *slog.Logger,
	metaBoxes ...MetaBox,
) *Handler {
	return &Handler{
		contentTypes:    contentTypes,
		documentUseCase: documentUseCase,
		metaBoxes:       SortMetaBoxes(metaBoxes),
		permalink:       permalink,
		logger:          logger,
	}
}

type page struct {
	PageTitle string
	Menu      []contentTypeDomain.ContentType
	Scripts   []string
	Styles    []string
}

type listPage struct {
	page
	Type      contentTypeDomain.ContentType
	Documents []*documentDomain.Document
}

type editPage struct {
	page
	Type      contentTypeDomain.ContentType
	Document  *documentDomain.Document
	Permalink template.HTML
	Normal    []RenderedMetaBox
	Side      []RenderedMetaBox
	Statuses  []documentDomain.Status
}

// MenuHandler renders the content type menu.
// GET /admin
func (h *Handler) MenuHandler(c *gin.Context) {
	h.html(c, http.StatusOK, "menu.html", h.newPage("Dashboard"))
}

// ListHandler renders the documents of a content type.
// GET /admin/:type
func (h *Handler) ListHandler(c *gin.Context) {
	ct, principal, ok := h.resolve(c)
	if !ok {
		return
	}

	docs, err := h.documentUseCase.List(c.Request.Context(), principal, ct, documentDomain.ListFilter{Limit: listLimit})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.html(c, http.StatusOK, "list.html", listPage{
		page:      h.newPage(ct.Label),
		Type:      ct,
		Documents: docs,
	})
}

// CreateDraftHandler creates an auto-draft and redirects to its edit screen.
// GET /admin/:type/new
func (h *Handler) CreateDraftHandler(c *gin.Context) {
	ct, principal, ok := h.resolve(c)
	if !ok {
		return
	}

	doc, err := h.documentUseCase.CreateDraft(c.Request.Context(), principal, ct)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, editURL(ct, doc.ID))
}

// EditHandler renders the edit screen of a document.
// GET /admin/:type/:id/edit
func (h *Handler) EditHandler(c *gin.Context) {
	ct, principal, ok := h.resolve(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, errInvalidDocumentID)
		return
	}

	doc, err := h.documentUseCase.Get(c.Request.Context(), principal, ct, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	data, err := h.newEditPage(ct, doc)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.html(c, http.StatusOK, "edit.html", data)
}

// SaveHandler saves the edit form and redirects back to the edit screen.
// POST /admin/:type/:id
func (h *Handler) SaveHandler(c *gin.Context) {
	ct, principal, ok := h.resolve(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, errInvalidDocumentID)
		return
	}

	input := &documentDomain.UpdateDocumentInput{}
	if title, ok := c.GetPostForm("title"); ok {
		if err := validation.Validate(title, validation.Length(0, maxTitleLength)); err != nil {
			h.fail(c, customValidation.WrapValidationError(err))
			return
		}
		input.Title = &title
	}
	if content, ok := c.GetPostForm("content"); ok {
		input.Content = &content
	}
	if raw := c.PostForm("status"); raw != "" {
		status, err := documentDomain.ParseStatus(raw)
		if err != nil {
			h.fail(c, err)
			return
		}
		input.Status = &status
	}

	if _, err := h.documentUseCase.Update(c.Request.Context(), principal, ct, id, input); err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, editURL(ct, id))
}

func (h *Handler) newPage(title string) page {
	return page{PageTitle: title, Menu: h.contentTypes.MenuItems()}
}

func (h *Handler) newEditPage(ct contentTypeDomain.ContentType, doc *documentDomain.Document) (editPage, error) {
	data := editPage{
		page:     h.newPage("Edit " + ct.Label),
		Type:     ct,
		Document: doc,
		Statuses: documentDomain.WritableStatuses,
	}
	if !doc.IsPersisted() {
		data.PageTitle = ct.Labels.AddNewItem
	}

	link, err := h.permalink.Render(ct, doc)
	if err != nil {
		return data, err
	}
	data.Permalink = link

	for _, box := range h.metaBoxes {
		markup, err := box.Render(doc)
		if err != nil {
			return data, err
		}

		rendered := RenderedMetaBox{ID: box.ID(), Title: box.Title(), HTML: markup}
		if box.Context() == ContextSide {
			data.Side = append(data.Side, rendered)
		} else {
			data.Normal = append(data.Normal, rendered)
		}
		data.Scripts = append(data.Scripts, box.Scripts()...)
		data.Styles = append(data.Styles, box.Styles()...)
	}
	return data, nil
}

// resolve loads the :type content type and the principal. Types hidden from the admin
// UI are reported as not found; principals without the type's edit capability are forbidden.
func (h *Handler) resolve(c *gin.Context) (contentTypeDomain.ContentType, *authDomain.Principal, bool) {
	ct, err := h.contentTypes.Get(c.Param("type"))
	if err == nil && !ct.ShowUI {
		err = contentTypeDomain.ErrContentTypeNotFound
	}
	if err != nil {
		h.fail(c, err)
		return ct, nil, false
	}

	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		h.fail(c, apperrors.ErrUnauthorized)
		return ct, nil, false
	}
	if !principal.Can(ct.Capabilities().EditPosts) {
		h.fail(c, apperrors.ErrForbidden)
		return ct, nil, false
	}
	return ct, principal, true
}

func (h *Handler) html(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.fail(c, apperrors.Wrapf(err, "failed to render %s", name))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// fail writes a plain error page with the status the error maps to.
func (h *Handler) fail(c *gin.Context, err error) {
	status := httputil.StatusCode(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(c.Request.Context(), level, "admin request failed",
		slog.Int("status_code", status),
		slog.Any("error", err),
	)

	c.Data(status, "text/plain; charset=utf-8", []byte(http.StatusText(status)))
}

func editURL(ct contentTypeDomain.ContentType, id uuid.UUID) string {
	return "/admin/" + ct.Name + "/" + id.String() + "/edit"
}
