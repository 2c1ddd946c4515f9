package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	authHTTP "github.com/allisson/jsondocs/internal/auth/http"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
	"github.com/allisson/jsondocs/internal/document/http/dto"
	"github.com/allisson/jsondocs/internal/document/http/mocks"
)

func jsonType() contentTypeDomain.ContentType {
	return contentTypeDomain.ContentType{Args: contentTypeDomain.JSONContentType{}.ContentTypeArgs()}
}

func testPrincipal() *authDomain.Principal {
	return &authDomain.Principal{
		User:         &authDomain.User{ID: uuid.Must(uuid.NewV7()), Username: "alice"},
		Capabilities: []string{"read", "edit_json"},
	}
}

func newTestDocument(content string) *documentDomain.Document {
	now := time.Now().UTC()
	return &documentDomain.Document{
		ID:        uuid.Must(uuid.NewV7()),
		Type:      "json",
		Title:     "config",
		Content:   content,
		Status:    documentDomain.StatusDraft,
		AuthorID:  uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// setupRouter mounts the document routes the way the API server does, with principal
// standing in for the authentication middleware. A nil principal leaves the request anonymous.
func setupRouter(
	t *testing.T,
	shape documentDomain.ResponseShape,
	principal *authDomain.Principal,
) (*gin.Engine, *mocks.MockDocumentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := &mocks.MockDocumentUseCase{}
	t.Cleanup(func() { uc.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewDocumentHandler(uc, documentDomain.NewPresenter("http://localhost:8080", shape), logger)

	router := gin.New()
	group := router.Group("/v1/json", WithContentType(jsonType()), func(c *gin.Context) {
		if principal != nil {
			c.Request = c.Request.WithContext(authHTTP.WithPrincipal(c.Request.Context(), principal))
		}
		c.Next()
	})
	group.GET("", handler.ListHandler)
	group.POST("", handler.CreateHandler)
	group.GET("/:id", handler.GetHandler)
	group.PATCH("/:id", handler.UpdateHandler)
	group.DELETE("/:id", handler.DeleteHandler)
	group.GET("/:id/revisions", handler.ListRevisionsHandler)
	group.GET("/:id/revisions/:revision_id", handler.GetRevisionHandler)

	return router, uc
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestDocumentHandler_GetHandler(t *testing.T) {
	t.Run("Success_FlattenedDocument", func(t *testing.T) {
		principal := testPrincipal()
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, principal)
		doc := newTestDocument(`{"z":1,"a":[1,2]}`)

		uc.On("Get", mock.Anything, principal, jsonType(), doc.ID).Return(doc, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+doc.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"z":1,"a":[1,2]}`, w.Body.String())
	})

	t.Run("Success_EnvelopeForInvalidBody", func(t *testing.T) {
		principal := testPrincipal()
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, principal)
		doc := newTestDocument("not json")

		uc.On("Get", mock.Anything, principal, jsonType(), doc.ID).Return(doc, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+doc.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, doc.ID.String(), body["id"])
		assert.Equal(t, "not json", body["content"])
		assert.NotContains(t, body, "_links")
	})

	t.Run("Success_Wrapped", func(t *testing.T) {
		principal := testPrincipal()
		router, uc := setupRouter(t, documentDomain.ShapeWrapped, principal)
		doc := newTestDocument("")

		uc.On("Get", mock.Anything, principal, jsonType(), doc.ID).Return(doc, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+doc.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"`+doc.ID.String()+`","document":null}`, w.Body.String())
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		router, _ := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		w := perform(router, http.MethodGet, "/v1/json/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())
		id := uuid.Must(uuid.NewV7())

		uc.On("Get", mock.Anything, mock.Anything, mock.Anything, id).
			Return(nil, documentDomain.ErrDocumentNotFound).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_Forbidden", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())
		id := uuid.Must(uuid.NewV7())

		uc.On("Get", mock.Anything, mock.Anything, mock.Anything, id).
			Return(nil, documentDomain.ErrForbidden).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+id.String(), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success_AnonymousPublished", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, nil)
		doc := newTestDocument(`{"public":true}`)
		doc.Status = documentDomain.StatusPublish

		uc.On("Get", mock.Anything, (*authDomain.Principal)(nil), jsonType(), doc.ID).Return(doc, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+doc.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"public":true}`, w.Body.String())
	})

	t.Run("Error_AnonymousUnpublished", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, nil)
		id := uuid.Must(uuid.NewV7())

		uc.On("Get", mock.Anything, (*authDomain.Principal)(nil), jsonType(), id).
			Return(nil, documentDomain.ErrAuthenticationRequired).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+id.String(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDocumentHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		principal := testPrincipal()
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, principal)
		docs := []*documentDomain.Document{newTestDocument(`[1]`), newTestDocument(`5`)}

		uc.On("List", mock.Anything, principal, jsonType(), documentDomain.ListFilter{
			Statuses: []documentDomain.Status{documentDomain.StatusDraft, documentDomain.StatusTrash},
			Offset:   10,
			Limit:    20,
		}).Return(docs, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json?offset=10&limit=20&status=draft,trash", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[[1],[5]]}`, w.Body.String())
	})

	t.Run("Success_PageAliases", func(t *testing.T) {
		principal := testPrincipal()
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, principal)

		uc.On("List", mock.Anything, principal, jsonType(), documentDomain.ListFilter{
			Offset: 20,
			Limit:  10,
		}).Return([]*documentDomain.Document{}, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json?page=3&per_page=10", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("Success_Anonymous", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, nil)
		doc := newTestDocument(`{"a":1}`)
		doc.Status = documentDomain.StatusPublish

		uc.On("List", mock.Anything, (*authDomain.Principal)(nil), jsonType(), documentDomain.ListFilter{
			Limit: 50,
		}).Return([]*documentDomain.Document{doc}, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[{"a":1}]}`, w.Body.String())
	})

	t.Run("Error_InvalidStatus", func(t *testing.T) {
		router, _ := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		w := perform(router, http.MethodGet, "/v1/json?status=auto-draft", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		router, _ := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		w := perform(router, http.MethodGet, "/v1/json?limit=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		principal := testPrincipal()
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, principal)
		doc := newTestDocument(`{"a":1}`)

		uc.On("Create", mock.Anything, principal, jsonType(), &documentDomain.CreateDocumentInput{
			Title:   "config",
			Content: `{"a":1}`,
		}).Return(doc, nil).Once()

		w := perform(router, http.MethodPost, "/v1/json", `{"title":"config","content":"{\"a\":1}"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, `{"a":1}`, w.Body.String())
		assert.Equal(t, "http://localhost:8080/v1/json/"+doc.ID.String(), w.Header().Get("Location"))
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		router, _ := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		w := perform(router, http.MethodPost, "/v1/json", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidStatus", func(t *testing.T) {
		router, _ := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		w := perform(router, http.MethodPost, "/v1/json", `{"status":"trash"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidContent", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		uc.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, documentDomain.ErrInvalidContent).Once()

		w := perform(router, http.MethodPost, "/v1/json", `{"content":"{broken"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDocumentHandler_UpdateHandler(t *testing.T) {
	principal := testPrincipal()
	router, uc := setupRouter(t, documentDomain.ShapeFlatten, principal)
	doc := newTestDocument(`{"b":2}`)
	content := `{"b":2}`
	status := documentDomain.StatusPending

	uc.On("Update", mock.Anything, principal, jsonType(), doc.ID, &documentDomain.UpdateDocumentInput{
		Content: &content,
		Status:  &status,
	}).Return(doc, nil).Once()

	w := perform(router, http.MethodPatch, "/v1/json/"+doc.ID.String(), `{"content":"{\"b\":2}","status":"pending"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"b":2}`, w.Body.String())
}

func TestDocumentHandler_DeleteHandler(t *testing.T) {
	t.Run("Success_Trash", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeWrapped, testPrincipal())
		doc := newTestDocument(`{"a":1}`)
		doc.Status = documentDomain.StatusTrash

		uc.On("Delete", mock.Anything, mock.Anything, mock.Anything, doc.ID, false).Return(doc, nil).Once()

		w := perform(router, http.MethodDelete, "/v1/json/"+doc.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"`+doc.ID.String()+`","document":{"a":1}}`, w.Body.String())
	})

	t.Run("Success_Force", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeWrapped, testPrincipal())
		doc := newTestDocument(`{"a":1}`)

		uc.On("Delete", mock.Anything, mock.Anything, mock.Anything, doc.ID, true).Return(doc, nil).Once()

		w := perform(router, http.MethodDelete, "/v1/json/"+doc.ID.String()+"?force=true", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"deleted":true,"previous":{"id":"`+doc.ID.String()+`","document":{"a":1}}}`,
			w.Body.String(),
		)
	})

	t.Run("Error_AlreadyTrashed", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())
		id := uuid.Must(uuid.NewV7())

		uc.On("Delete", mock.Anything, mock.Anything, mock.Anything, id, false).
			Return(nil, documentDomain.ErrAlreadyTrashed).Once()

		w := perform(router, http.MethodDelete, "/v1/json/"+id.String(), "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_InvalidForce", func(t *testing.T) {
		router, _ := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())

		w := perform(router, http.MethodDelete, "/v1/json/"+uuid.Must(uuid.NewV7()).String()+"?force=maybe", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentHandler_Revisions(t *testing.T) {
	t.Run("Success_List", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())
		doc := newTestDocument(`{"a":1}`)
		rev := documentDomain.NewRevision(doc, doc.AuthorID, doc.CreatedAt)

		uc.On("ListRevisions", mock.Anything, mock.Anything, mock.Anything, doc.ID).
			Return([]*documentDomain.Revision{rev}, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+doc.ID.String()+"/revisions", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListRevisionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, rev.ID, resp.Data[0].ID)
		assert.Equal(t, doc.ID, resp.Data[0].Parent)
	})

	t.Run("Success_Get", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())
		doc := newTestDocument(`{"a":1}`)
		rev := documentDomain.NewRevision(doc, doc.AuthorID, doc.CreatedAt)

		uc.On("GetRevision", mock.Anything, mock.Anything, mock.Anything, doc.ID, rev.ID).Return(rev, nil).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+doc.ID.String()+"/revisions/"+rev.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.RevisionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, `{"a":1}`, resp.Content)
	})

	t.Run("Error_NotSupported", func(t *testing.T) {
		router, uc := setupRouter(t, documentDomain.ShapeFlatten, testPrincipal())
		id := uuid.Must(uuid.NewV7())

		uc.On("ListRevisions", mock.Anything, mock.Anything, mock.Anything, id).
			Return(nil, documentDomain.ErrRevisionsNotSupported).Once()

		w := perform(router, http.MethodGet, "/v1/json/"+id.String()+"/revisions", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
