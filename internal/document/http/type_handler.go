package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	"github.com/allisson/jsondocs/internal/document/http/dto"
	"github.com/allisson/jsondocs/internal/httputil"
)

// ContentTypeReader reads registered content types.
type ContentTypeReader interface {
	Get(name string) (contentTypeDomain.ContentType, error)
	RESTTypes() []contentTypeDomain.ContentType
}

// TypeHandler describes the content types exposed over REST.
type TypeHandler struct {
	contentTypes ContentTypeReader
	logger       *slog.Logger
}

// NewTypeHandler creates a new TypeHandler.
func NewTypeHandler(contentTypes ContentTypeReader, logger *slog.Logger) *TypeHandler {
	return &TypeHandler{
		contentTypes: contentTypes,
		logger:       logger,
	}
}

// ListHandler lists the REST-visible content types.
// GET /v1/types
func (h *TypeHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapContentTypesToListResponse(h.contentTypes.RESTTypes()))
}

// GetHandler describes one content type. Types hidden from REST are reported as not found.
// GET /v1/types/:name
func (h *TypeHandler) GetHandler(c *gin.Context) {
	ct, err := h.contentTypes.Get(c.Param("name"))
	if err == nil && !ct.ShowInREST {
		err = contentTypeDomain.ErrContentTypeNotFound
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapContentTypeToResponse(ct))
}
