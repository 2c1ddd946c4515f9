// Package http provides the REST handlers for documents and content types.
package http

import (
	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	authHTTP "github.com/allisson/jsondocs/internal/auth/http"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

const contentTypeKey = "content_type"

var errNoPrincipal = apperrors.Wrap(apperrors.ErrUnauthorized, "no authenticated principal")

// WithContentType binds the routes of a group to one content type.
func WithContentType(ct contentTypeDomain.ContentType) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contentTypeKey, ct)
		c.Next()
	}
}

func contentTypeFrom(c *gin.Context) (contentTypeDomain.ContentType, error) {
	if v, ok := c.Get(contentTypeKey); ok {
		if ct, ok := v.(contentTypeDomain.ContentType); ok {
			return ct, nil
		}
	}
	return contentTypeDomain.ContentType{}, contentTypeDomain.ErrContentTypeNotFound
}

func principalFrom(c *gin.Context) (*authDomain.Principal, error) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		return nil, errNoPrincipal
	}
	return principal, nil
}

// optionalPrincipal returns the authenticated principal, or nil for anonymous readers.
func optionalPrincipal(c *gin.Context) *authDomain.Principal {
	principal, _ := authHTTP.GetPrincipal(c.Request.Context())
	return principal
}
