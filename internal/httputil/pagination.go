package httputil

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination defaults shared by list endpoints.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

var (
	errInvalidOffset = errors.New("invalid offset parameter: must be a non-negative integer")
	errInvalidPage   = errors.New("invalid page parameter: must be a positive integer")
	errPageAndOffset = errors.New("offset and page cannot be combined")
)

// ParsePagination reads offset/limit, or the page/per_page pair.
// per_page is an alias for limit; page is 1-based and converted to an offset. Limit defaults to DefaultLimit and cannot exceed MaxLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	limitStr, ok := c.GetQuery("per_page")
	if !ok {
		limitStr = c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxLimit)
	}

	offsetStr, hasOffset := c.GetQuery("offset")
	pageStr, hasPage := c.GetQuery("page")
	switch {
	case hasOffset && hasPage:
		return 0, 0, errPageAndOffset
	case hasPage:
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 || page-1 > math.MaxInt/limit {
			return 0, 0, errInvalidPage
		}
		return (page - 1) * limit, limit, nil
	case hasOffset:
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, 0, errInvalidOffset
		}
	}

	return offset, limit, nil
}
