package paginator

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Paginate struct {
	From, Size, Page int
}

// New reads page and page_size from the query string. Non-numeric, zero or
// out-of-range values fall back to page 1 with the default size.
func New(c *gin.Context) Paginate {
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}

	return Paginate{
		From: (page - 1) * size,
		Size: size,
		Page: page,
	}
}
