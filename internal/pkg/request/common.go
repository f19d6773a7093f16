package request

import (
	"net/http"

	"github.com/lendit/lendit-backend/internal/pkg/apperror"
)

// ErrInvalidPage is returned when from/size query parameters are out of range.
var ErrInvalidPage = apperror.New(http.StatusBadRequest, "from must be >= 0 and size must be > 0")

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// PageParams holds the offset-style paging parameters the API exposes.
// The window actually fetched starts at the page containing `from`,
// i.e. page index from/size with size items per page.
type PageParams struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=20"`
}

// Validate checks the paging parameters.
func (p PageParams) Validate() error {
	if p.From < 0 || p.Size <= 0 {
		return ErrInvalidPage
	}
	return nil
}

// LimitOffset converts the from/size window into SQL LIMIT/OFFSET values,
// falling back to the defaults for out-of-range inputs.
func (p PageParams) LimitOffset() (limit, offset uint64) {
	size := p.Size
	if size <= 0 {
		size = 20
	}
	from := p.From
	if from < 0 {
		from = 0
	}
	return uint64(size), uint64((from / size) * size)
}
