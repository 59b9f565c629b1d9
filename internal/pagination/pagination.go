// Package pagination computes page windows and metadata for list endpoints.
package pagination

const (
	// DefaultPage is used when the caller omits pageNumber.
	DefaultPage = 1
	// DefaultPageSize is used when the caller omits pageSize.
	DefaultPageSize = 5
	// MaxPageSize caps pageSize so a single request cannot pull the whole table.
	MaxPageSize = 100
)

// Params is a normalized page request.
type Params struct {
	Page int
	Size int
}

// Normalize clamps raw query values into a valid page request: page is at
// least 1, size falls back to the default when non-positive and is capped at
// MaxPageSize.
func Normalize(page, size int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{Page: page, Size: size}
}

// Offset is the number of items to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit is the maximum number of items in the page window.
func (p Params) Limit() int {
	return p.Size
}

// Metadata describes a page of a listing. It is returned in the response body
// and serialized into the X-Pagination header.
type Metadata struct {
	TotalItems  int64 `json:"totalItems"`
	PageSize    int   `json:"pageSize"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// NewMetadata builds page metadata for a total item count. TotalPages uses
// ceiling division, so a partially filled last page counts as one page and an
// empty listing has zero pages. Out-of-range pages keep the true totals.
func NewMetadata(totalItems int64, p Params) Metadata {
	totalPages := int((totalItems + int64(p.Size) - 1) / int64(p.Size))
	return Metadata{
		TotalItems:  totalItems,
		PageSize:    p.Size,
		CurrentPage: p.Page,
		TotalPages:  totalPages,
	}
}
