package store

// Pagination bounds. Page sizes outside [1, maxPageSize] are clamped
// rather than rejected so that callers always get a usable window.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageParams describes the window of a paginated list query.
// Page is zero-based to match the API surface.
type PageParams struct {
	Page int
	Size int
}

// NewPageParams builds PageParams from raw caller input, clamping values
// into valid ranges. Negative pages become page zero; sizes outside the
// allowed range fall back to the default or maximum.
func NewPageParams(page, size int) PageParams {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageParams{Page: page, Size: size}
}

// Offset returns the row offset for this window.
func (p PageParams) Offset() int {
	return p.Page * p.Size
}

// Page is one window of a paginated result set, along with the totals
// needed for clients to render paging controls.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPage assembles a Page from items, the window they were fetched with,
// and the total number of matching rows.
func NewPage[T any](items []T, params PageParams, totalItems int64) Page[T] {
	// Guard against hand-built params that bypassed NewPageParams.
	totalPages := 0
	if params.Size > 0 {
		totalPages = int(totalItems) / params.Size
		if int(totalItems)%params.Size != 0 {
			totalPages++
		}
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       params.Page,
		Size:       params.Size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
