package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Request is a normalized page request. Page numbering starts at 1 and the
// limit is clamped to MaxLimit rather than rejected.
type Request struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func NewRequest(page, limit int) Request {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{Page: page, Limit: limit}
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Page is the envelope returned for every paginated listing. A page number
// past the end yields an empty Items slice with the totals intact.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, total int64, req Request) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int(total) / req.Limit
	if int(total)%req.Limit != 0 {
		totalPages++
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
