package models

// Error codes carried by unsuccessful envelopes.
const (
	CodeNotFound = "not_found"
	CodeInvalid  = "invalid"
	CodeConflict = "conflict"
)

// Envelope is the response shape shared by the remote API and the local
// fallback collections. List operations use Envelope[[]T] with pagination and
// stats at the top level; single-record operations use Envelope[*T].
type Envelope[T any] struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       T                 `json:"data"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Stats      Stats             `json:"stats,omitempty"`
	Error      string            `json:"error,omitempty"`
	Code       string            `json:"code,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Fallback   bool              `json:"_fallback,omitempty"`
}

// Failure builds an unsuccessful envelope.
func Failure[T any](code, msg string) *Envelope[T] {
	return &Envelope[T]{Success: false, Error: msg, Code: code}
}

// Stats holds aggregate counts computed over a whole collection.
type Stats map[string]int

// Pagination describes one page of a filtered collection.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination computes page metadata for total filtered records.
// An empty collection has zero pages.
func NewPagination(page, limit, total int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := (total + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}

// Bounds returns the slice bounds of the page within n filtered records.
// A page past the end yields an empty range.
func (p Pagination) Bounds(n int) (int, int) {
	if p.Limit < 1 || p.Page < 1 || p.Page-1 > n/p.Limit {
		return n, n
	}
	start := min((p.Page-1)*p.Limit, n)
	end := min(start+p.Limit, n)
	return start, end
}

// Blob is a binary document produced by an export endpoint.
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}
