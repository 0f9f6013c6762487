// Package pagination holds optional limit/offset handling for list
// endpoints. Collections default to being returned whole; a client that
// asks for a page gets one.
package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// MaxLimit caps a single page.
const MaxLimit = 500

// Params holds pagination parameters extracted from a request. A zero
// Limit means "no paging requested".
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// Apply slices items according to the params. With a zero Limit the whole
// collection (past the offset) is returned.
func Apply[T any](items []T, p Params) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	items = items[p.Offset:]
	if p.Limit > 0 && p.Limit < len(items) {
		items = items[:p.Limit]
	}
	return items
}

// Response wraps a paginated API response.
type Response struct {
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit,omitempty"`
	Offset  int         `json:"offset,omitempty"`
	HasMore bool        `json:"hasMore"`
}

// NewResponse builds a Response from the sliced page and full-set size.
func NewResponse(data interface{}, total int, p Params) *Response {
	end := p.Offset
	if p.Limit > 0 {
		end += p.Limit
	} else {
		end = total
	}
	return &Response{
		Data:    data,
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: end < total,
	}
}
