package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents windowing parameters over an in-memory list.
// Page is zero-based.
type Params struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// Meta represents windowing metadata
type Meta struct {
	Page       int  `json:"page"`
	Size       int  `json:"size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// DefaultSize is the default number of items per page
const DefaultSize = 10

// MaxSize is the maximum number of items per page
const MaxSize = 100

// GetParams extracts windowing parameters from the request query
func GetParams(c *fiber.Ctx) Params {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	size, _ := strconv.Atoi(c.Query("size", strconv.Itoa(DefaultSize)))

	return Params{Page: page, Size: size}.normalize()
}

// normalize clamps params so that zero-value Params behave like the
// defaults. Callers outside the HTTP layer pass Params directly.
func (p Params) normalize() Params {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Window returns the [lo, hi) bounds of the page over a list of the given
// length. A page past the end yields an empty window, not an error.
func (p Params) Window(total int) (int, int) {
	p = p.normalize()
	lo := p.Page * p.Size
	if lo >= total {
		return total, total
	}
	hi := lo + p.Size
	if hi > total {
		hi = total
	}
	return lo, hi
}

// GetMeta calculates windowing metadata
func GetMeta(p Params, total int) Meta {
	p = p.normalize()
	totalPages := total / p.Size
	if total%p.Size > 0 {
		totalPages++
	}

	return Meta{
		Page:       p.Page,
		Size:       p.Size,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page+1 < totalPages,
		HasPrev:    p.Page > 0 && total > 0,
	}
}
