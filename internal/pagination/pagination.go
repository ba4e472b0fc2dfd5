package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxPerPage = 100

type Params struct {
	Page    int
	PerPage int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Window returns the [start, end) slice bounds of this page within total items.
func (p Params) Window(total int) (int, int) {
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PerPage
	if end > total {
		end = total
	}
	return start, end
}

type Meta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

func NewMeta(p Params, total int64) Meta {
	last := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if last < 1 {
		last = 1
	}
	return Meta{
		CurrentPage: p.Page,
		LastPage:    last,
		PerPage:     p.PerPage,
		Total:       total,
	}
}

// FromQuery reads page/per_page, clamping bad values instead of failing.
func FromQuery(c *gin.Context, defaultPerPage int) Params {
	if defaultPerPage <= 0 || defaultPerPage > MaxPerPage {
		defaultPerPage = 15
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = defaultPerPage
	}

	return Params{Page: page, PerPage: perPage}
}
