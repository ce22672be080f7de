package http

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 30
	maxPageSize     = 100
)

type paging struct {
	Page     int32
	PageSize int32
}

// parsePaging reads page and page_size query parameters, clamping to sane
// bounds. Paging mechanics live entirely at this layer.
func parsePaging(r *http.Request) paging {
	pg := paging{Page: 1, PageSize: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			pg.Page = int32(v)
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			pg.PageSize = int32(v)
			if pg.PageSize > maxPageSize {
				pg.PageSize = maxPageSize
			}
		}
	}
	return pg
}
