// Package pagination implements offset-based paging over gorm queries
// and the metadata block every list endpoint embeds in its response.
package pagination

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// PagedResult holds a single page's worth of rows plus the counts needed
// to compute adjacent pages. Items points at the slice passed to Paginate.
type PagedResult struct {
	Items       any
	Total       int64
	PerPage     int
	CurrentPage int
	LastPage    int
	Path        string
}

// URL identifies the paged collection inside the metadata block.
type URL struct {
	Path     string `json:"path"`
	PageName string `json:"pageName"`
}

// Pagination is the metadata block shared by every list endpoint. The
// next/prev URLs are nil exactly on the respective boundary page.
type Pagination struct {
	Total       int64   `json:"total"`
	PerPage     int     `json:"per_page"`
	CurrentPage int     `json:"current_page"`
	LastPage    int     `json:"last_page"`
	NextPageURL *string `json:"next_page_url"`
	PrevPageURL *string `json:"prev_page_url"`
	URL         URL     `json:"url"`
}

// Paginate runs a count plus an offset/limit query against q and fills
// dest with the requested page. The page number is 1-based and clamped
// to at least 1; a page past the end yields an empty slice with truthful
// coordinates.
func Paginate(q *gorm.DB, path string, page, perPage int, dest any) (*PagedResult, error) {
	if perPage <= 0 {
		perPage = 10
	}

	if page < 1 {
		page = 1
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	err := q.
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(dest).
		Error
	if err != nil {
		return nil, err
	}

	return &PagedResult{
		Items:       dest,
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
	}, nil
}

// Build turns a paged result into the metadata block. The function is
// pure: all counts come straight from the paged query, nothing is
// recomputed here. An empty resourceName falls back to the last segment
// of the result's path.
func Build(p *PagedResult, resourceName string) *Pagination {
	if resourceName == "" {
		segments := strings.Split(strings.Trim(p.Path, "/"), "/")
		resourceName = segments[len(segments)-1]
	}

	pg := &Pagination{
		Total:       p.Total,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		URL: URL{
			Path:     p.Path,
			PageName: resourceName,
		},
	}

	if p.CurrentPage < p.LastPage {
		next := fmt.Sprintf("%s?page=%d", p.Path, p.CurrentPage+1)
		pg.NextPageURL = &next
	}

	if p.CurrentPage > 1 {
		prev := fmt.Sprintf("%s?page=%d", p.Path, p.CurrentPage-1)
		pg.PrevPageURL = &prev
	}

	return pg
}
