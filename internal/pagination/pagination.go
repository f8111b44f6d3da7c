package pagination

import (
	"fmt"
	"net/url"
)

// WindowSize is how many page numbers are shown around the current page.
const WindowSize = 5

// Page is a single entry in the rendered pager: a numbered link, the
// current page, or an ellipsis marker.
type Page struct {
	Number     int
	URL        string
	IsCurrent  bool
	IsEllipsis bool
}

// Pagination holds everything the pager template needs.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	PerPage     int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	Pages       []Page
}

// TotalPages computes the page count for totalItems rows at perPage rows
// per page. Degenerate inputs collapse to a single page.
func TotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds a 1-based page number to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Build computes the pager for an entity list. baseURL is the path
// without query string; queryParams are the active filters to preserve in
// page links ("page" itself is stripped). The window is centered on the
// current page, clamped to [1, totalPages], and re-expanded toward the
// available side when clamped; first/last pages are appended with
// ellipsis markers when they fall outside the window.
func Build(currentPage int, totalItems int64, perPage int, baseURL string, queryParams url.Values) Pagination {
	totalPages := TotalPages(totalItems, perPage)
	currentPage = ClampPage(currentPage, totalPages)

	query := ""
	if queryParams != nil {
		params := make(url.Values)
		for k, v := range queryParams {
			if k != "page" && len(v) > 0 && v[0] != "" {
				params[k] = v
			}
		}
		query = params.Encode()
	}

	pageURL := func(page int) string {
		if query != "" {
			return fmt.Sprintf("%s?%s&page=%d", baseURL, query, page)
		}
		return fmt.Sprintf("%s?page=%d", baseURL, page)
	}

	p := Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     perPage,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
	if p.HasPrev {
		p.PrevURL = pageURL(currentPage - 1)
	}
	if p.HasNext {
		p.NextURL = pageURL(currentPage + 1)
	}

	start := currentPage - WindowSize/2
	if start < 1 {
		start = 1
	}
	end := start + WindowSize - 1
	if end > totalPages {
		end = totalPages
		start = end - WindowSize + 1
		if start < 1 {
			start = 1
		}
	}

	if start > 1 {
		p.Pages = append(p.Pages, Page{Number: 1, URL: pageURL(1)})
		if start > 2 {
			p.Pages = append(p.Pages, Page{IsEllipsis: true})
		}
	}

	for i := start; i <= end; i++ {
		p.Pages = append(p.Pages, Page{
			Number:    i,
			URL:       pageURL(i),
			IsCurrent: i == currentPage,
		})
	}

	if end < totalPages {
		if end < totalPages-1 {
			p.Pages = append(p.Pages, Page{IsEllipsis: true})
		}
		p.Pages = append(p.Pages, Page{Number: totalPages, URL: pageURL(totalPages)})
	}

	return p
}

// ShouldShow reports whether the pager renders at all.
func (p Pagination) ShouldShow() bool {
	return p.TotalPages > 1
}
