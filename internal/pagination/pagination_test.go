package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 15))
	assert.Equal(t, 1, TotalPages(1, 15))
	assert.Equal(t, 1, TotalPages(15, 15))
	assert.Equal(t, 2, TotalPages(16, 15))
	assert.Equal(t, 7, TotalPages(100, 15))
	assert.Equal(t, 1, TotalPages(100, 0), "non-positive per-page collapses to one page")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 10))
	assert.Equal(t, 1, ClampPage(-3, 10))
	assert.Equal(t, 5, ClampPage(5, 10))
	assert.Equal(t, 10, ClampPage(99, 10))
}

func TestBuildSinglePage(t *testing.T) {
	p := Build(1, 10, 15, "/news", nil)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.ShouldShow())
	assert.False(t, p.HasPrev)
	assert.False(t, p.HasNext)
}

func TestBuildWindowCentered(t *testing.T) {
	// 300 rows at 15 per page = 20 pages; current page 10 gives 8..12.
	p := Build(10, 300, 15, "/news", nil)
	require.Equal(t, 20, p.TotalPages)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, "/news?page=9", p.PrevURL)
	assert.Equal(t, "/news?page=11", p.NextURL)

	var numbers []int
	ellipses := 0
	for _, pg := range p.Pages {
		if pg.IsEllipsis {
			ellipses++
			continue
		}
		numbers = append(numbers, pg.Number)
	}
	assert.Equal(t, []int{1, 8, 9, 10, 11, 12, 20}, numbers)
	assert.Equal(t, 2, ellipses)
}

func TestBuildWindowAtStart(t *testing.T) {
	p := Build(1, 300, 15, "/news", nil)
	var numbers []int
	for _, pg := range p.Pages {
		if !pg.IsEllipsis {
			numbers = append(numbers, pg.Number)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 20}, numbers)
	assert.True(t, p.Pages[0].IsCurrent)
	assert.False(t, p.HasPrev)
}

func TestBuildWindowAtEnd(t *testing.T) {
	p := Build(20, 300, 15, "/news", nil)
	var numbers []int
	for _, pg := range p.Pages {
		if !pg.IsEllipsis {
			numbers = append(numbers, pg.Number)
		}
	}
	assert.Equal(t, []int{1, 16, 17, 18, 19, 20}, numbers)
	assert.False(t, p.HasNext)
}

func TestBuildClampsOutOfRangePage(t *testing.T) {
	p := Build(50, 30, 15, "/news", nil)
	assert.Equal(t, 2, p.CurrentPage)
	assert.False(t, p.HasNext)
}

func TestBuildPreservesQueryParams(t *testing.T) {
	params := url.Values{}
	params.Set("search", "加拿大")
	params.Set("page", "3")
	params.Set("empty", "")

	p := Build(2, 100, 15, "/admin/news", params)
	assert.Contains(t, p.PrevURL, "search=")
	assert.NotContains(t, p.PrevURL, "empty=")
	assert.Contains(t, p.PrevURL, "page=1")
	// the stale page param from the request must not survive
	assert.NotContains(t, p.PrevURL, "page=3")
}

func TestBuildFewerPagesThanWindow(t *testing.T) {
	p := Build(2, 45, 15, "/case", nil)
	require.Equal(t, 3, p.TotalPages)
	assert.Len(t, p.Pages, 3)
	for _, pg := range p.Pages {
		assert.False(t, pg.IsEllipsis)
	}
}
