package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest_Normalization(t *testing.T) {
	req := NewRequest(0, 0)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, DefaultLimit, req.Limit)

	req = NewRequest(-5, -1)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, DefaultLimit, req.Limit)

	req = NewRequest(3, 500)
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, MaxLimit, req.Limit)
}

func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, NewRequest(1, 10).Offset())
	assert.Equal(t, 10, NewRequest(2, 10).Offset())
	assert.Equal(t, 40, NewRequest(5, 10).Offset())
}

func TestNewPage_TotalPages(t *testing.T) {
	// 25 items at a page size of 10 span exactly 3 pages
	req := NewRequest(1, 10)

	page := NewPage(make([]string, 10), 25, req)
	assert.Equal(t, 10, len(page.Items))
	assert.Equal(t, int64(25), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	page = NewPage(make([]string, 5), 25, NewRequest(3, 10))
	assert.Equal(t, 5, len(page.Items))
	assert.Equal(t, 3, page.TotalPages)
}

func TestNewPage_PastTheEnd(t *testing.T) {
	req := NewRequest(4, 10)

	page := NewPage([]string(nil), 25, req)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 0, len(page.Items))
	assert.Equal(t, int64(25), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 4, page.Page)
}

func TestNewPage_Empty(t *testing.T) {
	page := NewPage([]int{}, 0, NewRequest(1, 10))
	assert.Equal(t, 0, len(page.Items))
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestNewPage_ExactMultiple(t *testing.T) {
	page := NewPage(make([]int, 10), 30, NewRequest(1, 10))
	assert.Equal(t, 3, page.TotalPages)
}
