package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	page, size := clampPage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageSize, size)

	page, size = clampPage(-3, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageSize, size)

	page, size = clampPage(4, 20)
	assert.Equal(t, 4, page)
	assert.Equal(t, 20, size)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, totalPages(0, 8))
	assert.Equal(t, 1, totalPages(8, 8))
	assert.Equal(t, 2, totalPages(9, 8))
	assert.Equal(t, 13, totalPages(100, 8))
}
