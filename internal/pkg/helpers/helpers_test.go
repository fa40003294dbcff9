package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))

	// Falls back to the default on garbage
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("two hours", time.Minute))
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 25)
	assert.Equal(t, uint64(50), offset)
	assert.Equal(t, 25, limit)

	// Out of range values fall back to defaults
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	offset, limit = CalculateOffsetLimit(2, MaxPageSize+1)
	assert.Equal(t, uint64(DefaultPageSize), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)

	// Page beyond the end clamps to the last page
	info = NewPaginationInfo(45, 9, 10)
	assert.Equal(t, 5, info.CurrentPage)

	// Empty result set still reports one page
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)
}
