package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsValidate(t *testing.T) {
	assert.NoError(t, PageParams{From: 0, Size: 20}.Validate())
	assert.NoError(t, PageParams{From: 99, Size: 1}.Validate())
	assert.ErrorIs(t, PageParams{From: -1, Size: 20}.Validate(), ErrInvalidPage)
	assert.ErrorIs(t, PageParams{From: 0, Size: 0}.Validate(), ErrInvalidPage)
	assert.ErrorIs(t, PageParams{From: 0, Size: -5}.Validate(), ErrInvalidPage)
}

func TestPageParamsLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		wantLimit  uint64
		wantOffset uint64
	}{
		{name: "first page", from: 0, size: 20, wantLimit: 20, wantOffset: 0},
		{name: "mid page index maps to page start", from: 25, size: 10, wantLimit: 10, wantOffset: 20},
		{name: "exact page boundary", from: 30, size: 10, wantLimit: 10, wantOffset: 30},
		{name: "defaults applied", from: -5, size: 0, wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := PageParams{From: tt.from, Size: tt.size}.LimitOffset()
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
