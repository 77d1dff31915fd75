package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
	}{
		{"defaults applied", 0, 0, 1, 10},
		{"negative page clamped", -3, 5, 1, 5},
		{"limit capped", 2, 500, 2, 100},
		{"huge page capped", 1 << 62, 10, maxPage, 10},
		{"valid passthrough", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Normalize(tt.page, tt.limit, 10, 100)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 5, Limit: 10}.Offset())
}

func TestOffset_HugePageStaysInRange(t *testing.T) {
	params := Normalize(1<<62, 100, 10, 100)

	assert.GreaterOrEqual(t, params.Offset(), 0, "offset never goes negative")
}
