package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPageOf(t *testing.T) {
	tests := []struct {
		name        string
		number      *int
		size        *int
		defaultSize int
		want        Page
		wantOffset  uint64
	}{
		{"defaults", nil, nil, 1000, Page{Number: 1, Size: 1000}, 0},
		{"configured default", nil, nil, 50, Page{Number: 1, Size: 50}, 0},
		{"unset default falls back", nil, nil, 0, Page{Number: 1, Size: DefaultPageSize}, 0},
		{"explicit", intPtr(3), intPtr(10), 1000, Page{Number: 3, Size: 10}, 20},
		{"only page", intPtr(2), nil, 100, Page{Number: 2, Size: 100}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageOf(tt.number, tt.size, tt.defaultSize)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, got.Offset())
			assert.Equal(t, uint64(tt.want.Size), got.Limit())
		})
	}
}
