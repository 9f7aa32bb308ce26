package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name       string
		limit      string
		offset     string
		page       string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", "", "", 20, 0},
		{"explicit_limit_offset", "30", "60", "", 30, 60},
		{"limit_above_max_clamped", "101", "", "", 100, 0},
		{"limit_far_above_max_clamped", "5000", "", "", 100, 0},
		{"zero_limit_clamped_to_one", "0", "", "", 1, 0},
		{"negative_limit_clamped_to_one", "-5", "", "", 1, 0},
		{"negative_offset_floored", "10", "-20", "", 10, 0},
		{"non_numeric_limit_falls_back", "abc", "", "", 20, 0},
		{"non_numeric_offset_falls_back", "10", "xyz", "", 10, 0},
		{"page_converted_to_offset", "25", "", "3", 25, 50},
		{"page_one_is_zero_offset", "10", "", "1", 10, 0},
		{"page_below_one_floored", "10", "", "0", 10, 0},
		{"offset_wins_over_page", "10", "40", "3", 10, 40},
		{"page_with_default_limit", "", "", "2", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ParsePage(tt.limit, tt.offset, tt.page)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.wantOffset, page.Offset)
		})
	}
}
