package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"plain_value", "Hindi", "Hindi", true},
		{"padded_value", "  Punjab  ", "Punjab", true},
		{"empty", "", "", false},
		{"whitespace_only", "   ", "", false},
		{"tab_and_newline", "\t\n", "", false},
		{"inner_whitespace_kept", "Choirs in concert", "Choirs in concert", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeFold(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"lowercase", "hindi", "HINDI", true},
		{"mixed_case_padded", "  HiNdI ", "HINDI", true},
		{"blank", "  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeFold(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"Hindi", " Hindi ", "", "  ", "Grace Church"} {
		once, okOnce := Normalize(raw)
		twice, okTwice := Normalize(once)
		assert.Equal(t, once, twice)
		assert.Equal(t, okOnce, okTwice)

		foldOnce, _ := NormalizeFold(raw)
		foldTwice, _ := NormalizeFold(foldOnce)
		assert.Equal(t, foldOnce, foldTwice)
	}
}
