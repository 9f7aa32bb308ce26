// ===============================
// internal/query/paginate.go - Pagination Clamping
// ===============================

package query

import "strconv"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a validated limit/offset pair. Always in range, never an
// error: pagination input problems resolve to defaults or clamps.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage accepts both supported input shapes: limit+offset directly,
// or 1-based page+limit. An explicit offset wins over page when both
// are supplied. Non-numeric or missing values fall back to the
// defaults (limit 20, offset 0); numeric values are clamped to
// limit [1,100], offset >= 0, page >= 1.
func ParsePage(limitRaw, offsetRaw, pageRaw string) Page {
	limit := DefaultLimit
	if limitRaw != "" {
		if parsed, err := strconv.Atoi(limitRaw); err == nil {
			limit = clampLimit(parsed)
		}
	}

	offset := 0
	if offsetRaw != "" {
		if parsed, err := strconv.Atoi(offsetRaw); err == nil && parsed > 0 {
			offset = parsed
		}
	} else if pageRaw != "" {
		if parsed, err := strconv.Atoi(pageRaw); err == nil {
			page := parsed
			if page < 1 {
				page = 1
			}
			offset = (page - 1) * limit
		}
	}

	return Page{Limit: limit, Offset: offset}
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
