// ===============================
// internal/query/filter.go - Typed Conjunctive Predicate Builder
// ===============================

package query

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dimension tags a predicate clause with the facet it filters on, so a
// caller can rebuild the predicate without selected dimensions (used by
// the cascading facet narrowing: the candidate list for a dimension is
// computed from every other selected facet, never from itself).
type Dimension string

const (
	DimCategory Dimension = "category"
	DimTheme    Dimension = "theme"
	DimLanguage Dimension = "language"
	DimRegion   Dimension = "region"
	DimEntity   Dimension = "entity"
	DimSearch   Dimension = "search"
)

type clause struct {
	dim  Dimension
	expr string
	args []interface{}
}

// Filter collects tagged predicate clauses and renders them once as a
// single parameterized WHERE conjunction. Zero clauses render to the
// universal predicate (empty WHERE). Clause methods normalize their
// inputs and silently skip absent values, so omitting a facet never
// filters on it.
type Filter struct {
	clauses []clause
}

func NewFilter() *Filter {
	return &Filter{}
}

// Equal adds an exact trimmed-equality clause. Value case is preserved:
// category, theme and entity name are a controlled vocabulary.
func (f *Filter) Equal(dim Dimension, column, value string) *Filter {
	v, ok := Normalize(value)
	if !ok {
		return f
	}
	f.clauses = append(f.clauses, clause{
		dim:  dim,
		expr: "TRIM(" + column + ") = ?",
		args: []interface{}{v},
	})
	return f
}

// EqualFold adds a case- and whitespace-insensitive equality clause,
// for dimensions whose stored values arrive in mixed case (language,
// region).
func (f *Filter) EqualFold(dim Dimension, column, value string) *Filter {
	v, ok := NormalizeFold(value)
	if !ok {
		return f
	}
	f.clauses = append(f.clauses, clause{
		dim:  dim,
		expr: "UPPER(TRIM(" + column + ")) = ?",
		args: []interface{}{v},
	})
	return f
}

// Search adds a case-insensitive substring match over one or more
// columns, OR-ed together inside the outer conjunction.
func (f *Filter) Search(term string, columns ...string) *Filter {
	v, ok := Normalize(term)
	if !ok || len(columns) == 0 {
		return f
	}
	pattern := "%" + v + "%"
	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE ?")
		args = append(args, pattern)
	}
	f.clauses = append(f.clauses, clause{
		dim:  DimSearch,
		expr: "(" + strings.Join(parts, " OR ") + ")",
		args: args,
	})
	return f
}

// NotBlank requires the column to be non-null and non-blank after
// trimming. Untagged: narrowing never removes it.
func (f *Filter) NotBlank(column string) *Filter {
	f.clauses = append(f.clauses, clause{
		expr: "TRIM(COALESCE(" + column + ", '')) <> ''",
	})
	return f
}

// Without returns a copy of the filter with the clauses for the given
// dimensions removed. Untagged clauses always survive.
func (f *Filter) Without(dims ...Dimension) *Filter {
	out := NewFilter()
	for _, c := range f.clauses {
		excluded := false
		for _, d := range dims {
			if c.dim != "" && c.dim == d {
				excluded = true
				break
			}
		}
		if !excluded {
			out.clauses = append(out.clauses, c)
		}
	}
	return out
}

// Len reports the number of clauses in the conjunction.
func (f *Filter) Len() int {
	return len(f.clauses)
}

// Where renders the conjunction as a "WHERE a AND b ..." fragment with
// "?" placeholders, plus its bindings in order. Empty filter renders to
// ("", nil). Callers compose the full query and rebind once.
func (f *Filter) Where() (string, []interface{}) {
	if len(f.clauses) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(f.clauses))
	var args []interface{}
	for _, c := range f.clauses {
		parts = append(parts, c.expr)
		args = append(args, c.args...)
	}
	return "WHERE " + strings.Join(parts, " AND "), args
}

// Rebind converts "?" placeholders to the PostgreSQL $n form.
func Rebind(sql string) string {
	return sqlx.Rebind(sqlx.DOLLAR, sql)
}
