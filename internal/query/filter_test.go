package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEmptyIsUniversal(t *testing.T) {
	where, args := NewFilter().Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestFilterEqual(t *testing.T) {
	f := NewFilter()
	f.Equal(DimCategory, "category", " Choirs in concert ")

	where, args := f.Where()
	assert.Equal(t, "WHERE TRIM(category) = ?", where)
	require.Len(t, args, 1)
	// exact comparison: trimmed, case preserved
	assert.Equal(t, "Choirs in concert", args[0])
}

func TestFilterEqualFold(t *testing.T) {
	f := NewFilter()
	f.EqualFold(DimLanguage, "language", " hindi ")

	where, args := f.Where()
	assert.Equal(t, "WHERE UPPER(TRIM(language)) = ?", where)
	require.Len(t, args, 1)
	assert.Equal(t, "HINDI", args[0])
}

func TestFilterBlankValueAddsNoClause(t *testing.T) {
	f := NewFilter()
	f.Equal(DimCategory, "category", "   ")
	f.EqualFold(DimLanguage, "language", "")
	f.Search("  ", "title", "entity_name")

	assert.Equal(t, 0, f.Len())
	where, _ := f.Where()
	assert.Empty(t, where)
}

func TestFilterConjunction(t *testing.T) {
	f := NewFilter()
	f.Equal(DimCategory, "category", "Choirs in concert")
	f.EqualFold(DimLanguage, "language", "hindi")
	f.Search("grace", "title", "entity_name")

	where, args := f.Where()
	assert.Equal(t,
		"WHERE TRIM(category) = ? AND UPPER(TRIM(language)) = ? AND (title ILIKE ? OR entity_name ILIKE ?)",
		where)
	require.Len(t, args, 4)
	assert.Equal(t, "%grace%", args[2])
	assert.Equal(t, "%grace%", args[3])
}

func TestFilterNotBlank(t *testing.T) {
	f := NewFilter()
	f.NotBlank("media_url")

	where, args := f.Where()
	assert.Equal(t, "WHERE TRIM(COALESCE(media_url, '')) <> ''", where)
	assert.Nil(t, args)
}

func TestFilterWithout(t *testing.T) {
	f := NewFilter()
	f.Equal(DimCategory, "category", "Choirs in concert")
	f.EqualFold(DimLanguage, "language", "hindi")
	f.EqualFold(DimRegion, "entity_region", "punjab")
	f.Search("grace", "title")
	f.NotBlank("media_url")

	narrowed := f.Without(DimRegion, DimSearch)
	where, args := narrowed.Where()
	assert.Equal(t,
		"WHERE TRIM(category) = ? AND UPPER(TRIM(language)) = ? AND TRIM(COALESCE(media_url, '')) <> ''",
		where)
	assert.Len(t, args, 2)

	// the original filter is untouched
	assert.Equal(t, 5, f.Len())
}

func TestFilterWithoutLeavesUntaggedClauses(t *testing.T) {
	f := NewFilter()
	f.NotBlank("telecast_date")

	narrowed := f.Without(DimCategory, DimLanguage, DimRegion, DimEntity, DimSearch)
	assert.Equal(t, 1, narrowed.Len())
}

func TestRebind(t *testing.T) {
	sql := Rebind("SELECT * FROM catalog_videos WHERE TRIM(category) = ? AND UPPER(TRIM(language)) = ? LIMIT ? OFFSET ?")
	assert.Equal(t,
		"SELECT * FROM catalog_videos WHERE TRIM(category) = $1 AND UPPER(TRIM(language)) = $2 LIMIT $3 OFFSET $4",
		sql)
}
