package services

import (
	"testing"

	"glorystream/internal/models"
	"glorystream/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFiltersBuild(t *testing.T) {
	filters := CatalogFilters{
		Category: "Choirs in concert",
		Language: "hindi",
		Region:   " punjab ",
		Entity:   "Grace Church",
		Search:   "choir",
	}

	where, args := filters.build().Where()
	assert.Equal(t,
		"WHERE TRIM(category) = ? AND TRIM(entity_name) = ? AND UPPER(TRIM(language)) = ? AND UPPER(TRIM(entity_region)) = ? AND (title ILIKE ? OR entity_name ILIKE ?)",
		where)
	require.Len(t, args, 6)
	assert.Equal(t, "Choirs in concert", args[0])
	assert.Equal(t, "Grace Church", args[1])
	assert.Equal(t, "HINDI", args[2])
	assert.Equal(t, "PUNJAB", args[3])
	assert.Equal(t, "%choir%", args[4])
}

func TestCatalogFiltersBuildEmpty(t *testing.T) {
	where, args := CatalogFilters{}.build().Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestCatalogFiltersCaseInsensitiveLanguage(t *testing.T) {
	lower := CatalogFilters{Language: "hindi"}.build()
	upper := CatalogFilters{Language: "HINDI"}.build()

	lowerWhere, lowerArgs := lower.Where()
	upperWhere, upperArgs := upper.Where()
	assert.Equal(t, lowerWhere, upperWhere)
	assert.Equal(t, lowerArgs, upperArgs)
}

func TestEffectiveCategory(t *testing.T) {
	assert.Equal(t, models.RegionalCategory, effectiveCategory(""))
	assert.Equal(t, models.RegionalCategory, effectiveCategory("   "))
	assert.Equal(t, "Sermons", effectiveCategory(" Sermons "))
}

// Narrowing for one dimension drops only that dimension's clause:
// adding a language selection can only shrink the region candidate
// predicate, never change which columns it filters on.
func TestFacetNarrowingExcludesOwnDimension(t *testing.T) {
	filters := CatalogFilters{
		Category: "Choirs in concert",
		Language: "hindi",
		Region:   "Punjab",
	}
	base := filters.build()

	regionWhere, regionArgs := base.Without(query.DimRegion).Where()
	assert.Equal(t,
		"WHERE TRIM(category) = ? AND UPPER(TRIM(language)) = ?",
		regionWhere)
	assert.Len(t, regionArgs, 2)

	languageWhere, _ := base.Without(query.DimLanguage).Where()
	assert.Equal(t,
		"WHERE TRIM(category) = ? AND UPPER(TRIM(entity_region)) = ?",
		languageWhere)
}
