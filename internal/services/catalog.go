// ===============================
// internal/services/catalog.go - Catalog Listing and Facet Resolution
// ===============================

package services

import (
	"context"
	"fmt"

	"glorystream/internal/models"
	"glorystream/internal/query"

	"github.com/jmoiron/sqlx"
)

type CatalogService struct {
	db *sqlx.DB
}

func NewCatalogService(db *sqlx.DB) *CatalogService {
	return &CatalogService{db: db}
}

// CatalogFilters carries the raw facet selections of one request.
// Values are normalized during predicate construction; blank or absent
// selections contribute no filter term.
type CatalogFilters struct {
	Category string
	Theme    string
	Language string
	Region   string
	Entity   string
	Search   string
}

// build assembles the conjunctive predicate for the selections.
// Category, theme and entity name compare exact (trimmed); language
// and region compare case-insensitively; the search term substring-
// matches title OR entity name.
func (fl CatalogFilters) build() *query.Filter {
	f := query.NewFilter()
	f.Equal(query.DimCategory, "category", fl.Category)
	f.Equal(query.DimTheme, "theme", fl.Theme)
	f.Equal(query.DimEntity, "entity_name", fl.Entity)
	f.EqualFold(query.DimLanguage, "language", fl.Language)
	f.EqualFold(query.DimRegion, "entity_region", fl.Region)
	f.Search(fl.Search, "title", "entity_name")
	return f
}

// ===============================
// CATALOG LISTING
// ===============================

func (s *CatalogService) ListCatalog(ctx context.Context, filters CatalogFilters, page query.Page) ([]models.CatalogRecord, error) {
	where, args := filters.build().Where()

	sql := `SELECT id, title, language, category, theme, entity_name, entity_region, media_url, upload_date FROM catalog_videos`
	if where != "" {
		sql += " " + where
	}
	sql += " ORDER BY upload_date DESC, id LIMIT ? OFFSET ?"
	args = append(args, page.Limit, page.Offset)

	var rows []models.CatalogRow
	if err := s.db.SelectContext(ctx, &rows, query.Rebind(sql), args...); err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}

	records := make([]models.CatalogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.External())
	}
	return records, nil
}

func (s *CatalogService) GetCatalogRecord(ctx context.Context, id string) (*models.CatalogRecord, error) {
	var row models.CatalogRow
	sql := query.Rebind(`SELECT id, title, language, category, theme, entity_name, entity_region, media_url, upload_date FROM catalog_videos WHERE id = ?`)
	if err := s.db.GetContext(ctx, &row, sql, id); err != nil {
		return nil, err
	}
	record := row.External()
	return &record, nil
}

// ===============================
// FACET RESOLUTION (CASCADING NARROWING)
// ===============================

// ListFacets computes the legal next choices per facet dimension given
// the selections already made. Each dimension's candidates are scoped
// by every other selected facet but never by itself. Region and entity
// lists are only computed for the regionally structured category; for
// any other category they stay empty so the response shape is stable.
// A request with no category at all defaults to the regionally
// structured category for that gating decision.
func (s *CatalogService) ListFacets(ctx context.Context, filters CatalogFilters) (*models.FacetSet, error) {
	category := effectiveCategory(filters.Category)
	filters.Category = category
	filters.Entity = ""
	filters.Search = ""
	filters.Theme = ""

	base := filters.build()

	languages, err := s.distinctFacet(ctx, "language", true, base.Without(query.DimLanguage))
	if err != nil {
		return nil, err
	}

	facets := &models.FacetSet{
		Languages: languages,
		Regions:   []string{},
		Entities:  []string{},
	}

	if category == models.RegionalCategory {
		regions, err := s.distinctFacet(ctx, "entity_region", false, base.Without(query.DimRegion))
		if err != nil {
			return nil, err
		}
		entities, err := s.distinctFacet(ctx, "entity_name", false, base.Without(query.DimEntity))
		if err != nil {
			return nil, err
		}
		facets.Regions = regions
		facets.Entities = entities
	}

	return facets, nil
}

// effectiveCategory applies the documented default: a facet request
// without a category is scoped to the regionally structured category.
// Applied uniformly to every facet-listing path.
func effectiveCategory(raw string) string {
	category, ok := query.Normalize(raw)
	if !ok {
		return models.RegionalCategory
	}
	return category
}

// distinctFacet lists the distinct non-blank normalized values of one
// column across the rows matching the narrowing predicate, ascending.
func (s *CatalogService) distinctFacet(ctx context.Context, column string, fold bool, f *query.Filter) ([]string, error) {
	expr := "TRIM(" + column + ")"
	if fold {
		expr = "UPPER(" + expr + ")"
	}

	f.NotBlank(column)
	where, args := f.Where()

	sql := "SELECT DISTINCT " + expr + " AS value FROM catalog_videos"
	if where != "" {
		sql += " " + where
	}
	sql += " ORDER BY value ASC"

	values := []string{}
	if err := s.db.SelectContext(ctx, &values, query.Rebind(sql), args...); err != nil {
		return nil, fmt.Errorf("facet query for %s failed: %w", column, err)
	}
	return values, nil
}
