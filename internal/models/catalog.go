// ===============================
// internal/models/catalog.go
// ===============================

package models

import (
	"database/sql"
	"strings"
)

// RegionalCategory is the one catalog category whose records carry
// region and entity facets. Facet listings for every other category
// return empty region/entity sets.
const RegionalCategory = "Choirs in concert"

// CatalogRecord is the external shape of a ministry-video catalog row.
// Every field is always present in JSON so the client shape is stable
// across rows; null columns project to empty strings.
type CatalogRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Language     string `json:"language"`
	Category     string `json:"category"`
	Theme        string `json:"theme"`
	EntityName   string `json:"entityName"`
	EntityRegion string `json:"entityRegion"`
	MediaURL     string `json:"mediaUrl"`
	UploadDate   string `json:"uploadDate"`
}

// CatalogRow is the storage shape. Legacy data has nullable text
// columns, scanned as NullString and projected on the way out.
type CatalogRow struct {
	ID           string         `db:"id"`
	Title        sql.NullString `db:"title"`
	Language     sql.NullString `db:"language"`
	Category     sql.NullString `db:"category"`
	Theme        sql.NullString `db:"theme"`
	EntityName   sql.NullString `db:"entity_name"`
	EntityRegion sql.NullString `db:"entity_region"`
	MediaURL     sql.NullString `db:"media_url"`
	UploadDate   sql.NullString `db:"upload_date"`
}

// External projects the row to its external field names. Pure mapping,
// no filtering.
func (r CatalogRow) External() CatalogRecord {
	return CatalogRecord{
		ID:           r.ID,
		Title:        r.Title.String,
		Language:     r.Language.String,
		Category:     r.Category.String,
		Theme:        r.Theme.String,
		EntityName:   r.EntityName.String,
		EntityRegion: r.EntityRegion.String,
		MediaURL:     r.MediaURL.String,
		UploadDate:   r.UploadDate.String,
	}
}

// IsPlayable reports whether the record carries a media link.
func (r CatalogRecord) IsPlayable() bool {
	return strings.TrimSpace(r.MediaURL) != ""
}

// FacetSet is the facet-listing response. Regions and Entities are
// always present — empty slices, never null, when the category is not
// the regionally structured one.
type FacetSet struct {
	Languages []string `json:"languages"`
	Regions   []string `json:"regions"`
	Entities  []string `json:"entities"`
}
