package models

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogRowExternal(t *testing.T) {
	row := CatalogRow{
		ID:           "v1",
		Title:        sql.NullString{String: "Easter Choir Special", Valid: true},
		Language:     sql.NullString{String: "Hindi", Valid: true},
		Category:     sql.NullString{String: RegionalCategory, Valid: true},
		Theme:        sql.NullString{},
		EntityName:   sql.NullString{String: "Grace Church", Valid: true},
		EntityRegion: sql.NullString{String: "Punjab", Valid: true},
		MediaURL:     sql.NullString{String: "https://cdn.example.org/v1.mp4", Valid: true},
		UploadDate:   sql.NullString{String: "2023-04-09", Valid: true},
	}

	record := row.External()
	assert.Equal(t, CatalogRecord{
		ID:           "v1",
		Title:        "Easter Choir Special",
		Language:     "Hindi",
		Category:     "Choirs in concert",
		Theme:        "",
		EntityName:   "Grace Church",
		EntityRegion: "Punjab",
		MediaURL:     "https://cdn.example.org/v1.mp4",
		UploadDate:   "2023-04-09",
	}, record)
	assert.True(t, record.IsPlayable())
}
