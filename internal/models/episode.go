// ===============================
// internal/models/episode.go
// ===============================

package models

import (
	"database/sql"
	"strings"
)

// EpisodeRecord is the external shape of a telecast-episode row.
type EpisodeRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MediaURL     string `json:"mediaUrl"`
	UploadDate   string `json:"uploadDate"`
	TelecastDate string `json:"telecastDate"`
	SeriesCode   string `json:"seriesCode"`
}

// EpisodeRow is the storage shape. telecast_date is free-form legacy
// text and may be null or blank.
type EpisodeRow struct {
	ID           string         `db:"id"`
	Title        sql.NullString `db:"title"`
	MediaURL     sql.NullString `db:"media_url"`
	UploadDate   sql.NullString `db:"upload_date"`
	TelecastDate sql.NullString `db:"telecast_date"`
	SeriesCode   sql.NullString `db:"series_code"`
}

// External projects the row to its external field names.
func (r EpisodeRow) External() EpisodeRecord {
	return EpisodeRecord{
		ID:           r.ID,
		Title:        r.Title.String,
		MediaURL:     r.MediaURL.String,
		UploadDate:   r.UploadDate.String,
		TelecastDate: r.TelecastDate.String,
		SeriesCode:   r.SeriesCode.String,
	}
}

// IsPlayable reports whether the episode carries a media link.
func (e EpisodeRecord) IsPlayable() bool {
	return strings.TrimSpace(e.MediaURL) != ""
}

// MonthFacet pairs a two-digit month code with its display name, for
// callers that request named months.
type MonthFacet struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

var monthNames = map[string]string{
	"01": "January",
	"02": "February",
	"03": "March",
	"04": "April",
	"05": "May",
	"06": "June",
	"07": "July",
	"08": "August",
	"09": "September",
	"10": "October",
	"11": "November",
	"12": "December",
}

// MonthName resolves a two-digit month code to its English name. An
// unknown or malformed code echoes back unchanged, never errors.
func MonthName(code string) string {
	if name, ok := monthNames[code]; ok {
		return name
	}
	return code
}
