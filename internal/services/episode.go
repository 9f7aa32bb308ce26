// ===============================
// internal/services/episode.go - Telecast Calendar Facets and Listing
// ===============================

package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"glorystream/internal/models"
	"glorystream/internal/query"

	"github.com/jmoiron/sqlx"
)

type EpisodeService struct {
	db *sqlx.DB
}

func NewEpisodeService(db *sqlx.DB) *EpisodeService {
	return &EpisodeService{db: db}
}

// Accepted telecast date forms. Legacy rows carry free-form text, so
// interpretation happens here via calendar parsing, never by slicing
// the raw string.
var telecastLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseTelecastDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range telecastLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// eligible reports whether a row may surface through the read paths:
// telecast date parses to a real calendar date AND the media link is
// non-blank. Enforced here as well as in the fetch predicate, so the
// derivation helpers hold the invariant on any input.
func eligible(row models.EpisodeRow) (time.Time, bool) {
	if strings.TrimSpace(row.MediaURL.String) == "" {
		return time.Time{}, false
	}
	return parseTelecastDate(row.TelecastDate.String)
}

// eligibleRows fetches the episodes visible to calendar faceting and
// listing: telecast date and media link both present and non-blank.
// Rows whose date text fails to parse are dropped by the callers.
func (s *EpisodeService) eligibleRows(ctx context.Context) ([]models.EpisodeRow, error) {
	f := query.NewFilter()
	f.NotBlank("telecast_date")
	f.NotBlank("media_url")
	where, _ := f.Where()

	sql := "SELECT id, title, media_url, upload_date, telecast_date, series_code FROM telecast_episodes " + where

	var rows []models.EpisodeRow
	if err := s.db.SelectContext(ctx, &rows, sql); err != nil {
		return nil, fmt.Errorf("episode query failed: %w", err)
	}
	return rows, nil
}

// ===============================
// CALENDAR FACETS
// ===============================

// ListYears returns every year with at least one eligible episode,
// most recent first.
func (s *EpisodeService) ListYears(ctx context.Context) ([]string, error) {
	rows, err := s.eligibleRows(ctx)
	if err != nil {
		return nil, err
	}
	return yearsFromRows(rows), nil
}

// ListMonths returns the two-digit months of one year with at least
// one eligible episode, most recent first. The year is required.
func (s *EpisodeService) ListMonths(ctx context.Context, year string) ([]string, error) {
	y, ok := query.Normalize(year)
	if !ok {
		return nil, ErrYearRequired
	}
	rows, err := s.eligibleRows(ctx)
	if err != nil {
		return nil, err
	}
	return monthsFromRows(rows, y), nil
}

func yearsFromRows(rows []models.EpisodeRow) []string {
	seen := map[int]bool{}
	for _, row := range rows {
		if t, ok := eligible(row); ok {
			seen[t.Year()] = true
		}
	}
	years := []string{}
	for y := range seen {
		years = append(years, fmt.Sprintf("%04d", y))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

func monthsFromRows(rows []models.EpisodeRow, year string) []string {
	target, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return []string{}
	}
	seen := map[int]bool{}
	for _, row := range rows {
		if t, ok := eligible(row); ok && t.Year() == target {
			seen[int(t.Month())] = true
		}
	}
	months := []string{}
	for m := range seen {
		months = append(months, fmt.Sprintf("%02d", m))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// ===============================
// EPISODE LISTING
// ===============================

// ListEpisodes returns eligible episodes, optionally narrowed to a
// year and month, newest telecast first. Non-numeric year or month
// values are tolerated as absent rather than rejected. Pagination is
// applied after the calendar narrowing so page boundaries line up with
// what the caller sees.
func (s *EpisodeService) ListEpisodes(ctx context.Context, year, month string, page query.Page) ([]models.EpisodeRecord, error) {
	rows, err := s.eligibleRows(ctx)
	if err != nil {
		return nil, err
	}
	return filterEpisodes(rows, year, month, page), nil
}

type datedEpisode struct {
	record models.EpisodeRecord
	at     time.Time
}

func filterEpisodes(rows []models.EpisodeRow, year, month string, page query.Page) []models.EpisodeRecord {
	yearFilter, hasYear := parseCalendarComponent(year)
	monthFilter, hasMonth := parseCalendarComponent(month)

	dated := []datedEpisode{}
	for _, row := range rows {
		t, ok := eligible(row)
		if !ok {
			continue
		}
		if hasYear && t.Year() != yearFilter {
			continue
		}
		if hasMonth && int(t.Month()) != monthFilter {
			continue
		}
		dated = append(dated, datedEpisode{record: row.External(), at: t})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		if !dated[i].at.Equal(dated[j].at) {
			return dated[i].at.After(dated[j].at)
		}
		return dated[i].record.ID < dated[j].record.ID
	})

	start := page.Offset
	if start > len(dated) {
		start = len(dated)
	}
	end := start + page.Limit
	if end > len(dated) {
		end = len(dated)
	}

	records := make([]models.EpisodeRecord, 0, end-start)
	for _, d := range dated[start:end] {
		records = append(records, d.record)
	}
	return records
}

func parseCalendarComponent(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return v, true
}
