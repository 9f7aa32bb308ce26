// ===============================
// internal/handlers/episode.go - Telecast Episode Endpoints
// ===============================

package handlers

import (
	"errors"
	"net/http"

	"glorystream/internal/models"
	"glorystream/internal/query"
	"glorystream/internal/services"

	"github.com/gin-gonic/gin"
)

type EpisodeHandler struct {
	service *services.EpisodeService
}

func NewEpisodeHandler(service *services.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{service: service}
}

func (h *EpisodeHandler) setListHeaders(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=900")
	c.Header("Connection", "keep-alive")
}

// ===============================
// CALENDAR FACETS
// ===============================

func (h *EpisodeHandler) GetYears(c *gin.Context) {
	h.setListHeaders(c)

	years, err := h.service.ListYears(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch years",
			"code":  "EPISODE_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": years})
}

func (h *EpisodeHandler) GetMonths(c *gin.Context) {
	h.setListHeaders(c)

	months, err := h.service.ListMonths(c.Request.Context(), c.Query("year"))
	if err != nil {
		var validation services.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": validation.Message,
				"code":  "MISSING_YEAR",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch months",
			"code":  "EPISODE_ERROR",
		})
		return
	}

	if c.Query("withNames") == "true" {
		named := make([]models.MonthFacet, 0, len(months))
		for _, m := range months {
			named = append(named, models.MonthFacet{Value: m, Name: models.MonthName(m)})
		}
		c.JSON(http.StatusOK, gin.H{"months": named})
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": months})
}

// ===============================
// EPISODE LISTING
// ===============================

func (h *EpisodeHandler) GetEpisodes(c *gin.Context) {
	h.setListHeaders(c)

	page := query.ParsePage(c.Query("limit"), c.Query("offset"), c.Query("page"))

	episodes, err := h.service.ListEpisodes(c.Request.Context(), c.Query("year"), c.Query("month"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch episodes",
			"code":  "EPISODE_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"episodes": episodes,
		"limit":    page.Limit,
		"offset":   page.Offset,
		"hasMore":  len(episodes) == page.Limit,
	})
}
