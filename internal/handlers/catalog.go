// ===============================
// internal/handlers/catalog.go - Catalog and Facet Endpoints
// ===============================

package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"glorystream/internal/query"
	"glorystream/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service *services.CatalogService
}

func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) setListHeaders(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=900")
	c.Header("Connection", "keep-alive")
}

// filtersFromQuery picks the recognized facet keys off the request.
// Unknown keys are ignored; blank values resolve to no filter.
func filtersFromQuery(c *gin.Context) services.CatalogFilters {
	return services.CatalogFilters{
		Category: c.Query("category"),
		Theme:    c.Query("theme"),
		Language: c.Query("language"),
		Region:   c.Query("region"),
		Entity:   c.Query("entity"),
		Search:   c.Query("q"),
	}
}

// ===============================
// CATALOG LISTING
// ===============================

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	h.setListHeaders(c)

	filters := filtersFromQuery(c)
	page := query.ParsePage(c.Query("limit"), c.Query("offset"), c.Query("page"))

	videos, err := h.service.ListCatalog(c.Request.Context(), filters, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch catalog",
			"code":  "CATALOG_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":  videos,
		"limit":   page.Limit,
		"offset":  page.Offset,
		"hasMore": len(videos) == page.Limit,
	})
}

func (h *CatalogHandler) GetCatalogRecord(c *gin.Context) {
	videoID := c.Param("videoId")
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Video ID required",
			"code":  "MISSING_VIDEO_ID",
		})
		return
	}

	record, err := h.service.GetCatalogRecord(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Video not found",
				"code":  "VIDEO_NOT_FOUND",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch video",
			"code":  "CATALOG_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ===============================
// FACET LISTING
// ===============================

func (h *CatalogHandler) GetFacets(c *gin.Context) {
	h.setListHeaders(c)

	filters := services.CatalogFilters{
		Category: c.Query("category"),
		Language: c.Query("language"),
		Region:   c.Query("region"),
	}

	facets, err := h.service.ListFacets(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch facets",
			"code":  "FACET_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, facets)
}
