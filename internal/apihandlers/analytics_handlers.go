package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"placewise/internal/models"
)

// OverviewHandler serves GET /api/v1/analytics/overview.
func (h *APIHandler) OverviewHandler(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.App.BusinessStore.Statistics(ctx)
	if err != nil {
		log.Errorf("analytics overview: %v", err)
		Internal(c, "Failed to compute overview")
		return
	}
	streets, err := h.App.BusinessStore.StreetDistribution(ctx, 1)
	if err != nil {
		log.Errorf("analytics overview: %v", err)
		Internal(c, "Failed to compute overview")
		return
	}

	overview := models.AnalyticsOverview{
		TotalBusinesses:  stats.TotalBusinesses,
		TotalCategories:  stats.TotalCategories,
		CommercialZones:  stats.CommercialZones,
		ResidentialZones: stats.ResidentialZones,
	}
	if stats.TotalCategories > 0 {
		overview.AvgPerCategory = float64(stats.TotalBusinesses) / float64(stats.TotalCategories)
	}
	if len(stats.CategoryDistribution) > 0 {
		overview.TopCategory = stats.CategoryDistribution[0]
	}
	if len(streets) > 0 {
		overview.TopStreet = streets[0]
	}

	c.JSON(http.StatusOK, overview)
}

// CategoryDistributionHandler serves GET /api/v1/analytics/category-distribution.
func (h *APIHandler) CategoryDistributionHandler(c *gin.Context) {
	counts, err := h.App.BusinessStore.CategoryDistribution(c.Request.Context())
	if err != nil {
		log.Errorf("category distribution: %v", err)
		Internal(c, "Failed to compute category distribution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"distribution": counts})
}

// ZoneDistributionHandler serves GET /api/v1/analytics/zone-distribution.
func (h *APIHandler) ZoneDistributionHandler(c *gin.Context) {
	counts, err := h.App.BusinessStore.ZoneDistribution(c.Request.Context())
	if err != nil {
		log.Errorf("zone distribution: %v", err)
		Internal(c, "Failed to compute zone distribution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"distribution": counts})
}

// StreetDistributionHandler serves GET /api/v1/analytics/street-distribution.
func (h *APIHandler) StreetDistributionHandler(c *gin.Context) {
	counts, err := h.App.BusinessStore.StreetDistribution(c.Request.Context(), 10)
	if err != nil {
		log.Errorf("street distribution: %v", err)
		Internal(c, "Failed to compute street distribution")
		return
	}
	c.JSON(http.StatusOK, gin.H{"distribution": counts})
}
