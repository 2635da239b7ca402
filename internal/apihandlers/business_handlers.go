package apihandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"placewise/internal/models"
	"placewise/internal/store"
)

// ListBusinessesHandler serves GET /api/v1/businesses with optional
// category/zone_type filters and skip/limit paging.
func (h *APIHandler) ListBusinessesHandler(c *gin.Context) {
	params, err := parseListBusinessesParams(c)
	if err != nil {
		BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	businesses, err := h.App.BusinessStore.ListBusinesses(c.Request.Context(), params)
	if err != nil {
		log.Errorf("list businesses: %v", err)
		Internal(c, "Failed to list businesses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses, "count": len(businesses)})
}

func parseListBusinessesParams(c *gin.Context) (store.ListBusinessesParams, error) {
	params := store.ListBusinessesParams{
		Category: c.Query("category"),
		ZoneType: c.Query("zone_type"),
		Limit:    100,
	}

	if s := c.Query("skip"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 0 {
			return params, fmt.Errorf("invalid skip: %s", s)
		}
		params.Skip = parsed
	}
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			return params, fmt.Errorf("invalid limit: %s", l)
		}
		params.Limit = parsed
	}
	return params, nil
}

// GetBusinessHandler serves GET /api/v1/businesses/:id by dataset ID.
func (h *APIHandler) GetBusinessHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid business ID: "+c.Param("id"))
		return
	}

	business, err := h.App.BusinessStore.GetBusinessByBusinessID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Business not found with ID: %d", id))
			return
		}
		log.Errorf("get business: %v", err)
		Internal(c, "Failed to get business")
		return
	}
	c.JSON(http.StatusOK, business)
}

type businessWriteRequest struct {
	BusinessID   int      `json:"business_id"`
	BusinessName string   `json:"business_name"`
	Category     string   `json:"category"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Street       string   `json:"street"`
	ZoneType     string   `json:"zone_type"`
}

// CreateBusinessHandler serves POST /api/v1/businesses.
func (h *APIHandler) CreateBusinessHandler(c *gin.Context) {
	var req businessWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.BusinessID <= 0 || req.BusinessName == "" || req.Category == "" {
		BadRequest(c, "business_id, business_name and category are required")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		BadRequest(c, "latitude and longitude are required")
		return
	}

	business := &models.Business{
		BusinessID:   req.BusinessID,
		BusinessName: req.BusinessName,
		Category:     req.Category,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		Street:       req.Street,
		ZoneType:     req.ZoneType,
	}
	if err := h.App.BusinessStore.CreateBusiness(c.Request.Context(), business); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			BadRequest(c, "Business ID already exists")
			return
		}
		log.Errorf("create business: %v", err)
		Internal(c, "Failed to create business")
		return
	}
	c.JSON(http.StatusCreated, business)
}

// UpdateBusinessHandler serves PUT /api/v1/businesses/:id. Absent fields
// keep their stored values.
func (h *APIHandler) UpdateBusinessHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid business ID: "+c.Param("id"))
		return
	}

	var req struct {
		BusinessName *string  `json:"business_name"`
		Category     *string  `json:"category"`
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
		Street       *string  `json:"street"`
		ZoneType     *string  `json:"zone_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	business, err := h.App.BusinessStore.GetBusinessByBusinessID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Business not found with ID: %d", id))
			return
		}
		log.Errorf("update business: %v", err)
		Internal(c, "Failed to update business")
		return
	}

	if req.BusinessName != nil {
		business.BusinessName = *req.BusinessName
	}
	if req.Category != nil {
		business.Category = *req.Category
	}
	if req.Latitude != nil {
		business.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		business.Longitude = *req.Longitude
	}
	if req.Street != nil {
		business.Street = *req.Street
	}
	if req.ZoneType != nil {
		business.ZoneType = *req.ZoneType
	}

	if err := h.App.BusinessStore.UpdateBusiness(c.Request.Context(), business); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Business not found with ID: %d", id))
			return
		}
		log.Errorf("update business: %v", err)
		Internal(c, "Failed to update business")
		return
	}
	c.JSON(http.StatusOK, business)
}

// DeleteBusinessHandler serves DELETE /api/v1/businesses/:id.
func (h *APIHandler) DeleteBusinessHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		BadRequest(c, "Invalid business ID: "+c.Param("id"))
		return
	}

	if err := h.App.BusinessStore.DeleteBusiness(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Business not found with ID: %d", id))
			return
		}
		log.Errorf("delete business: %v", err)
		Internal(c, "Failed to delete business")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

// ListCategoriesHandler serves GET /api/v1/businesses/categories.
func (h *APIHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.App.BusinessStore.ListCategories(c.Request.Context())
	if err != nil {
		log.Errorf("list categories: %v", err)
		Internal(c, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// StatisticsHandler serves GET /api/v1/businesses/statistics.
func (h *APIHandler) StatisticsHandler(c *gin.Context) {
	stats, err := h.App.BusinessStore.Statistics(c.Request.Context())
	if err != nil {
		log.Errorf("business statistics: %v", err)
		Internal(c, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
