package apihandlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"placewise/internal/clustering"
	"placewise/internal/models"
	"placewise/internal/store"
)

type analyzeRequest struct {
	BusinessCategory string `json:"business_category"`
	NumClusters      int    `json:"num_clusters"`
}

// AnalyzeHandler serves POST /api/v1/clustering/analyze: clusters the
// registry, recommends a location for the requested category and persists
// the run for the caller.
func (h *APIHandler) AnalyzeHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.BusinessCategory) == "" {
		BadRequest(c, "business_category is required")
		return
	}

	businesses, err := h.App.BusinessStore.AllBusinesses(c.Request.Context())
	if err != nil {
		log.Errorf("load businesses for clustering: %v", err)
		Internal(c, "Failed to load businesses")
		return
	}

	result, err := clustering.Analyze(businesses, req.BusinessCategory, req.NumClusters, rand.New(rand.NewSource(rand.Int63())))
	if err != nil {
		if errors.Is(err, clustering.ErrNoBusinesses) {
			BadRequest(c, "No businesses in the registry to analyze")
			return
		}
		log.Errorf("clustering analyze: %v", err)
		Internal(c, "Clustering analysis failed")
		return
	}

	if err := h.saveClusteringRun(c, req, result); err != nil {
		// The analysis itself succeeded; log the persistence failure and
		// still return the result.
		log.Warnf("save clustering result: %v", err)
	}

	c.JSON(http.StatusOK, result)
}

func (h *APIHandler) saveClusteringRun(c *gin.Context, req analyzeRequest, result *clustering.Result) error {
	user, err := h.App.UserStore.GetUserByEmail(c.Request.Context(), callerEmail(c))
	if err != nil {
		return err
	}

	clustersData, err := json.Marshal(result.Clusters)
	if err != nil {
		return err
	}
	nearbyData, err := json.Marshal(result.NearbyBusinesses)
	if err != nil {
		return err
	}

	record := &models.ClusteringResult{
		UserID:               user.ID,
		BusinessCategory:     req.BusinessCategory,
		NumClusters:          len(result.Clusters),
		RecommendedLatitude:  result.RecommendedLocation.Latitude,
		RecommendedLongitude: result.RecommendedLocation.Longitude,
		RecommendedZoneType:  result.ZoneType,
		Confidence:           result.Analysis.Confidence,
		OpportunityLevel:     result.Analysis.Opportunity,
		TotalBusinesses:      result.Analysis.TotalBusinesses,
		CompetitorCount:      result.Analysis.CompetitorCount,
		Competitors500m:      result.CompetitorAnalysis.Competitors500m,
		Competitors1km:       result.CompetitorAnalysis.Competitors1km,
		Competitors2km:       result.CompetitorAnalysis.Competitors2km,
		MarketSaturation:     result.CompetitorAnalysis.MarketSaturation,
		NearestCompetitorKm:  result.CompetitorAnalysis.DistanceToNearest,
		ClustersData:         clustersData,
		NearbyBusinesses:     nearbyData,
	}
	return h.App.ResultStore.SaveClusteringResult(c.Request.Context(), record)
}

// GetResultHandler serves GET /api/v1/clustering/results/:id. Results are
// user-scoped: a run saved by another account is a 404.
func (h *APIHandler) GetResultHandler(c *gin.Context) {
	resultID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequest(c, "Invalid result ID: "+c.Param("id"))
		return
	}

	user, err := h.App.UserStore.GetUserByEmail(c.Request.Context(), callerEmail(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Unauthorized(c, "Unknown account")
			return
		}
		log.Errorf("resolve caller: %v", err)
		Internal(c, "Failed to load result")
		return
	}

	result, err := h.App.ResultStore.GetClusteringResult(c.Request.Context(), user.ID, resultID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, fmt.Sprintf("Result not found with ID: %d", resultID))
			return
		}
		log.Errorf("get clustering result: %v", err)
		Internal(c, "Failed to load result")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListResultsHandler serves GET /api/v1/clustering/results: the caller's
// saved runs, newest first.
func (h *APIHandler) ListResultsHandler(c *gin.Context) {
	user, err := h.App.UserStore.GetUserByEmail(c.Request.Context(), callerEmail(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Unauthorized(c, "Unknown account")
			return
		}
		log.Errorf("resolve caller: %v", err)
		Internal(c, "Failed to load results")
		return
	}

	results, err := h.App.ResultStore.ListClusteringResults(c.Request.Context(), user.ID, 20)
	if err != nil {
		log.Errorf("list clustering results: %v", err)
		Internal(c, "Failed to load results")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
