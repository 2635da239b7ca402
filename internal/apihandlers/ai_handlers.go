package apihandlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"placewise/internal/models"
	"placewise/internal/services"
)

// ideaRequest is the shared body of the categorize/validate/classify
// endpoints.
type ideaRequest struct {
	BusinessIdea string `json:"businessIdea"`
}

// RecommendHandler serves POST /api/v1/ai/recommend.
func (h *APIHandler) RecommendHandler(c *gin.Context) {
	var req models.RecommendationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.BusinessIdea) == "" {
		BadRequest(c, "businessIdea is required")
		return
	}

	bundle, source := h.App.RecommendationService.Recommend(c.Request.Context(), req)
	c.JSON(http.StatusOK, struct {
		models.RecommendationBundle
		Source services.ResultSource `json:"source"`
	}{bundle, source})
}

// CategorizeHandler serves POST /api/v1/ai/categorize on the advisory
// taxonomy.
func (h *APIHandler) CategorizeHandler(c *gin.Context) {
	h.classifyWith(c, h.App.AdvisoryCategories)
}

// ClassifyHandler serves POST /api/v1/categories/classify on the registry
// taxonomy.
func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	h.classifyWith(c, h.App.RegistryCategories)
}

func (h *APIHandler) classifyWith(c *gin.Context, svc *services.CategoryService) {
	req, ok := parseIdeaRequest(c)
	if !ok {
		return
	}

	result, source := svc.Classify(c.Request.Context(), req.BusinessIdea)
	c.JSON(http.StatusOK, struct {
		models.CategoryResult
		Source services.ResultSource `json:"source"`
	}{result, source})
}

// ValidateHandler serves POST /api/v1/ai/validate. Empty input is a verdict
// (errorType "empty"), not a request error.
func (h *APIHandler) ValidateHandler(c *gin.Context) {
	var req ideaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	verdict, source := h.App.ValidationService.Validate(c.Request.Context(), req.BusinessIdea)
	c.JSON(http.StatusOK, struct {
		models.ValidationVerdict
		Source services.ResultSource `json:"source"`
	}{verdict, source})
}

func parseIdeaRequest(c *gin.Context) (ideaRequest, bool) {
	var req ideaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return req, false
	}
	if strings.TrimSpace(req.BusinessIdea) == "" {
		BadRequest(c, "businessIdea is required")
		return req, false
	}
	return req, true
}
