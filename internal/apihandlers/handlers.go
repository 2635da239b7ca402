// Package apihandlers holds the gin handlers and middleware for the HTTP
// API.
package apihandlers

import (
	"github.com/gin-gonic/gin"

	"placewise/internal/app"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// RegisterRoutes mounts every API route on the router. The advisory and
// classification groups are public with permissive CORS; the registry,
// clustering and analytics groups require a bearer token.
func (h *APIHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.RegisterHandler)
		authGroup.POST("/login", h.LoginHandler)
		authGroup.POST("/request-password-reset", h.RequestPasswordResetHandler)
		authGroup.POST("/reset-password", h.ResetPasswordHandler)
	}

	aiGroup := v1.Group("/ai")
	aiGroup.Use(CORSMiddleware())
	{
		aiGroup.POST("/recommend", h.RecommendHandler)
		aiGroup.POST("/categorize", h.CategorizeHandler)
		aiGroup.POST("/validate", h.ValidateHandler)
	}

	categoriesGroup := v1.Group("/categories")
	categoriesGroup.Use(CORSMiddleware())
	{
		categoriesGroup.POST("/classify", h.ClassifyHandler)
	}

	businessGroup := v1.Group("/businesses")
	businessGroup.Use(h.AuthRequired())
	{
		businessGroup.GET("", h.ListBusinessesHandler)
		businessGroup.POST("", h.CreateBusinessHandler)
		businessGroup.GET("/categories", h.ListCategoriesHandler)
		businessGroup.GET("/statistics", h.StatisticsHandler)
		businessGroup.GET("/:id", h.GetBusinessHandler)
		businessGroup.PUT("/:id", h.UpdateBusinessHandler)
		businessGroup.DELETE("/:id", h.DeleteBusinessHandler)
	}

	clusteringGroup := v1.Group("/clustering")
	clusteringGroup.Use(h.AuthRequired())
	{
		clusteringGroup.POST("/analyze", h.AnalyzeHandler)
		clusteringGroup.GET("/results", h.ListResultsHandler)
		clusteringGroup.GET("/results/:id", h.GetResultHandler)
	}

	analyticsGroup := v1.Group("/analytics")
	analyticsGroup.Use(h.AuthRequired())
	{
		analyticsGroup.GET("/overview", h.OverviewHandler)
		analyticsGroup.GET("/category-distribution", h.CategoryDistributionHandler)
		analyticsGroup.GET("/zone-distribution", h.ZoneDistributionHandler)
		analyticsGroup.GET("/street-distribution", h.StreetDistributionHandler)
	}
}
