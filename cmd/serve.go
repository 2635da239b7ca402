package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"placewise/internal/apihandlers"
)

var serveAddr string // Listen address, overrides config when set

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run Placewise as an HTTP API server",
	Long: `Starts an HTTP server exposing the placement advisory, validation,
classification, clustering and analytics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default() // Includes logger and recovery middleware
		// Wrong-method requests get a 405, not a 404.
		router.HandleMethodNotAllowed = true

		apiHandler := apihandlers.NewAPIHandler(appInstance)
		apiHandler.RegisterRoutes(router)

		router.GET("/health", func(c *gin.Context) {
			status := gin.H{
				"status":   "ok",
				"gemini":   appInstance.AdvisoryProvider.Available(),
				"openai":   appInstance.RegistryProvider.Available(),
				"location": fmt.Sprintf("Brgy. %s, %s, %s", appInstance.Config.Location.Barangay, appInstance.Config.Location.Municipality, appInstance.Config.Location.Province),
			}
			if err := appInstance.BusinessStore.Ping(c.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			c.JSON(http.StatusOK, status)
		})

		listenAddr := serveAddr
		if listenAddr == "" {
			listenAddr = appInstance.Config.Server.Address
		}
		log.Printf("Starting Placewise API server on %s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			log.Printf("ERROR: Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config, e.g. ':8000')")
}
