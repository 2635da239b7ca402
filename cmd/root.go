package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"placewise/internal/app"
	"placewise/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "placewise",
	Short: "Placewise CLI App",
	Long:  `Placewise is a business-location-intelligence service: AI-backed placement advice, business-idea validation and clustering analysis over a barangay business registry.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// Helper function to retrieve the app instance from context
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		// This should not happen if PersistentPreRunE ran successfully
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check database connectivity and provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		fmt.Println("Checking database connectivity...")
		if err := appInstance.BusinessStore.Ping(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
		fmt.Println("Database connection successful.")

		if appInstance.AdvisoryProvider.Available() {
			fmt.Printf("Gemini provider configured (model: %s).\n", appInstance.AdvisoryProvider.ModelName())
		} else {
			fmt.Println("Gemini provider not configured; advisory endpoints will serve fallbacks.")
		}
		if appInstance.RegistryProvider.Available() {
			fmt.Printf("OpenAI provider configured (model: %s).\n", appInstance.RegistryProvider.ModelName())
		} else {
			fmt.Println("OpenAI provider not configured; registry classification will serve fallbacks.")
		}
		return nil
	},
}
