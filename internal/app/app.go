// Package app wires configuration, the database, the AI providers and the
// domain services into one struct the commands hang off.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"placewise/internal/auth"
	"placewise/internal/config"
	"placewise/internal/models"
	"placewise/internal/services"
	"placewise/internal/store"
	"placewise/internal/store/primary"
	"placewise/pkg/taxonomy"
)

type App struct {
	Config *config.Config

	// Store interfaces, all backed by the same primary store.
	BusinessStore store.BusinessStore
	UserStore     store.UserStore
	ResultStore   store.ResultStore
	SnapshotStore store.SnapshotStore

	// Primary keeps the concrete store for lifecycle and schema management.
	Primary *primary.StoreImpl

	TokenIssuer *auth.TokenIssuer

	// Advisory endpoints run on Gemini, the registry classifier on OpenAI.
	AdvisoryProvider services.CompletionService
	RegistryProvider services.CompletionService

	RecommendationService *services.RecommendationService
	ValidationService     *services.ValidationService
	AdvisoryCategories    *services.CategoryService
	RegistryCategories    *services.CategoryService
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	if err := app.initPrimaryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initAuth(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initProviders(ctx); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initServices()

	log.Println("Application initialization complete.")
	return app, nil
}

func (a *App) initPrimaryStore(ctx context.Context) error {
	ps, err := primary.NewPrimaryStore(ctx, a.Config.Database.Primary.DSN)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.Primary = ps
	a.BusinessStore = ps
	a.UserStore = ps
	a.ResultStore = ps
	a.SnapshotStore = ps
	return nil
}

func (a *App) initAuth() error {
	expiry := time.Duration(a.Config.Auth.TokenExpireMinutes) * time.Minute
	issuer, err := auth.NewTokenIssuer(a.Config.Auth.JWTSecret, expiry)
	if err != nil {
		if errors.Is(err, models.ErrMissingSecret) {
			return fmt.Errorf("init auth: JWT_SECRET is not set: %w", err)
		}
		return fmt.Errorf("init auth: %w", err)
	}
	a.TokenIssuer = issuer
	return nil
}

func (a *App) initProviders(ctx context.Context) error {
	cfg := a.Config

	gemini, err := services.NewGeminiProvider(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	if err != nil {
		return fmt.Errorf("init gemini provider: %w", err)
	}
	a.AdvisoryProvider = gemini

	a.RegistryProvider = services.NewOpenAIProvider(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)

	if !a.AdvisoryProvider.Available() {
		log.Warnln("Gemini provider unavailable, advisory endpoints will serve fallback responses.")
	}
	if !a.RegistryProvider.Available() {
		log.Warnln("OpenAI provider unavailable, registry classification will serve fallback responses.")
	}
	return nil
}

func (a *App) initServices() {
	a.RecommendationService = services.NewRecommendationService(a.AdvisoryProvider)
	a.ValidationService = services.NewValidationService(a.AdvisoryProvider)
	a.AdvisoryCategories = services.NewCategoryService(a.AdvisoryProvider, taxonomy.Advisory)
	a.RegistryCategories = services.NewCategoryService(a.RegistryProvider, taxonomy.Registry)
}

func (a *App) cleanupPartialInit() {
	if a.Primary != nil {
		a.Primary.Close()
	}
	if cs, ok := a.AdvisoryProvider.(interface{ Close() error }); ok && cs != nil {
		if err := cs.Close(); err != nil {
			log.Printf("Error closing completion provider: %v", err)
		}
	}
}

// Close releases the app's long-lived resources.
func (a *App) Close() {
	a.cleanupPartialInit()
}
