package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	if c.Database.Primary.DSN == "" {
		return errors.New("database.primary.DSN is required (set DATABASE_URL)")
	}
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	if c.Auth.TokenExpireMinutes <= 0 {
		return fmt.Errorf("auth.token_expire_minutes must be positive, got %d", c.Auth.TokenExpireMinutes)
	}
	if c.AI.GeminiModel == "" {
		return errors.New("ai.gemini_model is required")
	}
	if c.AI.OpenAIModel == "" {
		return errors.New("ai.openai_model is required")
	}
	// API keys and the JWT secret are deliberately not checked here: missing
	// AI credentials degrade to fallback responses, and the auth layer
	// reports a missing secret itself.
	return nil
}
