package main

import (
	"placewise/cmd"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load .env if present; real deployments rely on actual env vars.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	cmd.Execute()
}
