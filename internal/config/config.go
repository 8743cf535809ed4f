// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the admin service reads.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// Environment is "development" or "production".
	Environment string

	// ProjectID selects the Firebase / Firestore project. Required outside
	// development.
	ProjectID string
	// StorageBucket is the media bucket name. Required outside development.
	StorageBucket string
	// MediaPrefix namespaces media objects inside the bucket.
	MediaPrefix string

	// DevToken, when set in development, is accepted as a static bearer
	// token instead of a Firebase ID token.
	DevToken string
	// DevEmail is the actor email bound to DevToken.
	DevEmail string
}

// Load reads the environment, first merging a .env file if one exists.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getenv("ADDR", ":8080"),
		Environment:   strings.ToLower(getenv("ENVIRONMENT", "development")),
		ProjectID:     os.Getenv("FIREBASE_PROJECT_ID"),
		StorageBucket: os.Getenv("STORAGE_BUCKET"),
		MediaPrefix:   getenv("MEDIA_PREFIX", "media"),
		DevToken:      os.Getenv("DEV_TOKEN"),
		DevEmail:      getenv("DEV_EMAIL", "admin@localhost"),
	}

	if !cfg.Development() {
		if cfg.ProjectID == "" {
			return Config{}, fmt.Errorf("config: FIREBASE_PROJECT_ID is required outside development")
		}
		if cfg.StorageBucket == "" {
			return Config{}, fmt.Errorf("config: STORAGE_BUCKET is required outside development")
		}
	}
	return cfg, nil
}

// Development reports whether the service runs in local development mode.
func (c Config) Development() bool {
	return c.Environment != "production"
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
