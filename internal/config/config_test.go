package config

import "testing"

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ADDR", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("STORAGE_BUCKET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Development() {
		t.Fatalf("expected development mode, got %+v", cfg)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.MediaPrefix != "media" {
		t.Fatalf("expected default media prefix, got %q", cfg.MediaPrefix)
	}
}

func TestLoad_ProductionRequiresBackends(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("STORAGE_BUCKET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without project id")
	}

	t.Setenv("FIREBASE_PROJECT_ID", "my-project")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without storage bucket")
	}

	t.Setenv("STORAGE_BUCKET", "my-bucket")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Development() {
		t.Fatalf("expected production mode, got %+v", cfg)
	}
}
