package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "DistaApps" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIVersion != DefaultAPIVersion {
		t.Errorf("APIVersion = %q", cfg.APIVersion)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("CORSOrigin = %q", cfg.CORSOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "Staging")
	t.Setenv("PORT", "8080")
	t.Setenv("SHOPIFY_API_VERSION", "2024-01")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://dashboard.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MongoDatabase != "Staging" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIVersion != "2024-01" {
		t.Errorf("APIVersion = %q", cfg.APIVersion)
	}
	if cfg.CORSOrigin != "https://dashboard.example.com" {
		t.Errorf("CORSOrigin = %q", cfg.CORSOrigin)
	}
}

func TestLoadMissingMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	if _, err := Load(); err == nil {
		t.Fatal("want error when MONGODB_URI is unset")
	}
}
