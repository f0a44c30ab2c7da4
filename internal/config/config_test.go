package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_PATH", "./test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.JWTSecret != "test-secret" || cfg.DatabasePath != "./test.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv("PORT", "9000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServerPort != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.ServerPort)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_PATH", "./test.db")
	t.Setenv("JWT_SECRET", "placeholder") // registers cleanup restoring the old value
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoadRequiresDatabasePath(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_PATH", "placeholder")
	os.Unsetenv("DATABASE_PATH")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_PATH is unset")
	}
}
