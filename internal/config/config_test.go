package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected default port 8080, got %q", cfg.Port)
		}
		if cfg.DBPath != "data/kanakubook.db" {
			t.Errorf("expected default db path, got %q", cfg.DBPath)
		}
	})

	t.Run("environment variables win", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_PATH", "/tmp/ledger.db")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %q", cfg.Port)
		}
		if cfg.DBPath != "/tmp/ledger.db" {
			t.Errorf("expected overridden db path, got %q", cfg.DBPath)
		}
	})
}
