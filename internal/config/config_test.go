package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, expected %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("default driver = %q, expected %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("default AI provider = %q, expected %q", cfg.AI.Provider, "gemini")
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("default JWT expire = %d, expected 24", cfg.JWT.ExpireHour)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis should be disabled by default")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port, got %q", cfg.Server.Port)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  host: 127.0.0.1
  port: "9090"
  mode: release
database:
  driver: postgres
  dsn: host=localhost user=app dbname=site
ai:
  provider: openai
  model: gpt-4o-mini
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, expected %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q, expected %q", cfg.Database.Driver, "postgres")
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("AI provider = %q, expected %q", cfg.AI.Provider, "openai")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_MODEL", "claude-sonnet-4-20250514")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q, expected env override %q", cfg.Server.Port, "3000")
	}
	if cfg.AI.Provider != "anthropic" {
		t.Errorf("AI provider = %q, expected %q", cfg.AI.Provider, "anthropic")
	}
	if cfg.AI.Model != "claude-sonnet-4-20250514" {
		t.Errorf("AI model = %q, expected env override", cfg.AI.Model)
	}
}

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		addr     string
		password string
		db       int
	}{
		{
			name: "host and port only",
			url:  "redis://localhost:6379",
			addr: "localhost:6379",
		},
		{
			name:     "with password and db",
			url:      "redis://:secret@redis.internal:6380/2",
			addr:     "redis.internal:6380",
			password: "secret",
			db:       2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.parseRedisURL(tt.url)
			if cfg.Redis.Addr != tt.addr {
				t.Errorf("Addr = %q, expected %q", cfg.Redis.Addr, tt.addr)
			}
			if cfg.Redis.Password != tt.password {
				t.Errorf("Password = %q, expected %q", cfg.Redis.Password, tt.password)
			}
			if cfg.Redis.DB != tt.db {
				t.Errorf("DB = %d, expected %d", cfg.Redis.DB, tt.db)
			}
		})
	}
}
