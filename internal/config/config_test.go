package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Database.Filename != "todos.db" {
		t.Errorf("default filename = %q", cfg.Database.Filename)
	}
	if cfg.Server.Addr != ":3001" {
		t.Errorf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.Validation.TextMaxLength != 500 || cfg.Validation.CategoryMaxLength != 100 {
		t.Errorf("default validation limits = %+v", cfg.Validation)
	}
	if cfg.Validation.StrictReorder {
		t.Error("strict reorder should be off by default")
	}
	if cfg.Client.BaseURL != "http://localhost:3001" {
		t.Errorf("default API URL = %q", cfg.Client.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TODO_DB_DIR", "/tmp/todo-test")
	t.Setenv("TODO_DB_FILENAME", "other.db")
	t.Setenv("TODO_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TODO_DB_DIR_PERMISSIONS", "700")
	t.Setenv("TODO_SERVER_ADDR", "127.0.0.1:8080")
	t.Setenv("TODO_SERVER_ALLOW_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("TODO_VALIDATION_TEXT_MAX", "140")
	t.Setenv("TODO_VALIDATION_STRICT_REORDER", "true")
	t.Setenv("TODO_LOG_FORMAT", "json")
	t.Setenv("TODO_API_URL", "http://todo.internal")
	t.Setenv("TODO_CLIENT_TIMEOUT", "not-a-duration")

	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		t.Fatalf("LoadFromEnvironment() error = %v", err)
	}

	if got := cfg.GetDatabasePath(); got != "/tmp/todo-test/other.db" {
		t.Errorf("GetDatabasePath() = %q", got)
	}
	if cfg.Database.QueryTimeout != 3*time.Second {
		t.Errorf("QueryTimeout = %v", cfg.Database.QueryTimeout)
	}
	if cfg.Database.DirPermissions != 0700 {
		t.Errorf("DirPermissions = %o", cfg.Database.DirPermissions)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "http://b.test" {
		t.Errorf("AllowOrigins = %v", cfg.Server.AllowOrigins)
	}
	if cfg.Validation.TextMaxLength != 140 || !cfg.Validation.StrictReorder {
		t.Errorf("Validation = %+v", cfg.Validation)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", cfg.Logging.Format)
	}
	if cfg.Client.BaseURL != "http://todo.internal" {
		t.Errorf("Client.BaseURL = %q", cfg.Client.BaseURL)
	}
	// Unparseable values keep the default
	if cfg.Client.Timeout != 10*time.Second {
		t.Errorf("Client.Timeout = %v, want default", cfg.Client.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"no origins", func(c *Config) { c.Server.AllowOrigins = nil }, "server.allow_origins"},
		{"zero text max", func(c *Config) { c.Validation.TextMaxLength = 0 }, "validation.text_max_length"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"empty API URL", func(c *Config) { c.Client.BaseURL = "" }, "client.base_url"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			configErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if configErr.Field != tt.field {
				t.Errorf("Validate() field = %q, want %q", configErr.Field, tt.field)
			}
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Setenv("TODO_SERVER_ADDR", ":4000")
	t.Setenv("TODO_DB_DIR", t.TempDir())

	addr := ":5000"
	strict := true
	level := "debug"

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		ServerAddr:    &addr,
		StrictReorder: &strict,
		LogLevel:      &level,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}

	if cfg.Server.Addr != ":5000" {
		t.Errorf("flag override should beat environment, got %q", cfg.Server.Addr)
	}
	if !cfg.Validation.StrictReorder {
		t.Error("StrictReorder override not applied")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("LogLevel = %q", cfg.Logging.Level)
	}
}

func TestLoader_InvalidOverrideRejected(t *testing.T) {
	t.Setenv("TODO_DB_DIR", t.TempDir())

	empty := ""
	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{APIURL: &empty})
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a, ,b ,c")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("SplitList() = %v", got)
	}
	if SplitList("") != nil {
		t.Error("SplitList(\"\") should be nil")
	}
}
