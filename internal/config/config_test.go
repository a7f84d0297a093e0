package config

import "testing"

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_MinimalLocalConfig(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "local", Port: 8080},
		Services: ServicesConfig{
			SettingsBaseURL: "http://localhost:9000/settings",
			APIBaseURL:      "http://localhost:9000",
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.HasRedis() || c.HasDB() {
		t.Fatalf("redis/db must be optional")
	}
}

func TestValidate_RejectsRelativeServiceURL(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "local", Port: 8080},
		Services: ServicesConfig{
			SettingsBaseURL: "settings",
			APIBaseURL:      "http://localhost:9000",
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for relative SETTINGS_BASE_URL")
	}
}

func TestValidate_ProductionRequiresSSLModeWhenDBSet(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "production", Port: 8080},
		Services: ServicesConfig{
			SettingsBaseURL: "https://api.example.com/settings",
			APIBaseURL:      "https://api.example.com",
		},
		DB: DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "portal"},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without DB_SSLMODE")
	}
}

func TestValidate_LocalDefaultsSSLMode(t *testing.T) {
	c := Config{
		App: AppConfig{Env: "local", Port: 8080},
		Services: ServicesConfig{
			SettingsBaseURL: "http://localhost:9000/settings",
			APIBaseURL:      "http://localhost:9000",
		},
		DB: DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "portal"},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
}
