package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Database.DSN = "host=localhost dbname=travelpay"
	cfg.Auth.Secret = "test-secret"
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.Algorithm != "HS256" {
		t.Errorf("algorithm = %s", cfg.Auth.Algorithm)
	}
	if cfg.Auth.AccessTokenTTL != 10080 {
		t.Errorf("access_token_ttl = %d, want 10080", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcrypt_cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	wantIDs := []string{"username", "email", "phone_number", "citizen_id"}
	if len(cfg.Auth.Identifiers) != len(wantIDs) {
		t.Fatalf("identifiers = %v", cfg.Auth.Identifiers)
	}
	for i, id := range wantIDs {
		if cfg.Auth.Identifiers[i] != id {
			t.Errorf("identifiers[%d] = %s, want %s", i, cfg.Auth.Identifiers[i], id)
		}
	}
}

func TestTokenTTL(t *testing.T) {
	cfg := AuthConfig{AccessTokenTTL: 10080}
	if got := cfg.TokenTTL(); got != 7*24*time.Hour {
		t.Errorf("TokenTTL() = %v, want 168h", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"missing secret", func(c *Config) { c.Auth.Secret = "" }, true},
		{"asymmetric algorithm", func(c *Config) { c.Auth.Algorithm = "RS256" }, true},
		{"unknown identifier", func(c *Config) { c.Auth.Identifiers = []string{"passport"} }, true},
		{"bad environment", func(c *Config) { c.Base.Environment = "prod" }, true},
		{"subset of identifiers", func(c *Config) { c.Auth.Identifiers = []string{"email"} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestKeyVariants(t *testing.T) {
	variants := keyVariants("AUTH_ACCESS_TOKEN_TTL")
	want := "auth.access_token_ttl"
	for _, v := range variants {
		if v == want {
			return
		}
	}
	t.Errorf("keyVariants() = %v, missing %q", variants, want)
}
