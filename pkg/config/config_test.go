package config

import (
	"testing"
	"time"
)

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Environment = "production"
	cfg.Session.Secret = "change-me-in-production"
	cfg.Upstream.BaseURL = "http://localhost:9000/api"

	if err := cfg.Validate(); err == nil {
		t.Fatalf("default secret must be rejected in production")
	}

	cfg.Session.Secret = "real-secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate_RequiresBaseURL(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty upstream base URL must be rejected")
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	cfg.Upstream.BaseURL = "http://localhost:9000/api"

	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("empty timezone should resolve to Local, got %v err=%v", loc, err)
	}

	cfg.Calendar.Timezone = "Asia/Seoul"
	loc, err = cfg.Location()
	if err != nil || loc.String() != "Asia/Seoul" {
		t.Fatalf("named timezone not resolved: %v err=%v", loc, err)
	}

	cfg.Calendar.Timezone = "Not/AZone"
	if _, err := cfg.Location(); err == nil {
		t.Fatalf("unknown timezone must fail validation")
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "9090"
	if got := cfg.Addr(); got != "127.0.0.1:9090" {
		t.Fatalf("addr: %s", got)
	}
}
