package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "HANDOFF_STORE", "HANDOFF_TTL", "SESSION_COOKIE", "ALLOWED_ORIGINS",
		"SLOT_OPEN_HOUR", "SLOT_CLOSE_HOUR", "SLOT_INTERVAL", "SLOT_LEAD_TIME",
		"ESTIMATE_BREAKDOWN_ORDER", "SCHEDULE_BREAKDOWN_ORDER", "HANDOFF_TABLE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.HandoffStore != HandoffStoreMemory {
		t.Fatalf("expected memory store, got %q", cfg.HandoffStore)
	}
	if cfg.HandoffTTL != 2*time.Hour {
		t.Fatalf("unexpected ttl %v", cfg.HandoffTTL)
	}
	if cfg.SessionCookie != "sqv_session" || cfg.HandoffTable != "handoff_sessions" {
		t.Fatalf("unexpected session settings: %+v", cfg)
	}
	if cfg.SlotOpenHour != 9 || cfg.SlotCloseHour != 17 || cfg.SlotInterval != time.Hour || cfg.SlotLeadTime != 2*time.Hour {
		t.Fatalf("unexpected slot settings: %+v", cfg)
	}
	if cfg.EstimateBreakdownOrder != "base_first" || cfg.ScheduleBreakdownOrder != "base_last" {
		t.Fatalf("unexpected breakdown orders: %q %q", cfg.EstimateBreakdownOrder, cfg.ScheduleBreakdownOrder)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:8000"}) {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HANDOFF_STORE", " Redis ")
	t.Setenv("HANDOFF_TTL", "45m")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("SLOT_OPEN_HOUR", "8")
	t.Setenv("SLOT_INTERVAL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()
	if cfg.HandoffStore != HandoffStoreRedis {
		t.Fatalf("expected redis store, got %q", cfg.HandoffStore)
	}
	if cfg.HandoffTTL != 45*time.Minute || !cfg.RedisTLS {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.SlotOpenHour != 8 || cfg.SlotInterval != 30*time.Minute {
		t.Fatalf("unexpected slot overrides: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SLOT_CLOSE_HOUR", "late")
	t.Setenv("HANDOFF_TTL", "-5m")
	t.Setenv("SESSION_COOKIE_SECURE", "maybe")

	cfg := Load()
	if cfg.SlotCloseHour != 17 {
		t.Fatalf("expected fallback close hour, got %d", cfg.SlotCloseHour)
	}
	if cfg.HandoffTTL != 2*time.Hour {
		t.Fatalf("expected fallback ttl, got %v", cfg.HandoffTTL)
	}
	if cfg.SessionCookieSecure {
		t.Fatalf("expected secure=false fallback")
	}
}
