package goTrust

import (
	"testing"
	"time"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Profile.RedisPrefix != "bt" {
		t.Fatalf("expected prefix bt, got %q", cfg.Profile.RedisPrefix)
	}
	if cfg.Profile.TTL != 0 {
		t.Fatalf("expected no TTL by default, got %v", cfg.Profile.TTL)
	}
	if cfg.Audit.Enabled {
		t.Fatal("audit must be disabled by default")
	}
	if cfg.Audit.BufferSize != 1024 {
		t.Fatalf("expected audit buffer 1024, got %d", cfg.Audit.BufferSize)
	}
	if !cfg.Audit.DropIfFull {
		t.Fatal("audit must drop on full buffer by default")
	}
	if cfg.Metrics.Enabled || cfg.Metrics.EnableLatencyHistograms {
		t.Fatal("metrics must be disabled by default")
	}
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestConfigValidateRejectsEmptyPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile.RedisPrefix = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty redis prefix")
	}
}

func TestConfigValidateRejectsNegativeTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile.TTL = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative TTL")
	}
}

func TestConfigValidateRejectsZeroAuditBufferWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero audit buffer")
	}

	cfg.Audit.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero buffer with audit disabled must validate, got %v", err)
	}
}

func TestBuilderConfigIsolatedFromCaller(t *testing.T) {
	cfg := DefaultConfig()
	b := New().WithConfig(cfg)

	// Mutating the caller's copy after WithConfig must not reach the builder.
	cfg.Profile.RedisPrefix = "mutated"

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if engine.config.Profile.RedisPrefix != "bt" {
		t.Fatalf("caller mutation leaked into engine config: %q", engine.config.Profile.RedisPrefix)
	}
}
