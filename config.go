package goTrust

import (
	"errors"
	"time"
)

// Config defines a public type used by goTrust APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Profile ProfileConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
PROFILE CONFIG
====================================
*/

// ProfileConfig defines a public type used by goTrust APIs.
//
// ProfileConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ProfileConfig struct {
	RedisPrefix string
	// TTL lets the Redis backend expire idle profiles; 0 disables expiry.
	// The engine itself never deletes a profile during process lifetime.
	TTL time.Duration
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goTrust APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goTrust APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			RedisPrefix: "bt",
			TTL:         0,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// DefaultConfig returns the engine defaults: in-memory profile store prefix,
// audit and metrics disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

func cloneConfig(cfg Config) Config {
	// All fields are value types today; clone exists so future reference
	// fields cannot leak caller mutations into a built engine.
	return cfg
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if c.Profile.RedisPrefix == "" {
		return errors.New("Profile RedisPrefix must not be empty")
	}
	if c.Profile.TTL < 0 {
		return errors.New("Profile TTL must be >= 0")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when Audit is enabled")
	}
	return nil
}
