// Package goTrust provides a continuous behavioral authentication engine:
// it scores streams of keystroke, pointer, and touch telemetry against a
// per-user adaptive baseline and maps the fused confidence score to an
// access decision (allow, monitor, challenge, block).
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build]. Scoring for different users never contends on a shared
// lock; score-then-update sequences for the same user are serialized by the
// profile store.
//
// # Architecture boundaries
//
// goTrust is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (ScoreResult, ChannelResult, Decision, etc.). Profile
// persistence lives in the profile sub-package behind [profile.Store]; the
// engine never reaches around that boundary.
//
// # What this package must NOT do
//
//   - Authenticate a session or issue credentials of any kind. The engine
//     only scores telemetry and returns a decision for the caller to enforce.
//   - Store raw telemetry beyond the bounded per-channel sample digests.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//
// # Performance contract
//
// Score is the hot path. Every operation is a bounded in-memory computation
// plus at most one round-trip to the profile store backend; there is no
// blocking point beyond the per-user critical section.
package goTrust
