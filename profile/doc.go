// Package profile owns per-user behavioral state: adaptive baselines,
// bounded sample digests, the confidence history ledger, and the Store
// abstraction that serializes access to them.
//
// All mutation happens inside Store.Update callbacks so that the per-user
// critical section lives inside the storage boundary, not at the call site.
//
// # What this package must NOT do
//
//   - Score telemetry or make decisions (that is the root package's job).
//   - Hold raw telemetry batches; only bounded digests of batch values.
//   - Import the root goTrust package (no import cycles).
package profile
