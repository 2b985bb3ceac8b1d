// Package prometheus provides Prometheus collectors for goTrust metrics.
//
// [NewPrometheusExporter] accepts an [goTrust.Engine] and exposes an [http.Handler]
// that renders all goTrust counters and histograms in Prometheus text exposition format.
// Counter names are prefixed gotrust_*_total; the single histogram is
// gotrust_score_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
