/*
Package metrics exposes Prometheus metrics and health endpoints for Burrow.

Metrics are package-level collectors registered at init time: pass counts
and durations, per-hostname update results by response code, user errors
requiring operator action, and discovery probe/cache-hit counts. Handler()
returns the promhttp handler for /metrics.

The package also carries an in-process HealthChecker. Components register
their health (storage open, last pass outcome) and /healthz and /readyz
report the aggregate, suitable for a systemd watchdog or container probe.

# Key Metrics

  - burrow_passes_total, burrow_pass_duration_seconds
  - burrow_last_pass_timestamp_seconds: alert when this stops advancing
  - burrow_update_results_total{code}: update vs nochange vs errors
  - burrow_user_errors_total: nonzero means operator action is required
  - burrow_discovery_probes_total{outcome}, burrow_discovery_cache_hits_total
*/
package metrics
