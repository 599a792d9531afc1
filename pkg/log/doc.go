/*
Package log provides structured logging for Burrow using zerolog.

The package wraps zerolog with a global logger instance, configurable via
log.Init() for level, JSON-versus-console output, and destination. Child
loggers carrying a component, provider, hostname, or pass ID field are
created through the With* helpers so every line of a reconciliation pass
can be correlated.

# Usage

Initializing the logger:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

Component loggers:

	reconLog := log.WithComponent("reconciler")
	reconLog.Info().Str("pass_id", id).Msg("pass started")

	log.Logger.Error().
		Err(err).
		Str("provider", "dyndns").
		Msg("update request failed")

# Integration Points

  - pkg/discover: logs probe failures and cache decisions
  - pkg/reconciler: logs pass lifecycle and per-hostname outcomes
  - pkg/dyndns: logs provider response codes and remediation guidance
  - pkg/storage: logs swallowed read/write failures
*/
package log
