/*
Package config loads Burrow's two configuration surfaces.

Provider configuration is a JSON array of account entries (username,
password, hostnames, optional ipAddress override). It is loaded once at
startup and any defect is fatal: a daemon that would run unattended for
months must refuse to start with credentials or hostnames it cannot trust.

Daemon settings are an optional YAML file (pass interval, metrics listen
address, data directory, log shape, operator contact). Every field has a
default, a missing file is fine, and command-line flags override file
values.

The two-tier split is deliberate: configuration errors abort startup,
while all runtime I/O failures elsewhere degrade and retry on the next
scheduled pass.
*/
package config
