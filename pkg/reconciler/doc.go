/*
Package reconciler keeps configured DNS hostnames pointed at the caller's
current public IP address.

One Update call is one pass: the public address is discovered once, then
every provider entry is processed in configuration order. Per entry, the
stored hostname map is diffed against the detected address (and the
entry's optional override), the hostnames that disagree are submitted in a
single batched request, the line-oriented response is reconciled
positionally, and only hostnames the provider confirmed are committed back
to storage. Commits happen after each entry, not at the end of the pass,
so a crash mid-pass keeps already-confirmed updates.

# Update Decision

For each hostname, with detected the discovered address, stored the last
confirmed address, and desired the entry's override:

  - detected absent or stored absent → update
  - no override → update iff detected ≠ stored
  - override present → update iff override ≠ detected

The override compares against the detected address, not the stored one:
it governs whether the override itself still needs to be pushed.

# Failure Semantics

Transport failures, non-success statuses, and response line-count
mismatches abort the entry without mutating state; the next scheduled pass
retries cleanly. A provider user error flags the entry failed and raises
an event and a metric, because retrying cannot fix credentials or
hostname ownership, but the pass itself continues and the daemon keeps
its schedule.

# Driver Loop

Start runs one pass immediately and then one per interval (six hours by
default), strictly sequentially and with no overlap. Stop ends the loop;
an in-flight pass finishes on its own HTTP timeouts.
*/
package reconciler
