/*
Package discover resolves the caller's current public IP address with a
two-tier cache-then-network lookup.

A cached snapshot younger than one hour answers immediately. Otherwise the
provider's discovery endpoint is probed over HTTP and, on success only,
the result is persisted back to the cache. The service never returns an
error: discovery failure produces an IPInfo with Source none, which the
reconciler treats as "resubmit everything once an address is known again".

Staleness is measured from the wall-clock time of the last successful
check, not from the polling cadence, so the service behaves the same under
irregular invocation timing.
*/
package discover
