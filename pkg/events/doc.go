/*
Package events provides an in-process event broker for reconciliation
lifecycle notifications.

The reconciler publishes events as passes start and complete, as hostnames
are confirmed, and, most importantly, when the provider reports a user
error (bad credentials, unowned hostname, account standing). User errors
will not self-resolve by retrying, so they are surfaced as a distinct
event type that an operator-facing subscriber can alert on.

Subscribers receive events over buffered channels; a slow subscriber is
skipped rather than allowed to block the reconciler.
*/
package events
