/*
Package types defines the shared data model for Burrow.

Values here are plain data with no behavior beyond validation: the result
of an IP discovery pass (IPInfo), the persisted discovery cache snapshot
(CachedIP), the confirmed hostname-to-address map (HostnameIPMap), provider
account configuration (ProviderEntry), and the classification of provider
response lines (ResponseCode, ResponseLine).

Hostname and IPAddress are distinct string types so that a hostname can
never be passed where an address is expected, and vice versa.

# Lifecycles

IPInfo is reconstructed on every discovery call and discarded once the
reconciler has used it. HostnameIPMap lives across passes: it is read at
the start of each provider entry, mutated in memory, and persisted after
the entry completes. CachedIP is overwritten wholesale on every successful
network probe and never updated on cache hits or failures.
*/
package types
