package storage

import (
	"github.com/burrowlabs/burrow/pkg/types"
)

// Store defines the interface for Burrow's durable state. One JSON
// document is kept per provider and purpose: the discovery cache snapshot
// and the confirmed hostname-to-address map.
//
// Read failures and missing documents are indistinguishable to callers: a
// cold cache is always recoverable by re-discovery, so storage errors are
// logged by the implementation and surfaced only as absence. Writes that
// fail are logged and dropped for the same reason.
type Store interface {
	// GetCachedIP returns the discovery cache snapshot for the provider,
	// or ok=false when none is stored or the read failed.
	GetCachedIP(provider string) (*types.CachedIP, bool)

	// PutCachedIP overwrites the discovery cache snapshot for the provider.
	PutCachedIP(provider string, snapshot *types.CachedIP)

	// GetHostnameMap returns the confirmed hostname map for the provider.
	// The result is never nil; absence and read failure both yield an
	// empty map.
	GetHostnameMap(provider string) types.HostnameIPMap

	// PutHostnameMap overwrites the confirmed hostname map for the provider.
	PutHostnameMap(provider string, m types.HostnameIPMap)

	// Close releases the underlying database
	Close() error
}
