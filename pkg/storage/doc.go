/*
Package storage provides BoltDB-backed state persistence for Burrow.

The package implements the Store interface using BoltDB, keeping two
buckets of per-provider JSON documents: the discovery cache snapshot
(ip_cache) and the confirmed hostname-to-address map (hostname_maps).
Documents are pretty-printed JSON, upserted wholesale within a single
write transaction.

# Architecture

	┌──────────────────── BOLTDB STORAGE ─────────────────────┐
	│                                                           │
	│  ┌────────────────────────────────────────────┐          │
	│  │            BoltStore                        │          │
	│  │  - File: <dataDir>/burrow.db                │          │
	│  │  - Transactions: ACID with fsync            │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                     │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │              Bucket Structure               │          │
	│  │  ┌────────────────────────────┐             │          │
	│  │  │ ip_cache       (provider)  │             │          │
	│  │  │ hostname_maps  (provider)  │             │          │
	│  │  └────────────────────────────┘             │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                     │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          JSON Serialization                 │          │
	│  │  - MarshalIndent: struct → pretty JSON      │          │
	│  │  - Unmarshal: JSON bytes → struct           │          │
	│  └────────────────────────────────────────────┘          │
	└──────────────────────────────────────────────────────────┘

# Error Semantics

Storage deliberately never surfaces errors to its callers. A document that
is missing, unreadable, or unparsable reads as absent; a write that fails
is logged and dropped. A cold cache is always recoverable: discovery
re-probes the network and the reconciler resubmits hostnames whose stored
address is unknown. This is the one layer where swallowing errors is
strictly safer than propagating them.

# Usage

	store, err := storage.NewBoltStore("/var/lib/burrow")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	m := store.GetHostnameMap("dyndns")
	m["home.example.com"] = "203.0.113.7"
	store.PutHostnameMap("dyndns", m)

# Integration Points

  - pkg/discover: reads and writes the ip_cache snapshot
  - pkg/reconciler: reads and writes hostname_maps at per-entry commit
    points, so a crash mid-pass keeps already-confirmed updates
*/
package storage
