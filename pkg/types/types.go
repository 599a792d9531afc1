package types

import (
	"fmt"
	"strings"
	"time"
)

// Hostname is a DNS hostname managed by a provider entry.
type Hostname string

// IPAddress is a textual IP address as reported by the provider's
// discovery endpoint. Kept distinct from Hostname so the two cannot be
// swapped accidentally.
type IPAddress string

// IPSource identifies where a discovered IP address came from
type IPSource string

const (
	IPSourceNone    IPSource = "none"
	IPSourceCache   IPSource = "cache"
	IPSourceNetwork IPSource = "network"
)

// IPInfo is the result of one discovery pass. It is constructed fresh on
// every call and never mutated in place.
type IPInfo struct {
	Address     IPAddress
	LastChecked time.Time
	Source      IPSource
}

// Valid reports whether the discovery pass produced a usable address.
func (i IPInfo) Valid() bool {
	return i.Address != "" && i.Source != IPSourceNone
}

// CachedIP is the persisted shape of the discovery cache, one document
// per provider, overwritten wholesale on every successful network probe.
type CachedIP struct {
	IPAddress       IPAddress `json:"ipAddress"`
	LastTimeChecked time.Time `json:"lastTimeChecked"`
}

// HostnameIPMap maps each hostname to the last IP address the provider
// confirmed for it.
type HostnameIPMap map[Hostname]IPAddress

// ProviderEntry is one provider account's credentials plus the hostnames
// it manages. Loaded once at startup and read-only afterwards.
type ProviderEntry struct {
	Username   string     `json:"username"`
	Password   string     `json:"password"`
	Hostnames  []Hostname `json:"hostnames"`
	IPOverride IPAddress  `json:"ipAddress,omitempty"`
}

// Validate checks the invariants a provider entry must satisfy before the
// process is allowed to start.
func (e *ProviderEntry) Validate() error {
	if e.Username == "" {
		return fmt.Errorf("username must not be empty")
	}
	if e.Password == "" {
		return fmt.Errorf("password must not be empty")
	}
	if len(e.Hostnames) == 0 {
		return fmt.Errorf("hostnames must not be empty")
	}
	seen := make(map[Hostname]bool, len(e.Hostnames))
	for i, h := range e.Hostnames {
		if strings.TrimSpace(string(h)) == "" {
			return fmt.Errorf("hostname %d must not be blank", i)
		}
		if seen[h] {
			return fmt.Errorf("hostname %q listed twice", h)
		}
		seen[h] = true
	}
	return nil
}

// ResponseCode classifies one line of a provider update response
type ResponseCode string

const (
	ResponseUpdate      ResponseCode = "update"
	ResponseNoChange    ResponseCode = "nochange"
	ResponseServerError ResponseCode = "server_error"
	ResponseUserError   ResponseCode = "user_error"
	ResponseUnsupported ResponseCode = "unsupported"
)

// ResponseLine is the classification of a single provider response line,
// positionally aligned with the hostnames submitted in the same request.
type ResponseLine struct {
	Code ResponseCode
	Raw  string
}

// Confirmed reports whether the provider acknowledged the hostname at
// this position as up to date.
func (l ResponseLine) Confirmed() bool {
	return l.Code == ResponseUpdate || l.Code == ResponseNoChange
}
