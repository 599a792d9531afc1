package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/burrowlabs/burrow/pkg/types"
)

// rawEntry mirrors the on-disk entry shape. ipAddress is a pointer so an
// explicitly empty value can be rejected rather than read as absent.
type rawEntry struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Hostnames []string `json:"hostnames"`
	IPAddress *string  `json:"ipAddress"`
}

// LoadProviders reads and validates the provider configuration file, a
// JSON array of provider entries. Any failure here is fatal: the daemon
// must not start with credentials or hostnames it cannot trust.
func LoadProviders(path string) ([]types.ProviderEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider config %s: %w", path, err)
	}

	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse provider config %s: %w", path, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("provider config %s contains no entries", path)
	}

	entries := make([]types.ProviderEntry, 0, len(raw))
	for i, r := range raw {
		entry := types.ProviderEntry{
			Username: r.Username,
			Password: r.Password,
		}
		for _, h := range r.Hostnames {
			entry.Hostnames = append(entry.Hostnames, types.Hostname(h))
		}
		if r.IPAddress != nil {
			if *r.IPAddress == "" {
				return nil, fmt.Errorf("entry %d: ipAddress present but empty", i)
			}
			entry.IPOverride = types.IPAddress(*r.IPAddress)
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
