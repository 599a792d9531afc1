package discover

import (
	"context"
	"time"

	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/metrics"
	"github.com/burrowlabs/burrow/pkg/storage"
	"github.com/burrowlabs/burrow/pkg/types"
	"github.com/rs/zerolog"
)

// MaxCacheAge is how long a cached discovery result stays fresh. Providers
// rate-limit their discovery endpoints, so probing on every pass is both
// wasteful and a good way to get blocked; one hour still bounds how long
// an address change can go unnoticed.
const MaxCacheAge = time.Hour

// Prober resolves the current public IP address over the network
type Prober interface {
	CurrentIP(ctx context.Context) (types.IPAddress, error)
}

// Service resolves the caller's public IP address, preferring a cached
// value and falling back to a network probe once the cache goes stale.
// Network results are persisted back to the cache; cache hits and
// failures never write.
type Service struct {
	provider string
	store    storage.Store
	prober   Prober
	maxAge   time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewService creates a discovery service for one provider
func NewService(provider string, store storage.Store, prober Prober) *Service {
	return &Service{
		provider: provider,
		store:    store,
		prober:   prober,
		maxAge:   MaxCacheAge,
		now:      time.Now,
		logger:   log.WithComponent("discover"),
	}
}

// IPAddress returns the current public IP address. It never returns an
// error: any failure yields an IPInfo with Source none, and the caller
// decides what a missing address means for its own work.
func (s *Service) IPAddress(ctx context.Context) types.IPInfo {
	lastChecked := time.Time{}
	var cached *types.CachedIP

	if snapshot, ok := s.store.GetCachedIP(s.provider); ok {
		cached = snapshot
		lastChecked = snapshot.LastTimeChecked
	}

	// Freshness keys off the last successful check, not the polling
	// interval, so irregular invocation timing cannot starve probes.
	if cached == nil || !s.now().Before(lastChecked.Add(s.maxAge)) {
		return s.probe(ctx)
	}

	metrics.DiscoveryCacheHitsTotal.Inc()
	s.logger.Debug().
		Str("address", string(cached.IPAddress)).
		Time("last_checked", lastChecked).
		Msg("Using cached IP address")

	return types.IPInfo{
		Address:     cached.IPAddress,
		LastChecked: lastChecked,
		Source:      types.IPSourceCache,
	}
}

func (s *Service) probe(ctx context.Context) types.IPInfo {
	address, err := s.prober.CurrentIP(ctx)
	if err != nil {
		metrics.DiscoveryProbesTotal.WithLabelValues("failure").Inc()
		s.logger.Error().Err(err).Msg("IP discovery probe failed")
		return types.IPInfo{Source: types.IPSourceNone}
	}

	now := s.now()
	metrics.DiscoveryProbesTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("address", string(address)).Msg("Discovered public IP address")

	s.store.PutCachedIP(s.provider, &types.CachedIP{
		IPAddress:       address,
		LastTimeChecked: now,
	})

	return types.IPInfo{
		Address:     address,
		LastChecked: now,
		Source:      types.IPSourceNetwork,
	}
}
