package reconciler

import (
	"context"
	"time"

	"github.com/burrowlabs/burrow/pkg/events"
	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/metrics"
	"github.com/burrowlabs/burrow/pkg/storage"
	"github.com/burrowlabs/burrow/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultInterval is the cadence of the driver loop
const DefaultInterval = 6 * time.Hour

// Discoverer resolves the current public IP address
type Discoverer interface {
	IPAddress(ctx context.Context) types.IPInfo
}

// Updater submits one batched hostname update to the provider
type Updater interface {
	Update(ctx context.Context, entry types.ProviderEntry, hostnames []types.Hostname, myip types.IPAddress) ([]types.ResponseLine, error)
}

// Config assembles a Reconciler's collaborators
type Config struct {
	Provider   string
	Entries    []types.ProviderEntry
	Store      storage.Store
	Discoverer Discoverer
	Updater    Updater
	Broker     *events.Broker
	Interval   time.Duration
}

// Reconciler keeps the configured hostnames pointed at the current public
// IP address. One Update call is one full pass over all provider entries;
// passes run strictly sequentially and each entry's confirmed results are
// persisted before the next entry starts, so a crash mid-pass keeps what
// was already confirmed.
type Reconciler struct {
	provider   string
	entries    []types.ProviderEntry
	store      storage.Store
	discoverer Discoverer
	updater    Updater
	broker     *events.Broker
	interval   time.Duration
	stopCh     chan struct{}
	logger     zerolog.Logger

	lastDetected types.IPAddress
}

// NewReconciler creates a reconciler
func NewReconciler(cfg Config) *Reconciler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reconciler{
		provider:   cfg.Provider,
		entries:    cfg.Entries,
		store:      cfg.Store,
		discoverer: cfg.Discoverer,
		updater:    cfg.Updater,
		broker:     cfg.Broker,
		interval:   interval,
		stopCh:     make(chan struct{}),
		logger:     log.WithComponent("reconciler"),
	}
}

// Start begins the reconciliation loop
func (r *Reconciler) Start() {
	go r.run()
}

// Stop stops the reconciler
func (r *Reconciler) Stop() {
	close(r.stopCh)
}

// run is the driver loop: one pass immediately, then one per interval.
// A pass never returns an error; failures are logged and the next
// scheduled pass retries cleanly.
func (r *Reconciler) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Update()

	for {
		select {
		case <-ticker.C:
			r.Update()
		case <-r.stopCh:
			return
		}
	}
}

// Update performs one full reconciliation pass over all provider entries
func (r *Reconciler) Update() {
	timer := metrics.NewTimer()
	defer func() {
		timer.ObserveDuration(metrics.PassDuration)
		metrics.PassesTotal.Inc()
		metrics.LastPassTimestamp.SetToCurrentTime()
	}()

	passID := uuid.NewString()
	passLog := r.logger.With().Str("pass_id", passID).Logger()
	passLog.Info().Int("entries", len(r.entries)).Msg("Reconciliation pass started")
	r.publish(events.EventPassStarted, "reconciliation pass started", map[string]string{"pass_id": passID})

	ctx := context.Background()

	// Discovered once per pass and shared across all entries
	info := r.discoverer.IPAddress(ctx)
	if !info.Valid() {
		passLog.Warn().Msg("No public IP address available, all hostnames will be resubmitted")
	} else if info.Address != r.lastDetected {
		if r.lastDetected != "" {
			r.publish(events.EventIPChanged, "public IP address changed", map[string]string{
				"pass_id":  passID,
				"previous": string(r.lastDetected),
				"current":  string(info.Address),
			})
		}
		r.lastDetected = info.Address
	}

	healthy := true
	for i := range r.entries {
		if !r.processEntry(ctx, passLog, i, &r.entries[i], info) {
			healthy = false
		}
	}

	metrics.UpdateComponent("reconciler", healthy, "last pass "+passID)
	passLog.Info().Bool("clean", healthy).Msg("Reconciliation pass completed")
	r.publish(events.EventPassCompleted, "reconciliation pass completed", map[string]string{"pass_id": passID})
}

// processEntry runs the per-entry pipeline: diff, one batched update
// request, response reconciliation, and a single commit to storage.
// It reports false when the entry's processing was aborted or the
// provider flagged a user error.
func (r *Reconciler) processEntry(ctx context.Context, passLog zerolog.Logger, index int, entry *types.ProviderEntry, info types.IPInfo) bool {
	entryLog := passLog.With().Int("entry", index).Str("username", entry.Username).Logger()

	m := r.store.GetHostnameMap(r.provider)

	var pending []types.Hostname
	for _, h := range entry.Hostnames {
		stored, ok := m[h]
		if needsUpdate(info.Address, stored, ok, entry.IPOverride) {
			pending = append(pending, h)
		}
	}

	if len(pending) == 0 {
		entryLog.Debug().Msg("All hostnames up to date, skipping update request")
		return true
	}

	entryLog.Info().
		Int("hostnames", len(pending)).
		Str("detected", string(info.Address)).
		Str("override", string(entry.IPOverride)).
		Msg("Submitting hostname update")

	metrics.UpdateRequestsTotal.Inc()
	lines, err := r.updater.Update(ctx, *entry, pending, entry.IPOverride)
	if err != nil {
		metrics.EntriesFailed.Inc()
		entryLog.Error().Err(err).Msg("Update request failed, entry aborted without mutation")
		return false
	}

	// A count mismatch means results cannot be attributed to hostnames,
	// so nothing is committed and the next pass retries cleanly.
	if len(lines) != len(pending) {
		metrics.EntriesFailed.Inc()
		entryLog.Error().
			Int("submitted", len(pending)).
			Int("received", len(lines)).
			Msg("Response line count does not match submitted hostnames, entry aborted")
		return false
	}

	userError := false
	for i, line := range lines {
		hostname := pending[i]
		metrics.UpdateResultsTotal.WithLabelValues(string(line.Code)).Inc()

		switch {
		case line.Confirmed():
			m[hostname] = info.Address
			entryLog.Info().
				Str("hostname", string(hostname)).
				Str("address", string(info.Address)).
				Str("response", line.Raw).
				Msg("Hostname confirmed")
			if line.Code == types.ResponseUpdate {
				r.publish(events.EventHostnameUpdated, "hostname updated", map[string]string{
					"hostname": string(hostname),
					"address":  string(info.Address),
				})
			}
		case line.Code == types.ResponseUserError:
			userError = true
			metrics.UserErrorsTotal.Inc()
			r.publish(events.EventUpdateUserError, "provider reported user error", map[string]string{
				"hostname": string(hostname),
				"code":     line.Raw,
			})
		case line.Code == types.ResponseServerError:
			r.publish(events.EventUpdateServerError, "provider reported server error", map[string]string{
				"hostname": string(hostname),
				"code":     line.Raw,
			})
		}
	}

	r.store.PutHostnameMap(r.provider, m)

	if userError {
		entryLog.Error().Msg("Entry flagged failed: provider reported a user error, retrying will not resolve it without operator action")
		return false
	}
	return true
}

// needsUpdate is the update-decision rule. A hostname needs a network
// update when no address was detected, when nothing is stored for it yet,
// or when the governing address (the override when present, the stored
// address otherwise) disagrees with the detected one.
func needsUpdate(detected, stored types.IPAddress, storedOK bool, desired types.IPAddress) bool {
	if detected == "" || !storedOK {
		return true
	}
	if desired == "" {
		return detected != stored
	}
	return desired != detected
}

func (r *Reconciler) publish(eventType events.EventType, message string, metadata map[string]string) {
	if r.broker == nil {
		return
	}
	r.broker.Publish(events.New(eventType, message, metadata))
}
