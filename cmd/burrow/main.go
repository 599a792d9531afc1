package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/burrowlabs/burrow/pkg/config"
	"github.com/burrowlabs/burrow/pkg/discover"
	"github.com/burrowlabs/burrow/pkg/dyndns"
	"github.com/burrowlabs/burrow/pkg/events"
	"github.com/burrowlabs/burrow/pkg/log"
	"github.com/burrowlabs/burrow/pkg/metrics"
	"github.com/burrowlabs/burrow/pkg/reconciler"
	"github.com/burrowlabs/burrow/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "burrow",
	Short: "Burrow - dynamic DNS reconciliation daemon",
	Long: `Burrow keeps a set of DNS hostnames pointed at this machine's
current public IP address. It discovers the address through a provider's
discovery endpoint, caches it, and submits batched dyndns2 updates only
for hostnames whose recorded address differs.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Burrow version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reconciliation daemon",
	Long: `Run the daemon: reconcile all configured hostnames immediately,
then once per interval until interrupted.`,
	RunE: runDaemon,
}

func init() {
	runCmd.Flags().StringP("config", "c", "/etc/burrow/providers.json", "Provider configuration file (JSON)")
	runCmd.Flags().String("settings", "/etc/burrow/settings.yaml", "Daemon settings file (YAML, optional)")
	runCmd.Flags().String("data-dir", "", "Data directory (overrides settings)")
	runCmd.Flags().Duration("interval", 0, "Pass interval (overrides settings)")
	runCmd.Flags().String("provider", "dyndns", "Provider name used to scope stored state")
	runCmd.Flags().Bool("once", false, "Run a single pass and exit")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	settingsPath, _ := cmd.Flags().GetString("settings")
	dataDir, _ := cmd.Flags().GetString("data-dir")
	interval, _ := cmd.Flags().GetDuration("interval")
	provider, _ := cmd.Flags().GetString("provider")
	once, _ := cmd.Flags().GetBool("once")

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		settings.DataDir = dataDir
	}
	if interval > 0 {
		settings.Interval = interval
	}

	log.Init(log.Config{
		Level:      log.Level(settings.LogLevel),
		JSONOutput: settings.JSONLog,
		Output:     os.Stdout,
	})
	metrics.SetVersion(Version)

	entries, err := config.LoadProviders(configPath)
	if err != nil {
		return err
	}
	log.Logger.Info().
		Int("entries", len(entries)).
		Str("config", configPath).
		Msg("Provider configuration loaded")

	if err := os.MkdirAll(settings.DataDir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	store, err := storage.NewBoltStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()
	metrics.RegisterComponent("storage", true, "open")

	client := dyndns.NewClient(dyndns.Config{
		Version: Version,
		Contact: settings.Contact,
	})
	discovery := discover.NewService(provider, store, client)

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()
	go logEvents(broker.Subscribe())

	recon := reconciler.NewReconciler(reconciler.Config{
		Provider:   provider,
		Entries:    entries,
		Store:      store,
		Discoverer: discovery,
		Updater:    client,
		Broker:     broker,
		Interval:   settings.Interval,
	})
	metrics.RegisterComponent("reconciler", true, "starting")

	if once {
		recon.Update()
		return nil
	}

	go serveMetrics(settings.MetricsAddr)

	recon.Start()
	defer recon.Stop()
	log.Logger.Info().
		Dur("interval", settings.Interval).
		Str("metrics_addr", settings.MetricsAddr).
		Msg("Daemon started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Logger.Info().Str("signal", sig.String()).Msg("Shutting down")

	return nil
}

// serveMetrics exposes /metrics, /healthz and /readyz
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", metrics.HealthHandler())
	mux.HandleFunc("/readyz", metrics.ReadyHandler())

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Logger.Error().Err(err).Msg("Metrics server stopped")
	}
}

// logEvents drains the broker into the debug log, except user errors,
// which stay at error level so operators see them
func logEvents(sub events.Subscriber) {
	for event := range sub {
		evt := log.Logger.Debug()
		if event.Type == events.EventUpdateUserError {
			evt = log.Logger.Error()
		}
		evt.Str("event", string(event.Type)).
			Str("event_id", event.ID).
			Fields(map[string]interface{}{"metadata": event.Metadata}).
			Msg(event.Message)
	}
}
