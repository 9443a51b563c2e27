// main.go - ash-agent composition root
// Copyright (C) 2024  The ash developers.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command ash-agent is the composition root for the headless core: it
// loads settings, opens the bbolt-backed pad store, registers the
// orchestrator's prometheus metrics and serves them on /metrics, then
// waits for SIGINT/SIGTERM. It constructs no relay client, clock or
// orchestrator itself; presenters (CLI, mobile, desktop) link against
// the internal packages directly rather than this binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/carlmjohnson/versioninfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/monadial/ash/internal/config"
	"github.com/monadial/ash/internal/logging"
	"github.com/monadial/ash/internal/orchestrator"
	"github.com/monadial/ash/internal/padstore"
)

func main() {
	var (
		dataDir      = flag.String("data-dir", "", "directory holding the agent's state (required)")
		configPath   = flag.String("config", "", "path to the TOML settings file (defaults to <data-dir>/settings.toml)")
		logLevel     = flag.String("log-level", "NOTICE", "log level: DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL")
		metricsAddr  = flag.String("metrics-addr", "127.0.0.1:9191", "address to serve /metrics on")
		showVersion  = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(versioninfo.Short())
		return
	}

	if *dataDir == "" {
		fmt.Fprintln(os.Stderr, "ash-agent: -data-dir is required")
		os.Exit(1)
	}

	logging.Init(*logLevel)
	log := logging.GetLogger("ash-agent")

	if *configPath == "" {
		*configPath = filepath.Join(*dataDir, "settings.toml")
	}
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("failed to load settings: %s", err)
		os.Exit(1)
	}
	log.Noticef("using relay %s", settings.RelayURL)

	passphrase, err := devicePassphrase()
	if err != nil {
		log.Errorf("failed to obtain device passphrase: %s", err)
		os.Exit(1)
	}

	store, err := padstore.Open(filepath.Join(*dataDir, "pads.bolt"), passphrase, log)
	if err != nil {
		log.Errorf("failed to open pad store: %s", err)
		os.Exit(1)
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	metrics := orchestrator.NewMetrics(registry)
	_ = metrics // wired into per-conversation Dependencies by presenters, not this composition root directly

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{Addr: *metricsAddr, Handler: mux}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("metrics server stopped: %s", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Notice("shutting down")
		cancel()
		metricsServer.Close()
	}()

	<-ctx.Done()
}

// devicePassphrase resolves the passphrase used to seal the pad
// store at rest. Production wiring takes this from the host
// platform's secure-enclave-backed keychain (the SecretStore port in
// internal/ports); this composition root reads it from the
// environment as a minimal standalone substitute.
func devicePassphrase() ([]byte, error) {
	if v := os.Getenv("ASH_DEVICE_PASSPHRASE"); v != "" {
		return []byte(v), nil
	}
	return nil, fmt.Errorf("ASH_DEVICE_PASSPHRASE must be set (no SecretStore wired into this binary)")
}
