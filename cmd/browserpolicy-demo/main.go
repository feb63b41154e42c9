// Copyright 2022 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// browserpolicy-demo serves a page protected by the browser policy headers.
//
// Usage:
//
//	browserpolicy-demo -addr localhost:8080 -config policy.yaml
//
// Visit http://localhost:8080/ and inspect the X-Frame-Options and
// Content-Security-Policy response headers. Metrics are served on
// -metrics-addr under /metrics.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/safeweb/browserpolicy/internal/policyconfig"
	"github.com/safeweb/browserpolicy/safehttp/plugins/browserpolicy"
)

var (
	addr        = flag.String("addr", "localhost:8080", "address to serve the demo on")
	metricsAddr = flag.String("metrics-addr", "localhost:9090", "address to serve Prometheus metrics on, empty to disable")
	configPath  = flag.String("config", "", "YAML browser policy file, the built-in default policy is used when empty")
	logFormat   = flag.String("log-format", "text", "log format: text or json")
)

func main() {
	flag.Parse()
	slog.SetDefault(newLogger(*logFormat))

	store, err := newStore(*configPath)
	if err != nil {
		slog.Error("loading browser policy", "path", *configPath, "error", err)
		os.Exit(1)
	}
	xfo, _ := store.FrameOptions()
	csp, _ := store.ContentSecurityPolicy()
	slog.Info("browser policy ready", "x_frame_options", xfo, "csp", csp)

	if *metricsAddr != "" {
		go func() {
			m := http.NewServeMux()
			m.Handle("/metrics", promhttp.Handler())
			slog.Info("serving metrics", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, m); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	slog.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, newHandler(store)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// defaultCSP only allows content from the same origin, plus inline scripts
// and styles and data: images.
const defaultCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; img-src data: 'self'; style-src 'self' 'unsafe-inline';"

// newStore builds the Store from the config at path, or the default policy if
// path is empty.
func newStore(path string) (*browserpolicy.Store, error) {
	store := browserpolicy.NewStore()
	if path == "" {
		store.SetContentSecurityPolicy(defaultCSP)
		return store, nil
	}
	cfg, err := policyconfig.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(store); err != nil {
		return nil, err
	}
	return store, nil
}
