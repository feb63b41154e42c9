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

package policyconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/safeweb/browserpolicy/internal/metrics"
	"github.com/safeweb/browserpolicy/safehttp/plugins/browserpolicy"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want map[string]string
	}{
		{
			name: "empty",
			yaml: "",
			want: map[string]string{"X-Frame-Options": "SAMEORIGIN"},
		},
		{
			name: "deny and script origin",
			yaml: `
framing: deny
resources:
  - name: script
    origins: [https://cdn.example.com]
`,
			want: map[string]string{
				"X-Frame-Options":         "DENY",
				"Content-Security-Policy": "script-src https://cdn.example.com;",
			},
		},
		{
			name: "allow from",
			yaml: `
framing: allow-from
framing_origin: https://parent.example.com
`,
			want: map[string]string{"X-Frame-Options": "ALLOW-FROM https://parent.example.com"},
		},
		{
			name: "seeded policy then toggles",
			yaml: `
framing: any
content_security_policy: "default-src 'self'; script-src 'self' 'unsafe-inline';"
inline_scripts: false
eval: true
inline_styles: true
`,
			want: map[string]string{
				"Content-Security-Policy": "default-src 'self'; script-src 'self' 'unsafe-eval'; style-src 'unsafe-inline';",
			},
		},
		{
			name: "resource order within entry",
			yaml: `
framing: sameorigin
resources:
  - name: img
    origins: [https://img.example.com]
    data_url: true
    same_origin: true
    disallow: true
  - name: object
    disallow: true
  - name: connect
    same_origin: true
    origins: [wss://ws.example.com, wss://ws.example.com]
`,
			want: map[string]string{
				"X-Frame-Options":         "SAMEORIGIN",
				"Content-Security-Policy": "img-src 'none' 'self' data: https://img.example.com; object-src 'none'; connect-src 'self' wss://ws.example.com wss://ws.example.com;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() got err: %v want: nil", err)
			}
			s := browserpolicy.NewStore()
			if err := cfg.Apply(s); err != nil {
				t.Fatalf("cfg.Apply() got err: %v want: nil", err)
			}
			if diff := cmp.Diff(tt.want, s.Headers()); diff != "" {
				t.Errorf("s.Headers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown framing", yaml: "framing: allowall\n"},
		{name: "allow-from without origin", yaml: "framing: allow-from\n"},
		{name: "unknown resource", yaml: "resources:\n  - name: worker\n"},
		{name: "unknown field", yaml: "frame: deny\n"},
		{name: "malformed", yaml: "framing: [deny\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Parse() got err: %v want: %v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestApplyInvalidLeavesStore(t *testing.T) {
	rejected := metrics.PolicyUpdates.WithLabelValues("rejected")
	before := testutil.ToFloat64(rejected)

	s := browserpolicy.NewStore()
	cfg := &Config{
		Framing:   FramingDeny,
		Resources: []Resource{{Name: "script", Origins: []string{"https://cdn.example.com"}}, {Name: "applet"}},
	}
	if err := cfg.Apply(s); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("cfg.Apply() got err: %v want: %v", err, ErrInvalidConfig)
	}
	want := map[string]string{"X-Frame-Options": "SAMEORIGIN"}
	if diff := cmp.Diff(want, s.Headers()); diff != "" {
		t.Errorf("s.Headers() mismatch (-want +got):\n%s", diff)
	}
	if got := testutil.ToFloat64(rejected) - before; got != 1 {
		t.Errorf("rejected updates got: %v want: 1", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	data := []byte("framing: deny\ninline_scripts: true\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() got err: %v want: nil", err)
	}
	if cfg.Framing != FramingDeny {
		t.Errorf("cfg.Framing got: %q want: %q", cfg.Framing, FramingDeny)
	}
	if cfg.InlineScripts == nil || !*cfg.InlineScripts {
		t.Errorf("cfg.InlineScripts got: %v want: true", cfg.InlineScripts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() got err: %v want: %v", err, os.ErrNotExist)
	}
}
