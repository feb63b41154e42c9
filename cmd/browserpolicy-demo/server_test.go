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

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPageInlinesConfigWhenAllowed(t *testing.T) {
	store, err := newStore("")
	if err != nil {
		t.Fatalf("newStore(\"\") got err: %v want: nil", err)
	}

	rr := httptest.NewRecorder()
	newHandler(store).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got, want := rr.Code, http.StatusOK; got != want {
		t.Fatalf("rr.Code got: %d want: %d", got, want)
	}
	if got, want := rr.Header().Get("X-Frame-Options"), "SAMEORIGIN"; got != want {
		t.Errorf(`rr.Header().Get("X-Frame-Options") got: %q want: %q`, got, want)
	}
	if got, want := rr.Header().Get("X-Content-Type-Options"), "nosniff"; got != want {
		t.Errorf(`rr.Header().Get("X-Content-Type-Options") got: %q want: %q`, got, want)
	}
	if got := rr.Header().Get("Content-Security-Policy"); got != defaultCSP {
		t.Errorf(`rr.Header().Get("Content-Security-Policy") got: %q want: %q`, got, defaultCSP)
	}
	if body := rr.Body.String(); !strings.Contains(body, "<script>"+runtimeConfig+"</script>") {
		t.Errorf("body does not inline the runtime config:\n%s", body)
	}
}

func TestPageLoadsConfigScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	policy := `
framing: deny
resources:
  - name: script
    same_origin: true
`
	if err := os.WriteFile(path, []byte(policy), 0o600); err != nil {
		t.Fatal(err)
	}
	store, err := newStore(path)
	if err != nil {
		t.Fatalf("newStore() got err: %v want: nil", err)
	}
	h := newHandler(store)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if body := rr.Body.String(); !strings.Contains(body, `<script src="/runtime-config.js"></script>`) {
		t.Errorf("body does not load the runtime config script:\n%s", body)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/runtime-config.js", nil))
	if got, want := rr.Body.String(), runtimeConfig; got != want {
		t.Errorf("runtime config body got: %q want: %q", got, want)
	}
	if got, want := rr.Header().Get("X-Frame-Options"), "DENY"; got != want {
		t.Errorf(`rr.Header().Get("X-Frame-Options") got: %q want: %q`, got, want)
	}
	if got, want := rr.Header().Get("Content-Security-Policy"), "script-src 'self';"; got != want {
		t.Errorf(`rr.Header().Get("Content-Security-Policy") got: %q want: %q`, got, want)
	}
}

func TestUnknownPath(t *testing.T) {
	store, _ := newStore("")
	rr := httptest.NewRecorder()
	newHandler(store).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if got, want := rr.Code, http.StatusNotFound; got != want {
		t.Errorf("rr.Code got: %d want: %d", got, want)
	}
}

func TestNewStoreInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("framing: sometimes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := newStore(path); err == nil {
		t.Error("newStore() got err: nil want: error")
	}
}
