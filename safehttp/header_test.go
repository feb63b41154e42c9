// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package safehttp

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet(t *testing.T) {
	h := newHeader(http.Header{})
	if err := h.Set("Foo-Key", "Bar-Value"); err != nil {
		t.Fatalf(`h.Set("Foo-Key", "Bar-Value") got err: %v want: nil`, err)
	}
	if got, want := h.Get("Foo-Key"), "Bar-Value"; got != want {
		t.Errorf(`h.Get("Foo-Key") got: %q want %q`, got, want)
	}
}

func TestSetCanonicalization(t *testing.T) {
	h := newHeader(http.Header{})
	if err := h.Set("fOo-KeY", "Bar-Value"); err != nil {
		t.Fatalf(`h.Set("fOo-KeY", "Bar-Value") got err: %v want: nil`, err)
	}
	if got, want := h.Get("FoO-kEy"), "Bar-Value"; got != want {
		t.Errorf(`h.Get("FoO-kEy") got: %q want %q`, got, want)
	}
}

func TestWriteSetCookie(t *testing.T) {
	h := newHeader(http.Header{})
	if err := h.Set("Set-Cookie", "x=y"); err == nil {
		t.Error(`h.Set("Set-Cookie", "x=y") got: nil want: error`)
	}
	if err := h.Add("Set-Cookie", "x=y"); err == nil {
		t.Error(`h.Add("Set-Cookie", "x=y") got: nil want: error`)
	}
	if err := h.Del("Set-Cookie"); err == nil {
		t.Error(`h.Del("Set-Cookie") got: nil want: error`)
	}
	if diff := cmp.Diff([]string{}, h.Values("Set-Cookie")); diff != "" {
		t.Errorf(`h.Values("Set-Cookie") mismatch (-want +got):\n%s`, diff)
	}
}

func TestClaim(t *testing.T) {
	h := newHeader(http.Header{})
	set := h.Claim("Foo-Key")
	set([]string{"Bar-Value", "Pomelo-Value"})
	if diff := cmp.Diff([]string{"Bar-Value", "Pomelo-Value"}, h.Values("Foo-Key")); diff != "" {
		t.Errorf(`h.Values("Foo-Key") mismatch (-want +got):\n%s`, diff)
	}
	if !h.IsClaimed("foo-key") {
		t.Error(`h.IsClaimed("foo-key") got: false want: true`)
	}

	set(nil)
	if diff := cmp.Diff([]string{}, h.Values("Foo-Key")); diff != "" {
		t.Errorf(`h.Values("Foo-Key") after set(nil) mismatch (-want +got):\n%s`, diff)
	}
}

func TestWriteClaimed(t *testing.T) {
	h := newHeader(http.Header{})
	h.Claim("Foo-Key")([]string{"Bar-Value"})

	if err := h.Set("Foo-Key", "x"); err == nil {
		t.Error(`h.Set("Foo-Key", "x") got: nil want: error`)
	}
	if err := h.Add("foo-key", "x"); err == nil {
		t.Error(`h.Add("foo-key", "x") got: nil want: error`)
	}
	if err := h.Del("Foo-Key"); err == nil {
		t.Error(`h.Del("Foo-Key") got: nil want: error`)
	}
	if diff := cmp.Diff([]string{"Bar-Value"}, h.Values("Foo-Key")); diff != "" {
		t.Errorf(`h.Values("Foo-Key") mismatch (-want +got):\n%s`, diff)
	}
}

func TestClaimPanics(t *testing.T) {
	tests := []struct {
		name  string
		claim func(h Header)
	}{
		{
			name:  "Set-Cookie",
			claim: func(h Header) { h.Claim("Set-Cookie") },
		},
		{
			name: "twice",
			claim: func(h Header) {
				h.Claim("Foo-Key")
				h.Claim("foo-key")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Claim() got: no panic want: panic")
				}
			}()
			tt.claim(newHeader(http.Header{}))
		})
	}
}

func TestValuesModifyClone(t *testing.T) {
	h := newHeader(http.Header{})
	h.Add("Foo-Key", "Bar-Value")
	v := h.Values("Foo-Key")
	v[0] = "Pomelo-Value"
	if got, want := h.Get("Foo-Key"), "Bar-Value"; got != want {
		t.Errorf(`h.Get("Foo-Key") got: %q want %q`, got, want)
	}
}

func TestDel(t *testing.T) {
	h := newHeader(http.Header{})
	h.Add("Foo-Key", "Bar-Value")
	if err := h.Del("Foo-Key"); err != nil {
		t.Fatalf(`h.Del("Foo-Key") got err: %v want: nil`, err)
	}
	if got := h.Get("Foo-Key"); got != "" {
		t.Errorf(`h.Get("Foo-Key") got: %q want: ""`, got)
	}
}
