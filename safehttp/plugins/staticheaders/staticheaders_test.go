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

package staticheaders_test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/safeweb/browserpolicy/safehttp"
	"github.com/safeweb/browserpolicy/safehttp/plugins/staticheaders"
	"github.com/safeweb/browserpolicy/safehttp/safehttptest"
)

func TestInterceptor(t *testing.T) {
	tests := []struct {
		name string
		it   staticheaders.Interceptor
		want http.Header
	}{
		{
			name: "default",
			it:   staticheaders.Interceptor{},
			want: http.Header{
				"X-Content-Type-Options": {"nosniff"},
				"X-Xss-Protection":       {"0"},
				"Referrer-Policy":        {"strict-origin-when-cross-origin"},
			},
		},
		{
			name: "custom referrer policy",
			it:   staticheaders.Interceptor{ReferrerPolicy: "no-referrer"},
			want: http.Header{
				"X-Content-Type-Options": {"nosniff"},
				"X-Xss-Protection":       {"0"},
				"Referrer-Policy":        {"no-referrer"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := safehttptest.NewRequest(safehttp.MethodGet, "/", nil)
			fakeRW, rr := safehttptest.NewFakeResponseWriter()

			tt.it.Before(fakeRW, req, nil)

			if got, want := rr.Code, int(safehttp.StatusOK); got != want {
				t.Errorf("rr.Code got: %v want: %v", got, want)
			}
			if diff := cmp.Diff(tt.want, rr.Header()); diff != "" {
				t.Errorf("rr.Header() mismatch (-want +got):\n%s", diff)
			}
			if err := fakeRW.Header().Set("X-Content-Type-Options", "sniff"); err == nil {
				t.Error(`fakeRW.Header().Set("X-Content-Type-Options") got: nil want: error`)
			}
		})
	}
}
