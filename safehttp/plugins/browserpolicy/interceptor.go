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

package browserpolicy

import (
	"net/http"

	"github.com/safeweb/browserpolicy/internal/metrics"
	"github.com/safeweb/browserpolicy/safehttp"
)

// Interceptor sets the X-Frame-Options and Content-Security-Policy headers
// from Store on every response. Both headers are claimed, so handlers can't
// override them. Store must not be nil.
type Interceptor struct {
	Store *Store
}

var _ safehttp.Interceptor = Interceptor{}

// Before claims and sets the policy headers. It never writes a response.
func (it Interceptor) Before(w safehttp.ResponseWriter, _ *safehttp.IncomingRequest, _ safehttp.InterceptorConfig) safehttp.Result {
	h := w.Header()
	set := map[string]func([]string){
		FrameOptionsHeader:          h.Claim(FrameOptionsHeader),
		ContentSecurityPolicyHeader: h.Claim(ContentSecurityPolicyHeader),
	}
	for name, v := range it.Store.Headers() {
		set[name]([]string{v})
		metrics.HeadersEmitted.WithLabelValues(name).Inc()
	}
	return safehttp.NotWritten()
}

// Commit is a no-op, required to satisfy the safehttp.Interceptor interface.
func (Interceptor) Commit(w safehttp.ResponseHeadersWriter, r *safehttp.IncomingRequest, resp safehttp.Response, cfg safehttp.InterceptorConfig) {
}

// Match returns false since there are no supported configurations.
func (Interceptor) Match(safehttp.InterceptorConfig) bool {
	return false
}

// Handler is the net/http counterpart of Interceptor: it sets the policy
// headers from s and then always calls next.
func Handler(s *Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for name, v := range s.Headers() {
			w.Header().Set(name, v)
			metrics.HeadersEmitted.WithLabelValues(name).Inc()
		}
		next.ServeHTTP(w, r)
	})
}
