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

// Package staticheaders provides a safehttp.Interceptor which sets security
// sensitive headers whose value doesn't depend on the request or on the
// browser policy.
package staticheaders

import (
	"github.com/safeweb/browserpolicy/safehttp"
)

// DefaultReferrerPolicy is used when Interceptor.ReferrerPolicy is empty.
const DefaultReferrerPolicy = "strict-origin-when-cross-origin"

// Interceptor claims and sets static headers on responses.
type Interceptor struct {
	// ReferrerPolicy is the value of the Referrer-Policy header.
	ReferrerPolicy string
}

var _ safehttp.Interceptor = Interceptor{}

// Before claims and sets the following headers:
//   - X-Content-Type-Options: nosniff
//   - X-XSS-Protection: 0
//   - Referrer-Policy: it.ReferrerPolicy, or DefaultReferrerPolicy
func (it Interceptor) Before(w safehttp.ResponseWriter, _ *safehttp.IncomingRequest, _ safehttp.InterceptorConfig) safehttp.Result {
	h := w.Header()
	setXCTO := h.Claim("X-Content-Type-Options")
	setXXP := h.Claim("X-XSS-Protection")
	setRP := h.Claim("Referrer-Policy")

	rp := it.ReferrerPolicy
	if rp == "" {
		rp = DefaultReferrerPolicy
	}
	setXCTO([]string{"nosniff"})
	setXXP([]string{"0"})
	setRP([]string{rp})
	return safehttp.NotWritten()
}

// Commit is a no-op, required to satisfy the safehttp.Interceptor interface.
func (Interceptor) Commit(w safehttp.ResponseHeadersWriter, r *safehttp.IncomingRequest, resp safehttp.Response, cfg safehttp.InterceptorConfig) {
}

// Match returns false since there are no supported configurations.
func (Interceptor) Match(safehttp.InterceptorConfig) bool {
	return false
}
