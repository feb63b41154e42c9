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

// Package safehttptest provides utilities for testing safehttp handlers and
// interceptors.
package safehttptest

import (
	"io"
	"net/http/httptest"

	"github.com/safeweb/browserpolicy/safehttp"
)

// NewRequest returns a new incoming server Request, suitable for passing to
// an http.Handler for testing.
//
// The target is the RFC 7230 "request-target": it may be either a path or an
// absolute URL. If target is an absolute URL, the host name from the URL is
// used. Otherwise, "example.com" is used.
func NewRequest(method, target string, body io.Reader) *safehttp.IncomingRequest {
	return safehttp.NewIncomingRequest(httptest.NewRequest(method, target, body))
}

// NewFakeResponseWriter creates a safehttp.ResponseWriter backed by an
// httptest.ResponseRecorder, using the DefaultDispatcher. The recorder can be
// used to inspect headers, status and body after the interceptor or handler
// under test ran.
func NewFakeResponseWriter() (safehttp.ResponseWriter, *httptest.ResponseRecorder) {
	rr := httptest.NewRecorder()
	return safehttp.NewTestResponseWriter(rr, nil), rr
}
