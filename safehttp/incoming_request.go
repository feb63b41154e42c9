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
	"context"
	"net/http"
	"net/url"
)

// IncomingRequest represents an HTTP request received by the server.
type IncomingRequest struct {
	req *http.Request
	// Header is the collection of HTTP headers.
	Header Header
}

// NewIncomingRequest creates an IncomingRequest
// from the underlying http.Request.
func NewIncomingRequest(req *http.Request) *IncomingRequest {
	if req == nil {
		return nil
	}
	req = req.WithContext(req.Context())
	return &IncomingRequest{
		req:    req,
		Header: newHeader(req.Header),
	}
}

// Method specifies the HTTP method (GET, POST, PUT, etc.).
func (r *IncomingRequest) Method() string {
	return r.req.Method
}

// Host returns the host the request is targeted to. This value comes from the
// Host header.
func (r *IncomingRequest) Host() string {
	return r.req.Host
}

// URL specifies the URL that is parsed from the Request-Line. For most
// requests, only URL.Path() will return a non-empty result.
func (r *IncomingRequest) URL() *url.URL {
	return r.req.URL
}

// Context returns the context of a safehttp.IncomingRequest. This is always
// non-nil and will default to the background context. The context of a
// safehttp.IncomingRequest is the context of the underlying http.Request.
//
// The context is cancelled when the client's connection
// closes, the request is canceled (with HTTP/2), or when the ServeHTTP method
// returns.
func (r *IncomingRequest) Context() context.Context {
	return r.req.Context()
}

// SetContext sets the context of the safehttp.IncomingRequest to ctx. The
// provided context must be non-nil, otherwise the method will panic.
func (r *IncomingRequest) SetContext(ctx context.Context) {
	if ctx == nil {
		panic("nil context")
	}
	r.req = r.req.WithContext(ctx)
}
