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
	"fmt"
	"net/http"
)

// The HTTP request methods defined by RFC.
const (
	MethodConnect = "CONNECT" // RFC 7231, 4.3.6
	MethodDelete  = "DELETE"  // RFC 7231, 4.3.5
	MethodGet     = "GET"     // RFC 7231, 4.3.1
	MethodHead    = "HEAD"    // RFC 7231, 4.3.2
	MethodOptions = "OPTIONS" // RFC 7231, 4.3.7
	MethodPatch   = "PATCH"   // RFC 5789
	MethodPost    = "POST"    // RFC 7231, 4.3.3
	MethodPut     = "PUT"     // RFC 7231, 4.3.4
	MethodTrace   = "TRACE"   // RFC 7231, 4.3.8
)

// ServeMuxConfig is a builder for ServeMux.
type ServeMuxConfig struct {
	dispatcher   Dispatcher
	interceptors []Interceptor
}

// NewServeMuxConfig crates a ServeMuxConfig with the provided Dispatcher. If
// the provided Dispatcher is nil, the DefaultDispatcher is used.
func NewServeMuxConfig(disp Dispatcher) *ServeMuxConfig {
	if disp == nil {
		disp = DefaultDispatcher{}
	}
	return &ServeMuxConfig{dispatcher: disp}
}

// Intercept installs the given interceptors.
//
// Interceptors order is respected and interceptors are always run in the
// order they've been installed.
//
// Calling Intercept multiple times is valid. Interceptors that are added last
// will run last.
func (s *ServeMuxConfig) Intercept(is ...Interceptor) {
	s.interceptors = append(s.interceptors, is...)
}

// Mux returns the ServeMux with a copy of the current configuration.
func (s *ServeMuxConfig) Mux() *ServeMux {
	dispatcher := s.dispatcher
	if dispatcher == nil {
		dispatcher = DefaultDispatcher{}
	}
	return &ServeMux{
		mux:          http.NewServeMux(),
		handlers:     map[string]*registeredHandler{},
		dispatcher:   dispatcher,
		interceptors: append([]Interceptor(nil), s.interceptors...),
	}
}

// ServeMux is an HTTP request multiplexer. It matches the URL of each incoming
// request against a list of registered patterns and calls the handler for
// the pattern that most closely matches the URL.
//
// Patterns names are fixed, rooted paths, like "/favicon.ico", or rooted
// subtrees like "/images/" (note the trailing slash).
//
// Patterns are matched the same way as in http.ServeMux.
type ServeMux struct {
	mux          *http.ServeMux
	dispatcher   Dispatcher
	interceptors []Interceptor

	// Maps user-provided patterns to combined handlers which encapsulate
	// multiple handlers, each one associated with an HTTP method.
	handlers map[string]*registeredHandler
}

// Handle registers a handler for the given pattern and method. If a handler is
// registered twice for the same pattern and method, Handle will panic.
//
// InterceptorConfigs can be passed in order to modify the behavior of the
// interceptors on a registered handler. Passing an InterceptorConfig whose
// corresponding Interceptor was not installed will produce no effect. If
// multiple configurations are passed for the same Interceptor, Mux will panic.
func (m *ServeMux) Handle(pattern string, method string, h Handler, cfgs ...InterceptorConfig) {
	rh, ok := m.handlers[pattern]
	if !ok {
		rh = &registeredHandler{
			pattern:  pattern,
			handlers: map[string]handlerConfig{},
		}
		m.handlers[pattern] = rh
		m.mux.Handle(pattern, rh)
	}

	if _, ok := rh.handlers[method]; ok {
		panic(fmt.Sprintf("double registration of (pattern = %q, method = %q)", pattern, method))
	}
	rh.handlers[method] = handlerConfig{
		Handler:      h,
		Dispatcher:   m.dispatcher,
		Interceptors: configureInterceptors(m.interceptors, cfgs),
	}
}

// ServeHTTP dispatches the request to the handler whose method matches the
// incoming request and whose pattern most closely matches the request URL.
//
// For each incoming request:
// - [Before Phase] Interceptor.Before methods are called for every installed
// interceptor, until an interceptor writes to a ResponseWriter (including
// errors) or panics,
// - the handler is called after a [Before Phase] if no writes or panics occurred,
// - the handler triggers the [Commit Phase] by writing to the ResponseWriter,
// - [Commit Phase] Interceptor.Commit methods run for every interceptor whose
// Before method was called,
// - [Dispatcher] determines the Content-Type of the response and writes it.
func (m *ServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mux.ServeHTTP(w, r)
}

// registeredHandler encapsulates the handlers registered for each HTTP method
// on a given pattern.
type registeredHandler struct {
	pattern  string
	handlers map[string]handlerConfig
}

func (rh *registeredHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg, ok := rh.handlers[r.Method]
	if !ok {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	processRequest(cfg, w, r)
}
