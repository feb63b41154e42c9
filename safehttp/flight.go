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

// A single request "flight".
type flight struct {
	rw  http.ResponseWriter
	req *IncomingRequest

	cfg handlerConfig

	header Header

	// before is the number of interceptors whose Before phase has run.
	before  int
	written bool
}

// NewTestResponseWriter creates a ResponseWriter which is not attached to any
// handler or interceptors. It exists so interceptors can be exercised in
// isolation; a nil dispatcher means DefaultDispatcher.
func NewTestResponseWriter(rw http.ResponseWriter, dispatcher Dispatcher) ResponseWriter {
	if dispatcher == nil {
		dispatcher = DefaultDispatcher{}
	}
	return &flight{
		cfg:    handlerConfig{Dispatcher: dispatcher},
		rw:     rw,
		header: newHeader(rw.Header()),
	}
}

// handlerConfig is the safe HTTP handler configuration, including the
// dispatcher and interceptors.
type handlerConfig struct {
	Handler      Handler
	Dispatcher   Dispatcher
	Interceptors []configuredInterceptor
}

func processRequest(cfg handlerConfig, rw http.ResponseWriter, req *http.Request) {
	f := &flight{
		cfg:    cfg,
		rw:     rw,
		header: newHeader(rw.Header()),
		req:    NewIncomingRequest(req),
	}

	// The net/http package handles all panics. We only make sure no header set
	// by an interceptor leaks into the error response.
	defer func() {
		if r := recover(); r != nil {
			for h := range f.rw.Header() {
				delete(f.rw.Header(), h)
			}
			panic(r)
		}
	}()

	for i := range f.cfg.Interceptors {
		f.before = i + 1
		f.cfg.Interceptors[i].Before(f, f.req)
		if f.written {
			return
		}
	}
	f.cfg.Handler.ServeHTTP(f, f.req)
	if !f.written {
		f.NoContent()
	}
}

// Write dispatches the response to the Dispatcher. This will be written to the
// underlying http.ResponseWriter if the Dispatcher decides it's safe to do so.
func (f *flight) Write(resp Response) Result {
	f.markWritten()
	f.commitPhase(resp)
	if err := f.cfg.Dispatcher.Write(f.rw, resp); err != nil {
		panic(err)
	}
	return Result{}
}

// NoContent responds with a 204 No Content response.
func (f *flight) NoContent() Result {
	f.markWritten()
	f.commitPhase(NoContentResponse{})
	f.rw.WriteHeader(int(StatusNoContent))
	return Result{}
}

// WriteError writes an error response (400-599) according to the provided
// status code.
func (f *flight) WriteError(resp ErrorResponse) Result {
	f.markWritten()
	f.commitPhase(resp)
	if err := f.cfg.Dispatcher.Error(f.rw, resp); err != nil {
		panic(err)
	}
	return Result{}
}

// Redirect responds with a redirect to the given url, using code as the status code.
func (f *flight) Redirect(r *IncomingRequest, url string, code StatusCode) Result {
	if code < 300 || code >= 400 {
		panic(fmt.Sprintf("wrong method called: redirect with status %d", code))
	}
	f.markWritten()
	http.Redirect(f.rw, r.req, url, int(code))
	return Result{}
}

// Header returns the collection of headers that will be set on the response.
// Headers must be set before writing a response.
func (f *flight) Header() Header {
	return f.header
}

func (f *flight) markWritten() {
	if f.written {
		panic("ResponseWriter was already written to")
	}
	f.written = true
}

// commitPhase calls the Commit phases of the interceptors whose Before phase
// ran, in reverse order. It runs before a response is written to the
// underlying http.ResponseWriter.
func (f *flight) commitPhase(resp Response) {
	for i := f.before - 1; i >= 0; i-- {
		f.cfg.Interceptors[i].Commit(f, f.req, resp)
	}
}

// Result is the result of writing an HTTP response.
//
// Use ResponseWriter methods to obtain it.
type Result struct{}

// NotWritten returns a Result which indicates that nothing has been written yet. It
// can be used in all functions that return a Result, such as in the ServeHTTP method
// of a Handler or in the Before method of an Interceptor. When returned, NotWritten
// indicates that the writing of the response should take place later. When this
// is returned by the Before method in Interceptors the next Interceptor in line
// is run. When this is returned by a Handler, a 204 No Content response is written.
func NotWritten() Result {
	return Result{}
}
