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

// Package safehttp is the request pipeline browser policy headers are attached
// to. It is a small secure-by-default layer over net/http.
//
// # Dispatcher
//
// Handlers never write bytes. They pass a Response to the ResponseWriter and
// the Dispatcher decides whether the response is safe and how to write it.
// DefaultDispatcher accepts github.com/google/safehtml values and
// safehtml/template templates.
//
// # Interceptors
//
// An Interceptor implements methods that run before the request is passed to
// the handler, and after the handler has committed a response. These are,
// respectively, Before and Commit. Interceptors typically claim response
// headers in Before so that handlers cannot overwrite them.
//
// # Life of a Request
//
//	ServeMux.ServeHTTP()
//	--+ ServeMux routes the request and checks the method.
//	--+ InterceptorFoo.Before()
//	--+ InterceptorBar.Before()
//	--+ Handler()
//	----+ ResponseWriter.Write
//	------+ InterceptorBar.Commit()  // notice the inverted order
//	------+ InterceptorFoo.Commit()
//	------+ Dispatcher.Write()
//
// If a Before method writes a response, the remaining interceptors and the
// handler are skipped. If the handler returns without writing, a 204 No
// Content response is sent.
package safehttp
