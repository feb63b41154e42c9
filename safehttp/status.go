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

// StatusCode contains HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
//
// Only the codes the framework writes itself are listed here.
type StatusCode int

// The HTTP status codes registered with IANA.
const (
	StatusOK        StatusCode = 200 // RFC 7231, 6.3.1
	StatusNoContent StatusCode = 204 // RFC 7231, 6.3.5

	StatusMovedPermanently  StatusCode = 301 // RFC 7231, 6.4.2
	StatusFound             StatusCode = 302 // RFC 7231, 6.4.3
	StatusSeeOther          StatusCode = 303 // RFC 7231, 6.4.4
	StatusTemporaryRedirect StatusCode = 307 // RFC 7231, 6.4.7
	StatusPermanentRedirect StatusCode = 308 // RFC 7538, 3

	StatusBadRequest       StatusCode = 400 // RFC 7231, 6.5.1
	StatusForbidden        StatusCode = 403 // RFC 7231, 6.5.3
	StatusNotFound         StatusCode = 404 // RFC 7231, 6.5.4
	StatusMethodNotAllowed StatusCode = 405 // RFC 7231, 6.5.5

	StatusInternalServerError StatusCode = 500 // RFC 7231, 6.6.1
)
