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
	"io"
	"net/http"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

// Dispatcher is responsible for writing a response received from the
// ResponseWriter to the underlying http.ResponseWriter.
//
// The implementation of a custom Dispatcher should be thoroughly reviewed by
// the security team to avoid introducing vulnerabilities.
type Dispatcher interface {
	// Write writes a Response to the underlying http.ResponseWriter.
	//
	// Write is responsible for setting the Content-Type response header. If the
	// Dispatcher doesn't set the HTTP response status code, the default
	// behavior of http.ResponseWriter applies (i.e. 200 OK is set on first
	// Write).
	//
	// It should return an error if the writing operation fails or if the
	// provided Response should not be written to the http.ResponseWriter
	// because it's unsafe.
	Write(rw http.ResponseWriter, resp Response) error

	// Error writes an ErrorResponse to the underlying http.ResponseWriter.
	//
	// Error is responsible for setting the Content-Type response header and the
	// HTTP response status code.
	//
	// It should return an error if the writing operation fails.
	Error(rw http.ResponseWriter, resp ErrorResponse) error
}

// DefaultDispatcher is responsible for writing safe responses.
type DefaultDispatcher struct{}

// Write writes the response to the http.ResponseWriter if it's deemed safe. It
// returns a non-nil error if the response is deemed unsafe or if the writing
// operation fails.
//
// For TemplateResponses, the template must be a *safehtml/template.Template.
func (DefaultDispatcher) Write(rw http.ResponseWriter, resp Response) error {
	switch x := resp.(type) {
	case safehtml.HTML:
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.WriteHeader(int(StatusOK))
		_, err := io.WriteString(rw, x.String())
		return err
	case TemplateResponse:
		t, ok := x.Template.(*template.Template)
		if !ok {
			return fmt.Errorf("%T is not a safe template and it cannot be parsed and written", x.Template)
		}
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.WriteHeader(int(StatusOK))
		return t.Execute(rw, x.Data)
	default:
		return fmt.Errorf("%T is not a safe response type and it cannot be written", resp)
	}
}

// Error writes the error response to the http.ResponseWriter.
//
// Error sets the text/plain Content-Type and the status code of the response.
func (DefaultDispatcher) Error(rw http.ResponseWriter, resp ErrorResponse) error {
	writeTextError(rw, resp)
	return nil
}

func writeTextError(rw http.ResponseWriter, resp ErrorResponse) {
	http.Error(rw, http.StatusText(int(resp.Code())), int(resp.Code()))
}
