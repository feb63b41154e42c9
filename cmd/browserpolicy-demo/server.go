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

package main

import (
	"io"
	"net/http"

	"github.com/google/safehtml/template"

	"github.com/safeweb/browserpolicy/safehttp"
	"github.com/safeweb/browserpolicy/safehttp/plugins/browserpolicy"
	"github.com/safeweb/browserpolicy/safehttp/plugins/staticheaders"
)

const runtimeConfig = `window.__runtimeConfig = {"app": "browserpolicy-demo"};`

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Browser policy demo</title>
{{if .InlineConfig}}<script>` + runtimeConfig + `</script>{{else}}<script src="/runtime-config.js"></script>{{end}}
</head>
<body>
<h1>Browser policy demo</h1>
<p>X-Frame-Options: {{.FrameOptions}}</p>
<p>Content-Security-Policy: {{.CSP}}</p>
</body>
</html>
`))

type pageData struct {
	InlineConfig bool
	FrameOptions string
	CSP          string
}

// newHandler serves the demo page through a safehttp mux and the runtime
// config script through plain net/http, both behind the policy in store.
func newHandler(store *browserpolicy.Store) http.Handler {
	mb := safehttp.NewServeMuxConfig(nil)
	mb.Intercept(staticheaders.Interceptor{}, browserpolicy.Interceptor{Store: store})
	mux := mb.Mux()
	mux.Handle("/", safehttp.MethodGet, safehttp.HandlerFunc(func(w safehttp.ResponseWriter, r *safehttp.IncomingRequest) safehttp.Result {
		if r.URL().Path != "/" {
			return w.WriteError(safehttp.StatusNotFound)
		}
		h := store.Headers()
		return safehttp.ExecuteTemplate(w, pageTmpl, pageData{
			// Inlining saves a round trip, but only works if the policy
			// lets inline scripts run.
			InlineConfig: store.InlineScriptsAllowed(),
			FrameOptions: h[browserpolicy.FrameOptionsHeader],
			CSP:          h[browserpolicy.ContentSecurityPolicyHeader],
		})
	}))

	root := http.NewServeMux()
	root.Handle("/", mux)
	root.Handle("/runtime-config.js", browserpolicy.Handler(store, http.HandlerFunc(serveRuntimeConfig)))
	return root
}

func serveRuntimeConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	io.WriteString(w, runtimeConfig)
}
