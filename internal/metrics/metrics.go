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

// Package metrics holds the Prometheus collectors of the module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HeadersEmitted counts policy headers written on responses.
	HeadersEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "browserpolicy_headers_emitted_total",
		Help: "Browser policy response headers emitted, by header name",
	}, []string{"header"})

	// PolicyUpdates counts configuration changes applied to a policy store.
	PolicyUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "browserpolicy_updates_total",
		Help: "Policy configuration loads by result",
	}, []string{"result"}) // result: applied|rejected
)
