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

// Package policyconfig loads a browser policy from a YAML file and applies it
// to a browserpolicy.Store.
package policyconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/safeweb/browserpolicy/internal/metrics"
	"github.com/safeweb/browserpolicy/safehttp/plugins/browserpolicy"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid browser policy config")

// Accepted values of Config.Framing.
const (
	FramingDeny       = "deny"
	FramingSameOrigin = "sameorigin"
	FramingAllowFrom  = "allow-from"
	FramingAny        = "any"
)

// Config is the YAML representation of a browser policy. Unset fields leave
// the Store untouched.
type Config struct {
	// Framing is one of deny, sameorigin, allow-from or any.
	Framing string `yaml:"framing"`
	// FramingOrigin is required when Framing is allow-from.
	FramingOrigin string `yaml:"framing_origin"`

	// ContentSecurityPolicy seeds the directives before anything else is
	// applied. See browserpolicy.ParseDirectives for the format.
	ContentSecurityPolicy *string `yaml:"content_security_policy"`

	InlineScripts *bool `yaml:"inline_scripts"`
	Eval          *bool `yaml:"eval"`
	InlineStyles  *bool `yaml:"inline_styles"`

	// Resources are applied in order.
	Resources []Resource `yaml:"resources"`
}

// Resource configures the fetch directive of one resource category. Within a
// Resource, Disallow is applied first, then SameOrigin, DataURL and Origins.
type Resource struct {
	Name       string   `yaml:"name"`
	Disallow   bool     `yaml:"disallow"`
	SameOrigin bool     `yaml:"same_origin"`
	DataURL    bool     `yaml:"data_url"`
	Origins    []string `yaml:"origins"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML policy config. Unknown fields are rejected. An empty
// document yields an empty Config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the framing mode and the resource names.
func (c *Config) Validate() error {
	switch c.Framing {
	case "", FramingDeny, FramingSameOrigin, FramingAny:
	case FramingAllowFrom:
		if c.FramingOrigin == "" {
			return fmt.Errorf("%w: framing %q needs framing_origin", ErrInvalidConfig, c.Framing)
		}
	default:
		return fmt.Errorf("%w: unknown framing %q", ErrInvalidConfig, c.Framing)
	}
	for i, r := range c.Resources {
		if _, err := browserpolicy.ParseResource(r.Name); err != nil {
			return fmt.Errorf("%w: resources[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// Apply validates c and applies it to s. Nothing is applied if c is invalid.
func (c *Config) Apply(s *browserpolicy.Store) error {
	if err := c.Validate(); err != nil {
		metrics.PolicyUpdates.WithLabelValues("rejected").Inc()
		return err
	}

	if c.ContentSecurityPolicy != nil {
		s.SetContentSecurityPolicy(*c.ContentSecurityPolicy)
	}

	switch c.Framing {
	case FramingDeny:
		s.DisallowFraming()
	case FramingSameOrigin:
		s.AllowFramingBySameOrigin()
	case FramingAllowFrom:
		s.AllowFramingByOrigin(c.FramingOrigin)
	case FramingAny:
		s.AllowFramingByAnyOrigin()
	}

	toggle(c.InlineScripts, s.AllowInlineScripts, s.DisallowInlineScripts)
	toggle(c.Eval, s.AllowEval, s.DisallowEval)
	toggle(c.InlineStyles, s.AllowInlineStyles, s.DisallowInlineStyles)

	for _, rc := range c.Resources {
		// Validated above.
		r, _ := browserpolicy.ParseResource(rc.Name)
		if rc.Disallow {
			s.Disallow(r)
		}
		if rc.SameOrigin {
			s.AllowSameOrigin(r)
		}
		if rc.DataURL {
			s.AllowDataURL(r)
		}
		for _, o := range rc.Origins {
			s.AllowOrigin(r, o)
		}
	}

	metrics.PolicyUpdates.WithLabelValues("applied").Inc()
	return nil
}

func toggle(v *bool, allow, disallow func()) {
	if v == nil {
		return
	}
	if *v {
		allow()
	} else {
		disallow()
	}
}
