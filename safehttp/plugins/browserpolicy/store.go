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

// Package browserpolicy sets the X-Frame-Options and Content-Security-Policy
// response headers from a mutable policy Store.
//
// A Store is configured once at startup, usually through its fluent
// allow/disallow methods, and read by the Interceptor on every request:
//
//	store := browserpolicy.NewStore()
//	store.DisallowFraming()
//	store.AllowScriptOrigin("https://cdn.example.com")
//	muxCfg.Intercept(browserpolicy.Interceptor{Store: store})
//
// No CSP header is sent until some directive has been configured.
package browserpolicy

import "sync"

// Names of the headers a Store controls.
const (
	FrameOptionsHeader          = "X-Frame-Options"
	ContentSecurityPolicyHeader = "Content-Security-Policy"
)

// Store holds the framing option and the CSP directive table. It is safe for
// concurrent use.
type Store struct {
	mu         sync.RWMutex
	frame      FrameOption
	directives *Directives
}

// NewStore returns a Store that only allows same-origin framing and has no
// CSP.
func NewStore() *Store {
	return &Store{frame: SameOriginFraming}
}

// DisallowFraming sets X-Frame-Options to DENY.
func (s *Store) DisallowFraming() {
	s.SetFrameOption(DenyFraming)
}

// AllowFramingBySameOrigin sets X-Frame-Options to SAMEORIGIN.
func (s *Store) AllowFramingBySameOrigin() {
	s.SetFrameOption(SameOriginFraming)
}

// AllowFramingByOrigin sets X-Frame-Options to ALLOW-FROM origin. The origin
// is not validated.
func (s *Store) AllowFramingByOrigin(origin string) {
	s.SetFrameOption(AllowFromOrigin(origin))
}

// AllowFramingByAnyOrigin stops sending X-Frame-Options.
func (s *Store) AllowFramingByAnyOrigin() {
	s.SetFrameOption(AnyOriginFraming)
}

// SetFrameOption replaces the framing option.
func (s *Store) SetFrameOption(o FrameOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = o
}

// FrameOption returns the current framing option.
func (s *Store) FrameOption() FrameOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}

// FrameOptions returns the X-Frame-Options header value and whether the header
// should be sent.
func (s *Store) FrameOptions() (string, bool) {
	return s.FrameOption().HeaderValue()
}

// SetContentSecurityPolicy replaces every directive with the ones parsed from
// csp. See ParseDirectives for the accepted format.
func (s *Store) SetContentSecurityPolicy(csp string) {
	d := ParseDirectives(csp)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directives = d
}

// Directives returns a copy of the directive table, or nil if no directive
// was ever configured.
func (s *Store) Directives() *Directives {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.directives == nil {
		return nil
	}
	return s.directives.Clone()
}

// ContentSecurityPolicy returns the Content-Security-Policy header value and
// whether the header should be sent. Empty directives are left out of the
// value but stay in the Store.
func (s *Store) ContentSecurityPolicy() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.directives == nil {
		return "", false
	}
	return s.directives.String(), true
}

// Headers returns the response headers the Store currently asks for, keyed by
// canonical header name. Headers that should not be sent are absent, and so
// is a Content-Security-Policy whose directives are all empty.
func (s *Store) Headers() map[string]string {
	h := map[string]string{}
	if v, ok := s.FrameOptions(); ok {
		h[FrameOptionsHeader] = v
	}
	if v, ok := s.ContentSecurityPolicy(); ok && v != "" {
		h[ContentSecurityPolicyHeader] = v
	}
	return h
}

// InlineScriptsAllowed reports whether script-src contains 'unsafe-inline'.
//
// Note that it creates an empty script-src directive if there is none, which
// also turns on the CSP header.
func (s *Store) InlineScriptsAllowed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(Script.Directive())
	return s.directives.contains(Script.Directive(), SourceUnsafeInline)
}

// AllowInlineScripts appends 'unsafe-inline' to script-src.
func (s *Store) AllowInlineScripts() {
	s.add(Script.Directive(), SourceUnsafeInline)
}

// DisallowInlineScripts removes every 'unsafe-inline' from script-src.
func (s *Store) DisallowInlineScripts() {
	s.remove(Script.Directive(), SourceUnsafeInline)
}

// AllowEval appends 'unsafe-eval' to script-src, which permits eval() and
// other string-to-code functions.
func (s *Store) AllowEval() {
	s.add(Script.Directive(), SourceUnsafeEval)
}

// DisallowEval removes every 'unsafe-eval' from script-src.
func (s *Store) DisallowEval() {
	s.remove(Script.Directive(), SourceUnsafeEval)
}

// AllowInlineStyles appends 'unsafe-inline' to style-src.
func (s *Store) AllowInlineStyles() {
	s.add(Style.Directive(), SourceUnsafeInline)
}

// DisallowInlineStyles removes every 'unsafe-inline' from style-src.
func (s *Store) DisallowInlineStyles() {
	s.remove(Style.Directive(), SourceUnsafeInline)
}

// AllowOrigin appends src to the directive of r. src is used verbatim and may
// be an origin, a keyword or a scheme.
func (s *Store) AllowOrigin(r Resource, src string) {
	s.add(r.Directive(), src)
}

// AllowDataURL appends the data: scheme to the directive of r.
func (s *Store) AllowDataURL(r Resource) {
	s.add(r.Directive(), SchemeData)
}

// AllowSameOrigin appends 'self' to the directive of r.
func (s *Store) AllowSameOrigin(r Resource) {
	s.add(r.Directive(), SourceSelf)
}

// Disallow replaces all sources of the directive of r with 'none'. Sources
// allowed later are appended after 'none'.
func (s *Store) Disallow(r Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(r.Directive())
	s.directives.set(r.Directive(), []string{SourceNone})
}

func (s *Store) add(directive, src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(directive)
	s.directives.add(directive, src)
}

func (s *Store) remove(directive, src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(directive)
	s.directives.remove(directive, src)
}

// ensure must be called with mu held for writing.
func (s *Store) ensure(directive string) {
	if s.directives == nil {
		s.directives = &Directives{}
	}
	s.directives.ensure(directive)
}
