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

package browserpolicy

import "strings"

// CSP keywords have to be single-quoted.
const (
	SourceSelf         = "'self'"
	SourceNone         = "'none'"
	SourceUnsafeInline = "'unsafe-inline'"
	SourceUnsafeEval   = "'unsafe-eval'"
	SchemeData         = "data:"
)

// Directives is an ordered table from CSP directive names to their source
// tokens. Directive names keep the order in which they were first added and
// sources keep the order in which they were appended. Sources are never
// de-duplicated.
//
// The zero value is an empty table ready to use.
type Directives struct {
	names   []string
	sources map[string][]string
}

// ParseDirectives parses a policy in the format produced by
// Directives.String. It splits on "; ", drops a trailing ';' from every
// fragment and splits each fragment on single spaces. The first token names
// the directive, the rest are its sources. A directive that appears more than
// once keeps its first position and its last source list.
//
// ParseDirectives is not a CSP grammar parser and never fails. Input that
// uses other separators or repeated spaces produces odd entries, such as
// empty tokens.
func ParseDirectives(csp string) *Directives {
	d := &Directives{}
	for _, fragment := range strings.Split(csp, "; ") {
		fragment = strings.TrimSuffix(fragment, ";")
		tokens := strings.Split(fragment, " ")
		d.set(tokens[0], tokens[1:])
	}
	return d
}

// Names returns the directive names in insertion order, including directives
// with no sources.
func (d *Directives) Names() []string {
	return append([]string(nil), d.names...)
}

// Sources returns a copy of the sources of the named directive and whether the
// directive is present.
func (d *Directives) Sources(name string) ([]string, bool) {
	srcs, ok := d.sources[name]
	if !ok {
		return nil, false
	}
	return append([]string{}, srcs...), true
}

// Has reports whether the named directive is present.
func (d *Directives) Has(name string) bool {
	_, ok := d.sources[name]
	return ok
}

// Len returns the number of directives, including empty ones.
func (d *Directives) Len() int {
	return len(d.names)
}

// Clone returns a deep copy of d.
func (d *Directives) Clone() *Directives {
	c := &Directives{}
	for _, name := range d.names {
		c.set(name, d.sources[name])
	}
	return c
}

// String serializes the table as a Content-Security-Policy header value:
// every non-empty directive becomes "<name> <src> ...;" and fragments are
// joined by a single space. Directives with no sources are skipped. The table
// is not modified.
func (d *Directives) String() string {
	var b strings.Builder
	for _, name := range d.names {
		srcs := d.sources[name]
		if len(srcs) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(strings.Join(srcs, " "))
		b.WriteByte(';')
	}
	return b.String()
}

// ensure adds the named directive with no sources if it's not present yet.
func (d *Directives) ensure(name string) {
	if d.sources == nil {
		d.sources = map[string][]string{}
	}
	if _, ok := d.sources[name]; ok {
		return
	}
	d.names = append(d.names, name)
	d.sources[name] = []string{}
}

// set replaces the sources of the named directive, adding it if needed.
func (d *Directives) set(name string, srcs []string) {
	d.ensure(name)
	d.sources[name] = append([]string{}, srcs...)
}

func (d *Directives) add(name, src string) {
	d.ensure(name)
	d.sources[name] = append(d.sources[name], src)
}

// remove drops every occurrence of src from the named directive.
func (d *Directives) remove(name, src string) {
	d.ensure(name)
	kept := d.sources[name][:0]
	for _, s := range d.sources[name] {
		if s != src {
			kept = append(kept, s)
		}
	}
	d.sources[name] = kept
}

func (d *Directives) contains(name, src string) bool {
	for _, s := range d.sources[name] {
		if s == src {
			return true
		}
	}
	return false
}
