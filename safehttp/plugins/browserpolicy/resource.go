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

import "fmt"

// Resource is a category of content whose origins are governed by a single
// fetch directive.
type Resource int

// The resource categories the Store can configure.
const (
	Script Resource = iota
	Object
	Image
	Media
	Frame
	Font
	Connect
	Style
)

var resourceTable = [...]struct {
	name      string
	directive string
}{
	Script:  {"script", "script-src"},
	Object:  {"object", "object-src"},
	Image:   {"image", "img-src"},
	Media:   {"media", "media-src"},
	Frame:   {"frame", "frame-src"},
	Font:    {"font", "font-src"},
	Connect: {"connect", "connect-src"},
	Style:   {"style", "style-src"},
}

// Resources returns every resource category, in declaration order.
func Resources() []Resource {
	rs := make([]Resource, len(resourceTable))
	for i := range resourceTable {
		rs[i] = Resource(i)
	}
	return rs
}

// ParseResource returns the Resource with the given lower-case name. Both
// "image" and "img" name the Image resource.
func ParseResource(name string) (Resource, error) {
	if name == "img" {
		return Image, nil
	}
	for i, r := range resourceTable {
		if r.name == name {
			return Resource(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// Directive returns the CSP directive controlling r, e.g. "img-src" for Image.
func (r Resource) Directive() string {
	return resourceTable[r.index()].directive
}

func (r Resource) String() string {
	return resourceTable[r.index()].name
}

func (r Resource) index() int {
	if r < 0 || int(r) >= len(resourceTable) {
		panic(fmt.Sprintf("browserpolicy: invalid resource %d", int(r)))
	}
	return int(r)
}
