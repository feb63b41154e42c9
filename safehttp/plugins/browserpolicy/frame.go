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

type frameKind int

const (
	frameSameOrigin frameKind = iota
	frameDeny
	frameAllowFrom
	frameUnrestricted
)

// FrameOption controls the X-Frame-Options header. The zero value is
// SameOriginFraming.
type FrameOption struct {
	kind   frameKind
	origin string
}

var (
	// DenyFraming forbids framing by anyone.
	DenyFraming = FrameOption{kind: frameDeny}
	// SameOriginFraming allows framing only by pages of the same origin.
	SameOriginFraming = FrameOption{kind: frameSameOrigin}
	// AnyOriginFraming emits no X-Frame-Options header at all.
	AnyOriginFraming = FrameOption{kind: frameUnrestricted}
)

// AllowFromOrigin allows framing by the given origin. The origin is used
// verbatim.
func AllowFromOrigin(origin string) FrameOption {
	return FrameOption{kind: frameAllowFrom, origin: origin}
}

// HeaderValue returns the X-Frame-Options value for o, and false if no header
// should be sent.
func (o FrameOption) HeaderValue() (string, bool) {
	switch o.kind {
	case frameDeny:
		return "DENY", true
	case frameAllowFrom:
		return "ALLOW-FROM " + o.origin, true
	case frameUnrestricted:
		return "", false
	default:
		return "SAMEORIGIN", true
	}
}

func (o FrameOption) String() string {
	if v, ok := o.HeaderValue(); ok {
		return v
	}
	return "unrestricted"
}
