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

// Shorthands for AllowOrigin, Disallow, AllowDataURL and AllowSameOrigin, one
// set per Resource.

// AllowScriptOrigin appends src to script-src.
func (s *Store) AllowScriptOrigin(src string) { s.AllowOrigin(Script, src) }

// DisallowScript replaces the sources of script-src with 'none'.
func (s *Store) DisallowScript() { s.Disallow(Script) }

// AllowScriptDataURL appends data: to script-src.
func (s *Store) AllowScriptDataURL() { s.AllowDataURL(Script) }

// AllowScriptSameOrigin appends 'self' to script-src.
func (s *Store) AllowScriptSameOrigin() { s.AllowSameOrigin(Script) }

// AllowObjectOrigin appends src to object-src.
func (s *Store) AllowObjectOrigin(src string) { s.AllowOrigin(Object, src) }

// DisallowObject replaces the sources of object-src with 'none'.
func (s *Store) DisallowObject() { s.Disallow(Object) }

// AllowObjectDataURL appends data: to object-src.
func (s *Store) AllowObjectDataURL() { s.AllowDataURL(Object) }

// AllowObjectSameOrigin appends 'self' to object-src.
func (s *Store) AllowObjectSameOrigin() { s.AllowSameOrigin(Object) }

// AllowImageOrigin appends src to img-src.
func (s *Store) AllowImageOrigin(src string) { s.AllowOrigin(Image, src) }

// DisallowImage replaces the sources of img-src with 'none'.
func (s *Store) DisallowImage() { s.Disallow(Image) }

// AllowImageDataURL appends data: to img-src.
func (s *Store) AllowImageDataURL() { s.AllowDataURL(Image) }

// AllowImageSameOrigin appends 'self' to img-src.
func (s *Store) AllowImageSameOrigin() { s.AllowSameOrigin(Image) }

// AllowMediaOrigin appends src to media-src.
func (s *Store) AllowMediaOrigin(src string) { s.AllowOrigin(Media, src) }

// DisallowMedia replaces the sources of media-src with 'none'.
func (s *Store) DisallowMedia() { s.Disallow(Media) }

// AllowMediaDataURL appends data: to media-src.
func (s *Store) AllowMediaDataURL() { s.AllowDataURL(Media) }

// AllowMediaSameOrigin appends 'self' to media-src.
func (s *Store) AllowMediaSameOrigin() { s.AllowSameOrigin(Media) }

// AllowFrameOrigin appends src to frame-src.
func (s *Store) AllowFrameOrigin(src string) { s.AllowOrigin(Frame, src) }

// DisallowFrame replaces the sources of frame-src with 'none'.
func (s *Store) DisallowFrame() { s.Disallow(Frame) }

// AllowFrameDataURL appends data: to frame-src.
func (s *Store) AllowFrameDataURL() { s.AllowDataURL(Frame) }

// AllowFrameSameOrigin appends 'self' to frame-src.
func (s *Store) AllowFrameSameOrigin() { s.AllowSameOrigin(Frame) }

// AllowFontOrigin appends src to font-src.
func (s *Store) AllowFontOrigin(src string) { s.AllowOrigin(Font, src) }

// DisallowFont replaces the sources of font-src with 'none'.
func (s *Store) DisallowFont() { s.Disallow(Font) }

// AllowFontDataURL appends data: to font-src.
func (s *Store) AllowFontDataURL() { s.AllowDataURL(Font) }

// AllowFontSameOrigin appends 'self' to font-src.
func (s *Store) AllowFontSameOrigin() { s.AllowSameOrigin(Font) }

// AllowConnectOrigin appends src to connect-src.
func (s *Store) AllowConnectOrigin(src string) { s.AllowOrigin(Connect, src) }

// DisallowConnect replaces the sources of connect-src with 'none'.
func (s *Store) DisallowConnect() { s.Disallow(Connect) }

// AllowConnectDataURL appends data: to connect-src.
func (s *Store) AllowConnectDataURL() { s.AllowDataURL(Connect) }

// AllowConnectSameOrigin appends 'self' to connect-src.
func (s *Store) AllowConnectSameOrigin() { s.AllowSameOrigin(Connect) }

// AllowStyleOrigin appends src to style-src.
func (s *Store) AllowStyleOrigin(src string) { s.AllowOrigin(Style, src) }

// DisallowStyle replaces the sources of style-src with 'none'.
func (s *Store) DisallowStyle() { s.Disallow(Style) }

// AllowStyleDataURL appends data: to style-src.
func (s *Store) AllowStyleDataURL() { s.AllowDataURL(Style) }

// AllowStyleSameOrigin appends 'self' to style-src.
func (s *Store) AllowStyleSameOrigin() { s.AllowSameOrigin(Style) }
