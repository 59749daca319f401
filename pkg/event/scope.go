// Copyright 2023 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"strings"

	"github.com/jackal-xmpp/stravaganza/v2"
)

const xmlnsPrefix = "xmlns"

// Scope keeps track of in-scope namespace declarations while walking an XML tree.
type Scope struct {
	frames []map[string]string
}

// NewScope returns a scope seeded with the given prefix to namespace declarations.
// The empty prefix stands for the default namespace.
func NewScope(decls map[string]string) *Scope {
	s := &Scope{}
	frame := make(map[string]string, len(decls))
	for k, v := range decls {
		frame[k] = v
	}
	s.frames = append(s.frames, frame)
	return s
}

// Push opens a new frame containing the namespace declarations found in attrs.
func (s *Scope) Push(attrs []stravaganza.Attribute) {
	var frame map[string]string
	for _, a := range attrs {
		switch {
		case a.Label == xmlnsPrefix:
			if frame == nil {
				frame = make(map[string]string)
			}
			frame[""] = a.Value
		case strings.HasPrefix(a.Label, xmlnsPrefix+":"):
			if frame == nil {
				frame = make(map[string]string)
			}
			frame[a.Label[len(xmlnsPrefix)+1:]] = a.Value
		}
	}
	s.frames = append(s.frames, frame)
}

// Pop discards the innermost frame.
func (s *Scope) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of open frames.
func (s *Scope) Depth() int {
	return len(s.frames)
}

// Resolve maps a possibly prefixed element name into its qualified name.
func (s *Scope) Resolve(name string) QName {
	var prefix, local string
	if i := strings.IndexByte(name, ':'); i >= 0 {
		prefix, local = name[:i], name[i+1:]
	} else {
		local = name
	}
	for i := len(s.frames) - 1; i >= 0; i-- {
		if ns, ok := s.frames[i][prefix]; ok {
			return QName{Space: ns, Local: local}
		}
	}
	return QName{Local: local}
}
