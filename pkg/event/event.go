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
	"github.com/jackal-xmpp/stravaganza/v2"
)

// Kind represents the kind of parse occurrence an event stands for.
type Kind uint8

const (
	// Start represents an opening tag occurrence.
	Start Kind = iota + 1

	// End represents a closing tag occurrence.
	End
)

// String returns Kind string representation.
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return ""
}

// QName represents a namespace qualified element name.
type QName struct {
	Space string
	Local string
}

// Name returns a QName value for the given namespace and local name.
func Name(space, local string) QName {
	return QName{Space: space, Local: local}
}

// String returns the Clark notation of the qualified name.
func (n QName) String() string {
	return "{" + n.Space + "}" + n.Local
}

// Event is an immutable record of a single start or end tag occurrence.
type Event struct {
	kind   Kind
	name   QName
	params []interface{}
}

// New returns a new event instance.
// It panics if name has no local part.
func New(kind Kind, name QName, params ...interface{}) *Event {
	if len(name.Local) == 0 {
		panic("event: empty qualified name")
	}
	ps := make([]interface{}, len(params))
	copy(ps, params)
	return &Event{
		kind:   kind,
		name:   name,
		params: ps,
	}
}

// Kind returns event kind.
func (e *Event) Kind() Kind { return e.kind }

// Name returns event qualified name.
func (e *Event) Name() QName { return e.name }

// IsStartTag tells whether the event was produced by an opening tag.
func (e *Event) IsStartTag() bool { return e.kind == Start }

// IsEndTag tells whether the event was produced by a closing tag.
func (e *Event) IsEndTag() bool { return e.kind == End }

// Params returns a copy of the event positional parameters.
func (e *Event) Params() []interface{} {
	ps := make([]interface{}, len(e.params))
	copy(ps, e.params)
	return ps
}

// Param returns the i-th positional parameter, or nil if not present.
func (e *Event) Param(i int) interface{} {
	if i < 0 || i >= len(e.params) {
		return nil
	}
	return e.params[i]
}

// Element returns the parsed element carried as first parameter.
func (e *Event) Element() stravaganza.Element {
	elem, _ := e.Param(0).(stravaganza.Element)
	return elem
}

// String returns a human readable event representation.
func (e *Event) String() string {
	return e.kind.String() + " " + e.name.String()
}
