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

package command

import (
	"sync"

	"github.com/jackal-xmpp/stravaganza/v2"
)

const (
	// BindNamespace is the resource binding namespace.
	BindNamespace = "urn:ietf:params:xml:ns:xmpp-bind"

	// SessionNamespace is the legacy session establishment namespace.
	SessionNamespace = "urn:ietf:params:xml:ns:xmpp-session"
)

// Bind represents a resource binding request.
type Bind struct {
	id       string
	resource string

	mu  sync.RWMutex
	jid string
}

// NewBind returns a new resource binding request.
// An empty resource lets the server generate one.
func NewBind(resource string) *Bind {
	return &Bind{
		id:       newID(),
		resource: resource,
	}
}

// Kind satisfies Command interface.
func (b *Bind) Kind() Kind { return BindKind }

// ID satisfies Command interface.
func (b *Bind) ID() string { return b.id }

// Element satisfies Command interface.
func (b *Bind) Element() stravaganza.Element {
	bb := stravaganza.NewBuilder("bind").
		WithAttribute(stravaganza.Namespace, BindNamespace)
	if len(b.resource) > 0 {
		bb = bb.WithChild(stravaganza.NewBuilder("resource").WithText(b.resource).Build())
	}
	return stravaganza.NewBuilder("iq").
		WithAttribute(stravaganza.Type, stravaganza.SetType).
		WithAttribute(stravaganza.ID, b.id).
		WithChild(bb.Build()).
		Build()
}

// SetJID sets the full jid assigned by the server.
func (b *Bind) SetJID(jid string) {
	b.mu.Lock()
	b.jid = jid
	b.mu.Unlock()
}

// JID returns the full jid assigned by the server.
func (b *Bind) JID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.jid
}

// Session represents a legacy session establishment request.
type Session struct {
	id string
}

// NewSession returns a new session establishment request.
func NewSession() *Session {
	return &Session{id: newID()}
}

// Kind satisfies Command interface.
func (s *Session) Kind() Kind { return SessionKind }

// ID satisfies Command interface.
func (s *Session) ID() string { return s.id }

// Element satisfies Command interface.
func (s *Session) Element() stravaganza.Element {
	return stravaganza.NewBuilder("iq").
		WithAttribute(stravaganza.Type, stravaganza.SetType).
		WithAttribute(stravaganza.ID, s.id).
		WithChild(
			stravaganza.NewBuilder("session").
				WithAttribute(stravaganza.Namespace, SessionNamespace).
				Build(),
		).
		Build()
}
