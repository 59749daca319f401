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

	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"
)

// Kind identifies a protocol command family.
type Kind uint8

const (
	// DiscoKind represents a service discovery query.
	DiscoKind Kind = iota + 1

	// PresenceKind represents a presence stanza.
	PresenceKind

	// MessageKind represents a message stanza.
	MessageKind

	// RosterKind represents a roster get query.
	RosterKind

	// StartTLSKind represents a STARTTLS negotiation request.
	StartTLSKind

	// BindKind represents a resource binding request.
	BindKind

	// SessionKind represents a legacy session establishment request.
	SessionKind
)

// String returns Kind string representation.
func (k Kind) String() string {
	switch k {
	case DiscoKind:
		return "disco"
	case PresenceKind:
		return "presence"
	case MessageKind:
		return "message"
	case RosterKind:
		return "roster"
	case StartTLSKind:
		return "starttls"
	case BindKind:
		return "bind"
	case SessionKind:
		return "session"
	}
	return ""
}

// Command represents an outbound protocol request.
type Command interface {
	// Kind returns the command family.
	Kind() Kind

	// ID returns the command correlation identifier.
	ID() string

	// Element returns the wire document the command serializes to.
	Element() stravaganza.Element
}

func newID() string {
	return uuid.New().String()
}

// Registry keeps the last issued command of every kind.
type Registry struct {
	mu   sync.RWMutex
	cmds map[Kind]Command
}

// NewRegistry returns an empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[Kind]Command),
	}
}

// Put registers cmd as the last issued command of its kind, replacing any previous one.
func (r *Registry) Put(cmd Command) {
	r.mu.Lock()
	r.cmds[cmd.Kind()] = cmd
	r.mu.Unlock()

	reportIssuedCommand(cmd.Kind())
}

// Get returns the last issued command of kind k, or nil if none was issued.
func (r *Registry) Get(k Kind) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cmds[k]
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cmds)
}

// Reset drops every registered command.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = make(map[Kind]Command)
}
