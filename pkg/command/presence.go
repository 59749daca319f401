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
	"strconv"
	"sync"

	"github.com/jackal-xmpp/stravaganza/v2"
)

// Presence represents an outbound presence stanza.
type Presence struct {
	id       string
	to       string
	typ      string
	show     string
	status   string
	priority int8

	mu     sync.RWMutex
	result *string
}

// NewPresence returns an available presence broadcast.
func NewPresence() *Presence {
	return &Presence{id: newID()}
}

// WithTo sets presence recipient.
func (p *Presence) WithTo(to string) *Presence { p.to = to; return p }

// WithType sets presence type.
func (p *Presence) WithType(typ string) *Presence { p.typ = typ; return p }

// WithShow sets presence availability sub-state.
func (p *Presence) WithShow(show string) *Presence { p.show = show; return p }

// WithStatus sets presence status text.
func (p *Presence) WithStatus(status string) *Presence { p.status = status; return p }

// WithPriority sets presence priority.
func (p *Presence) WithPriority(priority int8) *Presence { p.priority = priority; return p }

// Kind satisfies Command interface.
func (p *Presence) Kind() Kind { return PresenceKind }

// ID satisfies Command interface.
func (p *Presence) ID() string { return p.id }

// Element satisfies Command interface.
func (p *Presence) Element() stravaganza.Element {
	b := stravaganza.NewBuilder("presence").
		WithAttribute(stravaganza.ID, p.id)
	if len(p.to) > 0 {
		b = b.WithAttribute(stravaganza.To, p.to)
	}
	if len(p.typ) > 0 {
		b = b.WithAttribute(stravaganza.Type, p.typ)
	}
	if len(p.show) > 0 {
		b = b.WithChild(stravaganza.NewBuilder("show").WithText(p.show).Build())
	}
	if len(p.status) > 0 {
		b = b.WithChild(stravaganza.NewBuilder("status").WithText(p.status).Build())
	}
	if p.priority != 0 {
		b = b.WithChild(
			stravaganza.NewBuilder("priority").
				WithText(strconv.Itoa(int(p.priority))).
				Build(),
		)
	}
	return b.Build()
}

// SetResult sets the error text echoed back by the server.
func (p *Presence) SetResult(result string) {
	p.mu.Lock()
	p.result = &result
	p.mu.Unlock()
}

// Result returns the error text echoed back by the server.
// ok is false if no error was received.
func (p *Presence) Result() (result string, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.result == nil {
		return "", false
	}
	return *p.result, true
}
