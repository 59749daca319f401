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
	rostermodel "github.com/jackal-xmpp/xmppc/pkg/model/roster"
)

// RosterNamespace is the roster query namespace.
const RosterNamespace = "jabber:iq:roster"

// Roster represents a roster get query along with its result.
type Roster struct {
	id string

	mu    sync.RWMutex
	items []rostermodel.Item
	ver   string
}

// NewRoster returns a new roster get query.
func NewRoster() *Roster {
	return &Roster{id: newID()}
}

// Kind satisfies Command interface.
func (r *Roster) Kind() Kind { return RosterKind }

// ID satisfies Command interface.
func (r *Roster) ID() string { return r.id }

// Element satisfies Command interface.
func (r *Roster) Element() stravaganza.Element {
	return stravaganza.NewBuilder("iq").
		WithAttribute(stravaganza.Type, stravaganza.GetType).
		WithAttribute(stravaganza.ID, r.id).
		WithChild(
			stravaganza.NewBuilder("query").
				WithAttribute(stravaganza.Namespace, RosterNamespace).
				Build(),
		).
		Build()
}

// AddItem appends a received roster item.
func (r *Roster) AddItem(item rostermodel.Item) {
	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()
}

// SetVersion sets the received roster version.
func (r *Roster) SetVersion(ver string) {
	r.mu.Lock()
	r.ver = ver
	r.mu.Unlock()
}

// Items returns received roster items.
func (r *Roster) Items() []rostermodel.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	retVal := make([]rostermodel.Item, len(r.items))
	copy(retVal, r.items)
	return retVal
}

// Version returns the received roster version.
func (r *Roster) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ver
}
