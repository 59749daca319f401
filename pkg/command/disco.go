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
	discomodel "github.com/jackal-xmpp/xmppc/pkg/model/disco"
)

const (
	// DiscoItemsNamespace is the disco#items query namespace.
	DiscoItemsNamespace = "http://jabber.org/protocol/disco#items"

	// DiscoInfoNamespace is the disco#info query namespace.
	DiscoInfoNamespace = "http://jabber.org/protocol/disco#info"
)

// DiscoType selects the discovered information set.
type DiscoType string

const (
	// DiscoItems queries the items associated to an entity.
	DiscoItems DiscoType = "items"

	// DiscoInfo queries the identity and features of an entity.
	DiscoInfo DiscoType = "info"
)

// Namespace returns the query namespace associated to t.
func (t DiscoType) Namespace() string {
	if t == DiscoInfo {
		return DiscoInfoNamespace
	}
	return DiscoItemsNamespace
}

// Disco represents a service discovery query along with its result.
type Disco struct {
	id   string
	to   string
	typ  DiscoType
	node string

	mu       sync.RWMutex
	items    []discomodel.Item
	features []discomodel.Feature
	identity *discomodel.Identity
}

// NewDisco returns a new disco query addressed to to.
// An empty typ defaults to DiscoItems.
func NewDisco(to string, typ DiscoType) *Disco {
	if len(typ) == 0 {
		typ = DiscoItems
	}
	return &Disco{
		id:  newID(),
		to:  to,
		typ: typ,
	}
}

// WithNode sets the queried node.
func (d *Disco) WithNode(node string) *Disco {
	d.node = node
	return d
}

// Kind satisfies Command interface.
func (d *Disco) Kind() Kind { return DiscoKind }

// ID satisfies Command interface.
func (d *Disco) ID() string { return d.id }

// To returns the queried entity address.
func (d *Disco) To() string { return d.to }

// Type returns the query type.
func (d *Disco) Type() DiscoType { return d.typ }

// Element satisfies Command interface.
func (d *Disco) Element() stravaganza.Element {
	qb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, d.typ.Namespace())
	if len(d.node) > 0 {
		qb = qb.WithAttribute("node", d.node)
	}
	return stravaganza.NewBuilder("iq").
		WithAttribute(stravaganza.To, d.to).
		WithAttribute(stravaganza.Type, stravaganza.GetType).
		WithAttribute(stravaganza.ID, d.id).
		WithChild(qb.Build()).
		Build()
}

// AddItem appends a discovered item.
func (d *Disco) AddItem(item discomodel.Item) {
	d.mu.Lock()
	d.items = append(d.items, item)
	d.mu.Unlock()
}

// AddFeature appends a discovered feature.
func (d *Disco) AddFeature(feature discomodel.Feature) {
	d.mu.Lock()
	d.features = append(d.features, feature)
	d.mu.Unlock()
}

// SetIdentity sets the discovered identity, replacing any previous one.
func (d *Disco) SetIdentity(identity discomodel.Identity) {
	d.mu.Lock()
	d.identity = &identity
	d.mu.Unlock()
}

// Items returns discovered items in arrival order.
func (d *Disco) Items() []discomodel.Item {
	d.mu.RLock()
	defer d.mu.RUnlock()
	retVal := make([]discomodel.Item, len(d.items))
	copy(retVal, d.items)
	return retVal
}

// Features returns discovered features in arrival order.
func (d *Disco) Features() []discomodel.Feature {
	d.mu.RLock()
	defer d.mu.RUnlock()
	retVal := make([]discomodel.Feature, len(d.features))
	copy(retVal, d.features)
	return retVal
}

// Identity returns the discovered identity, or nil if none was received.
func (d *Disco) Identity() *discomodel.Identity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.identity == nil {
		return nil
	}
	identity := *d.identity
	return &identity
}
