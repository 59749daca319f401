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

package listener

import (
	"context"

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/event"
	discomodel "github.com/jackal-xmpp/xmppc/pkg/model/disco"
)

var (
	discoItemsQueryName = event.Name(command.DiscoItemsNamespace, "query")
	discoInfoQueryName  = event.Name(command.DiscoInfoNamespace, "query")
)

// Disco collects service discovery results into the last issued disco command.
type Disco struct {
	blocker
	conn Conn
	iq   iqTracker
}

// NewDisco returns a new Disco listener.
func NewDisco() *Disco {
	return &Disco{}
}

// Attach satisfies Listener interface.
func (l *Disco) Attach(c Conn) {
	l.conn = c

	c.OutboundBus().Attach(discoItemsQueryName, l.onQuery)
	c.OutboundBus().Attach(discoInfoQueryName, l.onQuery)

	c.InboundBus().Attach(iqName, l.iq.onIQ)
	c.InboundBus().Attach(discoItemsQueryName, l.onResult)
	c.InboundBus().Attach(discoInfoQueryName, l.onResult)
	c.InboundBus().Attach(stanzaErrorName, l.onError)
	c.InboundBus().Attach(streamErrorName, l.onError)
}

func (l *Disco) onQuery(_ context.Context, _ *event.Event) error {
	l.setBlocking(true)
	return nil
}

func (l *Disco) onResult(_ context.Context, evt *event.Event) error {
	if !evt.IsEndTag() || l.iq.isRequest() {
		return nil
	}
	cmd, ok := l.conn.Registry().Get(command.DiscoKind).(*command.Disco)
	if !ok {
		l.setBlocking(false)
		return nil
	}
	if !l.iq.isReplyTo(cmd.ID()) {
		return nil
	}
	if query := evt.Element(); query != nil {
		for _, child := range query.AllChildren() {
			switch {
			case discomodel.IsItem(child):
				cmd.AddItem(discomodel.ItemFromElement(child))
			case discomodel.IsFeature(child):
				cmd.AddFeature(discomodel.FeatureFromElement(child))
			case discomodel.IsIdentity(child):
				cmd.SetIdentity(discomodel.IdentityFromElement(child))
			}
		}
	}
	l.setBlocking(false)

	level.Debug(l.conn.Logger()).Log("msg", "disco result received", "id", cmd.ID(), "to", cmd.To())
	return nil
}

func (l *Disco) onError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.setBlocking(false)
	}
	return nil
}
