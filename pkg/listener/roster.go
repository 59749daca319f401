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

	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/event"
	rostermodel "github.com/jackal-xmpp/xmppc/pkg/model/roster"
)

var rosterQueryName = event.Name(command.RosterNamespace, "query")

// Roster collects roster get results into the last issued roster command.
type Roster struct {
	blocker
	conn Conn
	iq   iqTracker
}

// NewRoster returns a new Roster listener.
func NewRoster() *Roster {
	return &Roster{}
}

// Attach satisfies Listener interface.
func (l *Roster) Attach(c Conn) {
	l.conn = c

	c.OutboundBus().Attach(rosterQueryName, l.onQuery)

	c.InboundBus().Attach(iqName, l.iq.onIQ)
	c.InboundBus().Attach(rosterQueryName, l.onResult)
	c.InboundBus().Attach(stanzaErrorName, l.onError)
	c.InboundBus().Attach(streamErrorName, l.onError)
}

func (l *Roster) onQuery(_ context.Context, _ *event.Event) error {
	l.setBlocking(true)
	return nil
}

func (l *Roster) onResult(_ context.Context, evt *event.Event) error {
	if !evt.IsEndTag() || l.iq.isRequest() {
		return nil // roster pushes are not handled
	}
	cmd, ok := l.conn.Registry().Get(command.RosterKind).(*command.Roster)
	if !ok {
		l.setBlocking(false)
		return nil
	}
	if !l.iq.isReplyTo(cmd.ID()) {
		return nil
	}
	if query := evt.Element(); query != nil {
		cmd.SetVersion(query.Attribute("ver"))
		for _, item := range query.Children("item") {
			cmd.AddItem(rostermodel.ItemFromElement(item))
		}
	}
	l.setBlocking(false)
	return nil
}

func (l *Roster) onError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.setBlocking(false)
	}
	return nil
}
