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
	"strings"
	"sync"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/event"
)

const errorType = "error"

// Presence captures presence error echoes into the last issued presence command.
//
// A broadcast presence holds the read loop until the server reflects it back.
// A directed presence holds it until the addressed entity answers or the
// connection linger period elapses, since a successful delivery is never acknowledged.
type Presence struct {
	blocker
	conn Conn

	mu        sync.Mutex
	to        string
	lingering bool
}

// NewPresence returns a new Presence listener.
func NewPresence() *Presence {
	return &Presence{}
}

// Attach satisfies Listener interface.
func (l *Presence) Attach(c Conn) {
	l.conn = c

	c.OutboundBus().Attach(presenceName, l.onSend)

	c.InboundBus().Attach(presenceName, l.onPresence)
	c.InboundBus().Attach(streamErrorName, l.onStreamError)
}

// IsLingering satisfies Lingering interface.
func (l *Presence) IsLingering() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lingering
}

// Release satisfies Lingering interface.
func (l *Presence) Release() {
	l.unblock()
}

func (l *Presence) onSend(_ context.Context, evt *event.Event) error {
	elem := evt.Element()
	if !evt.IsStartTag() || elem == nil {
		return nil
	}
	to := elem.Attribute(stravaganza.To)

	l.mu.Lock()
	l.to = bareJID(to)
	l.lingering = len(to) > 0
	l.mu.Unlock()

	l.setBlocking(true)
	return nil
}

func (l *Presence) onPresence(_ context.Context, evt *event.Event) error {
	if !evt.IsEndTag() {
		return nil
	}
	elem := evt.Element()
	if elem == nil {
		return nil
	}
	l.mu.Lock()
	to := l.to
	l.mu.Unlock()
	if len(to) > 0 && bareJID(elem.Attribute(stravaganza.From)) != to {
		return nil
	}
	cmd, ok := l.conn.Registry().Get(command.PresenceKind).(*command.Presence)
	if ok && elem.Attribute(stravaganza.Type) == errorType {
		if errElem := elem.Child("error"); errElem != nil {
			cmd.SetResult(errorText(errElem))
		}
	}
	l.unblock()
	return nil
}

func (l *Presence) onStreamError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.unblock()
	}
	return nil
}

func (l *Presence) unblock() {
	l.mu.Lock()
	l.to = ""
	l.lingering = false
	l.mu.Unlock()

	l.setBlocking(false)
}

func errorText(errElem stravaganza.Element) string {
	if txt := errElem.Child("text"); txt != nil && len(txt.Text()) > 0 {
		return txt.Text()
	}
	if txt := errElem.Text(); len(txt) > 0 {
		return txt
	}
	for _, child := range errElem.AllChildren() {
		if child.Name() != "text" {
			return localName(child.Name())
		}
	}
	return ""
}

func bareJID(j string) string {
	if i := strings.IndexByte(j, '/'); i >= 0 {
		return j[:i]
	}
	return j
}
