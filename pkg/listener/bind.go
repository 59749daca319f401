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
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/event"
	"github.com/pkg/errors"
)

type bindState uint8

const (
	bindIdle bindState = iota
	bindRequested
	sessionRequested
	bound
)

// Bind binds a resource to the authenticated stream and, when the server
// requires it, establishes a legacy session. Once done the connection is ready.
type Bind struct {
	blocker
	conn     Conn
	resource string

	state           bindState
	sessionRequired bool
}

// NewBind returns a new Bind listener.
// An empty resource lets the server generate one.
func NewBind(resource string) *Bind {
	return &Bind{resource: resource}
}

// Attach satisfies Listener interface.
func (l *Bind) Attach(c Conn) {
	l.conn = c

	c.InboundBus().Attach(streamFeaturesName, l.onFeatures)
	c.InboundBus().Attach(iqName, l.onIQ)
	c.InboundBus().Attach(streamErrorName, l.onStreamError)
}

func (l *Bind) onFeatures(ctx context.Context, evt *event.Event) error {
	features := evt.Element()
	if !evt.IsEndTag() || features == nil || !l.conn.IsAuthenticated() || l.state != bindIdle {
		return nil
	}
	if features.ChildNamespace("bind", command.BindNamespace) == nil {
		return nil
	}
	if sess := features.ChildNamespace("session", command.SessionNamespace); sess != nil {
		l.sessionRequired = sess.Child("optional") == nil
	}
	l.setBlocking(true)
	l.state = bindRequested

	return l.conn.Issue(ctx, command.NewBind(l.resource))
}

func (l *Bind) onIQ(ctx context.Context, evt *event.Event) error {
	iq := evt.Element()
	if !evt.IsEndTag() || iq == nil {
		return nil
	}
	switch l.state {
	case bindRequested:
		cmd, ok := l.conn.Registry().Get(command.BindKind).(*command.Bind)
		if !ok || cmd.ID() != iq.Attribute(stravaganza.ID) {
			return nil
		}
		if iq.Attribute(stravaganza.Type) != stravaganza.ResultType {
			return l.fail(iq, "resource binding")
		}
		var jid string
		if bind := iq.ChildNamespace("bind", command.BindNamespace); bind != nil {
			if jidElem := bind.Child("jid"); jidElem != nil {
				jid = jidElem.Text()
			}
		}
		cmd.SetJID(jid)
		l.conn.SetJID(jid)

		level.Info(l.conn.Logger()).Log("msg", "resource bound", "jid", jid)

		if l.sessionRequired {
			l.state = sessionRequested
			return l.conn.Issue(ctx, command.NewSession())
		}
		l.done()

	case sessionRequested:
		cmd, ok := l.conn.Registry().Get(command.SessionKind).(*command.Session)
		if !ok || cmd.ID() != iq.Attribute(stravaganza.ID) {
			return nil
		}
		if iq.Attribute(stravaganza.Type) != stravaganza.ResultType {
			return l.fail(iq, "session establishment")
		}
		l.done()
	}
	return nil
}

func (l *Bind) onStreamError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.setBlocking(false)
	}
	return nil
}

func (l *Bind) done() {
	l.state = bound
	l.setBlocking(false)
	l.conn.SetReady(true)
}

func (l *Bind) fail(iq stravaganza.Element, step string) error {
	l.setBlocking(false)

	var condition string
	if errElem := iq.Child("error"); errElem != nil {
		condition = errorText(errElem)
	}
	return errors.Wrapf(ErrResourceBinding, "%s failed: %s", step, condition)
}
