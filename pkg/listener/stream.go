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
)

// Stream holds the read loop from the moment a stream header is sent until the server
// advertises the stream features.
type Stream struct {
	blocker
	conn Conn
}

// NewStream returns a new Stream listener.
func NewStream() *Stream {
	return &Stream{}
}

// Attach satisfies Listener interface.
func (l *Stream) Attach(c Conn) {
	l.conn = c

	c.OutboundBus().Attach(streamName, l.onOpen)

	c.InboundBus().Attach(streamName, l.onHeader)
	c.InboundBus().Attach(streamFeaturesName, l.onFeatures)
	c.InboundBus().Attach(streamErrorName, l.onError)
}

func (l *Stream) onOpen(_ context.Context, evt *event.Event) error {
	if evt.IsStartTag() {
		l.setBlocking(true)
	}
	return nil
}

func (l *Stream) onHeader(_ context.Context, evt *event.Event) error {
	elem := evt.Element()
	if elem == nil {
		return nil
	}
	streamID := elem.Attribute(stravaganza.ID)
	l.conn.SetStreamID(streamID)

	level.Debug(l.conn.Logger()).Log("msg", "stream opened", "id", streamID, "from", elem.Attribute(stravaganza.From))
	return nil
}

func (l *Stream) onFeatures(_ context.Context, evt *event.Event) error {
	if !evt.IsEndTag() {
		return nil
	}
	l.setBlocking(false)

	features := evt.Element()
	if features == nil || !l.conn.IsAuthenticated() {
		return nil
	}
	if features.ChildNamespace("bind", command.BindNamespace) == nil {
		l.conn.SetReady(true)
	}
	return nil
}

func (l *Stream) onError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.setBlocking(false)
	}
	return nil
}
