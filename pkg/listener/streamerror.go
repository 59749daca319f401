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
	"github.com/jackal-xmpp/xmppc/pkg/event"
)

// StreamErrorListener turns a stream level error sent by the server into a fatal error.
// It must be attached after every other listener so that blocked listeners are released first.
type StreamErrorListener struct {
	conn Conn
}

// NewStreamErrorListener returns a new StreamErrorListener instance.
func NewStreamErrorListener() *StreamErrorListener {
	return &StreamErrorListener{}
}

// Attach satisfies Listener interface.
func (l *StreamErrorListener) Attach(c Conn) {
	l.conn = c
	c.InboundBus().Attach(streamErrorName, l.onError)
}

func (l *StreamErrorListener) onError(_ context.Context, evt *event.Event) error {
	if !evt.IsEndTag() || evt.Element() == nil {
		return nil
	}
	se := newStreamError(evt.Element(), nil)

	level.Warn(l.conn.Logger()).Log("msg", "received stream error", "condition", se.Condition, "text", se.Text)
	return se
}
