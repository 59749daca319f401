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

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/xmppc/pkg/event"
)

// iqTracker remembers the attributes of the inbound iq stanza currently being parsed
// so that query payload handlers can correlate it with the issued command.
type iqTracker struct {
	open bool
	id   string
	typ  string
}

func (t *iqTracker) onIQ(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		t.open = false
		return nil
	}
	elem := evt.Element()
	if elem == nil {
		return nil
	}
	t.open = true
	t.id = elem.Attribute(stravaganza.ID)
	t.typ = elem.Attribute(stravaganza.Type)
	return nil
}

// isReplyTo tells whether the payload being parsed belongs to the result of id.
// Payloads parsed outside of an iq stanza are accepted as is.
func (t *iqTracker) isReplyTo(id string) bool {
	if !t.open {
		return true
	}
	return t.typ == stravaganza.ResultType && t.id == id
}

// isRequest tells whether the payload being parsed belongs to a server request.
func (t *iqTracker) isRequest() bool {
	return t.open && (t.typ == stravaganza.GetType || t.typ == stravaganza.SetType)
}
