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

import "github.com/jackal-xmpp/stravaganza/v2"

// ChatType is the default message type.
const ChatType = "chat"

// Message represents an outbound message stanza.
type Message struct {
	id      string
	to      string
	typ     string
	subject string
	body    string
}

// NewMessage returns a chat message addressed to to.
func NewMessage(to, body string) *Message {
	return &Message{
		id:   newID(),
		to:   to,
		typ:  ChatType,
		body: body,
	}
}

// WithType sets message type.
func (m *Message) WithType(typ string) *Message { m.typ = typ; return m }

// WithSubject sets message subject.
func (m *Message) WithSubject(subject string) *Message { m.subject = subject; return m }

// Kind satisfies Command interface.
func (m *Message) Kind() Kind { return MessageKind }

// ID satisfies Command interface.
func (m *Message) ID() string { return m.id }

// Element satisfies Command interface.
func (m *Message) Element() stravaganza.Element {
	b := stravaganza.NewBuilder("message").
		WithAttribute(stravaganza.ID, m.id).
		WithAttribute(stravaganza.To, m.to).
		WithAttribute(stravaganza.Type, m.typ)
	if len(m.subject) > 0 {
		b = b.WithChild(stravaganza.NewBuilder("subject").WithText(m.subject).Build())
	}
	return b.WithChild(stravaganza.NewBuilder("body").WithText(m.body).Build()).
		Build()
}
