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

// TLSNamespace is the STARTTLS negotiation namespace.
const TLSNamespace = "urn:ietf:params:xml:ns:xmpp-tls"

// StartTLS represents a STARTTLS negotiation request.
type StartTLS struct {
	id string
}

// NewStartTLS returns a new STARTTLS request.
func NewStartTLS() *StartTLS {
	return &StartTLS{id: newID()}
}

// Kind satisfies Command interface.
func (s *StartTLS) Kind() Kind { return StartTLSKind }

// ID satisfies Command interface.
func (s *StartTLS) ID() string { return s.id }

// Element satisfies Command interface.
func (s *StartTLS) Element() stravaganza.Element {
	return stravaganza.NewBuilder("starttls").
		WithAttribute(stravaganza.Namespace, TLSNamespace).
		Build()
}
