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
	"sync/atomic"

	"github.com/jackal-xmpp/xmppc/pkg/event"
)

const (
	clientNamespace  = "jabber:client"
	streamNamespace  = "http://etherx.jabber.org/streams"
	tlsNamespace     = "urn:ietf:params:xml:ns:xmpp-tls"
	saslNamespace    = "urn:ietf:params:xml:ns:xmpp-sasl"
	stanzaNamespace  = "urn:ietf:params:xml:ns:xmpp-stanzas"
	streamsNamespace = "urn:ietf:params:xml:ns:xmpp-streams"
)

var (
	streamName         = event.Name(streamNamespace, "stream")
	streamFeaturesName = event.Name(streamNamespace, "features")
	streamErrorName    = event.Name(streamNamespace, "error")

	stanzaErrorName = event.Name(clientNamespace, "error")
	iqName          = event.Name(clientNamespace, "iq")
	presenceName    = event.Name(clientNamespace, "presence")
)

type blocker struct {
	blocking atomic.Bool
}

// IsBlocking satisfies Blocking interface.
func (b *blocker) IsBlocking() bool {
	return b.blocking.Load()
}

func (b *blocker) setBlocking(blocking bool) {
	b.blocking.Store(blocking)
}
