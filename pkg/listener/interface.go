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
	"crypto/tls"

	kitlog "github.com/go-kit/log"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/eventbus"
)

// Listener represents a protocol behavior unit.
type Listener interface {
	// Attach subscribes listener handlers to c event buses.
	Attach(c Conn)
}

// Blocking represents a listener able to hold the connection read loop.
type Blocking interface {
	Listener

	// IsBlocking tells whether the read loop must keep reading on behalf of this listener.
	IsBlocking() bool
}

// Lingering represents a blocking listener whose wait may end without any reply.
type Lingering interface {
	Blocking

	// IsLingering tells whether the current wait may end without a reply.
	IsLingering() bool

	// Release stops waiting on behalf of the listener.
	Release()
}

// Conn represents the connection view exposed to listeners.
//
//go:generate moq -out conn.mock_test.go . Conn:connMock
type Conn interface {
	// InboundBus returns the bus carrying events parsed from the remote peer.
	InboundBus() *eventbus.Bus

	// OutboundBus returns the bus carrying events of locally issued traffic.
	OutboundBus() *eventbus.Bus

	// Registry returns the connection sent-command registry.
	Registry() *command.Registry

	// Send writes an element to the remote peer.
	Send(ctx context.Context, elem stravaganza.Element) error

	// Issue registers a command and writes it to the remote peer.
	Issue(ctx context.Context, cmd command.Command) error

	// IsAuthenticated tells whether the stream has been authenticated.
	IsAuthenticated() bool

	// SetAuthenticated sets stream authentication state.
	SetAuthenticated(authenticated bool)

	// SetReady sets connection readiness state.
	SetReady(ready bool)

	// SetJID sets the full jid bound to the connection.
	SetJID(jid string)

	// SetStreamID sets the identifier assigned by the server to the current stream.
	SetStreamID(id string)

	// ActivateEncryption upgrades the underlying transport using cfg.
	ActivateEncryption(ctx context.Context, cfg *tls.Config) error

	// ConnectionState returns transport TLS connection state.
	ConnectionState() (tls.ConnectionState, bool)

	// RestartStream discards parser state and opens a new stream over the same transport.
	RestartStream(ctx context.Context) error

	// Address returns remote peer address.
	Address() string

	// Logger returns connection logger.
	Logger() kitlog.Logger
}
