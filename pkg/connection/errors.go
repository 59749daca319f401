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

package connection

import (
	"encoding/xml"
	"errors"
	"net"

	"github.com/jackal-xmpp/stravaganza/v2"
	streamerror "github.com/jackal-xmpp/stravaganza/v2/errors/stream"
	xmppparser "github.com/jackal-xmpp/xmppc/pkg/parser"
	"github.com/jackal-xmpp/xmppc/pkg/transport"
)

var (
	// ErrUpgradeInProgress is returned by ActivateEncryption when another upgrade is running.
	ErrUpgradeInProgress = errors.New("connection: transport upgrade in progress")

	// ErrClosed is returned when operating over a closed connection.
	ErrClosed = errors.New("connection: closed")

	// ErrClosedByPeer is returned by Await when the server closes the stream.
	ErrClosedByPeer = errors.New("connection: stream closed by peer")
)

func mapReadError(err error) error {
	switch {
	case errors.Is(err, transport.ErrReadLimitExceeded):
		se := streamerror.E(streamerror.PolicyViolation)
		se.Err = err
		se.ApplicationElement = stravaganza.NewBuilder("rate-limit-exceeded").
			WithAttribute(stravaganza.Namespace, "urn:xmpp:errors").
			Build()
		return se

	case errors.Is(err, xmppparser.ErrTooLargeStanza):
		se := streamerror.E(streamerror.PolicyViolation)
		se.Err = err
		se.ApplicationElement = stravaganza.NewBuilder("stanza-too-big").
			WithAttribute(stravaganza.Namespace, "urn:xmpp:errors").
			Build()
		return se

	case errors.Is(err, xmppparser.ErrStreamClosedByPeer):
		return ErrClosedByPeer
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		se := streamerror.E(streamerror.InvalidXML)
		se.Err = err
		return se
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		se := streamerror.E(streamerror.ConnectionTimeout)
		se.Err = err
		return se
	}
	return err
}
