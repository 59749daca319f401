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
	"encoding/base64"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/xmppc/pkg/event"
	"github.com/pkg/errors"
	"mellium.im/sasl"
)

var (
	challengeName   = event.Name(saslNamespace, "challenge")
	successName     = event.Name(saslNamespace, "success")
	saslFailureName = event.Name(saslNamespace, "failure")
)

// DefaultMechanisms contains the SASL mechanisms tried by default, in preference order.
var DefaultMechanisms = []sasl.Mechanism{sasl.ScramSha256, sasl.ScramSha1, sasl.Plain}

// MechanismByName returns the supported SASL mechanism named name.
func MechanismByName(name string) (sasl.Mechanism, bool) {
	for _, m := range []sasl.Mechanism{sasl.ScramSha256, sasl.ScramSha1, sasl.Plain} {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return sasl.Mechanism{}, false
}

// Authentication authenticates the stream using SASL.
type Authentication struct {
	blocker
	conn       Conn
	username   string
	password   string
	mechanisms []sasl.Mechanism
	requireTLS bool

	client    *sasl.Negotiator
	mechanism string
	more      bool
}

// NewAuthentication returns a new Authentication listener.
// If requireTLS is set authentication is only attempted over a secured transport.
func NewAuthentication(username, password string, mechanisms []sasl.Mechanism, requireTLS bool) *Authentication {
	if len(mechanisms) == 0 {
		mechanisms = DefaultMechanisms
	}
	return &Authentication{
		username:   username,
		password:   password,
		mechanisms: mechanisms,
		requireTLS: requireTLS,
	}
}

// Attach satisfies Listener interface.
func (l *Authentication) Attach(c Conn) {
	l.conn = c

	c.InboundBus().Attach(streamFeaturesName, l.onFeatures)
	c.InboundBus().Attach(challengeName, l.onChallenge)
	c.InboundBus().Attach(successName, l.onSuccess)
	c.InboundBus().Attach(saslFailureName, l.onFailure)
	c.InboundBus().Attach(streamErrorName, l.onStreamError)
}

func (l *Authentication) onFeatures(ctx context.Context, evt *event.Event) error {
	features := evt.Element()
	if !evt.IsEndTag() || features == nil || l.conn.IsAuthenticated() || l.client != nil {
		return nil
	}
	_, secured := l.conn.ConnectionState()
	if l.requireTLS && !secured {
		if features.ChildNamespace("starttls", tlsNamespace) != nil {
			return nil // wait for the secured stream
		}
		return errors.Wrap(ErrTransportSecurity, "server does not offer STARTTLS")
	}
	mechsElem := features.ChildNamespace("mechanisms", saslNamespace)
	if mechsElem == nil {
		return nil
	}
	var remoteMechs []string
	for _, m := range mechsElem.Children("mechanism") {
		remoteMechs = append(remoteMechs, m.Text())
	}
	selected, ok := selectMechanism(l.mechanisms, remoteMechs)
	if !ok {
		return errors.Wrapf(ErrNoMechanism, "offered: %s", strings.Join(remoteMechs, ", "))
	}
	opts := []sasl.Option{
		sasl.Credentials(func() ([]byte, []byte, []byte) {
			return []byte(l.username), []byte(l.password), nil
		}),
		sasl.RemoteMechanisms(remoteMechs...),
	}
	if connState, ok := l.conn.ConnectionState(); ok {
		opts = append(opts, sasl.TLSState(connState))
	}
	l.client = sasl.NewClient(selected, opts...)
	l.mechanism = selected.Name

	more, resp, err := l.client.Step(nil)
	if err != nil {
		return err
	}
	l.more = more
	l.setBlocking(true)

	level.Debug(l.conn.Logger()).Log("msg", "authenticating", "mechanism", selected.Name, "username", l.username)

	return l.conn.Send(ctx, stravaganza.NewBuilder("auth").
		WithAttribute(stravaganza.Namespace, saslNamespace).
		WithAttribute("mechanism", selected.Name).
		WithText(encodeSASLPayload(resp)).
		Build(),
	)
}

func (l *Authentication) onChallenge(ctx context.Context, evt *event.Event) error {
	elem := evt.Element()
	if !evt.IsEndTag() || elem == nil || l.client == nil {
		return nil
	}
	challenge, err := base64.StdEncoding.DecodeString(elem.Text())
	if err != nil {
		return err
	}
	more, resp, err := l.client.Step(challenge)
	if err != nil {
		return err
	}
	l.more = more

	return l.conn.Send(ctx, stravaganza.NewBuilder("response").
		WithAttribute(stravaganza.Namespace, saslNamespace).
		WithText(encodeSASLPayload(resp)).
		Build(),
	)
}

func (l *Authentication) onSuccess(ctx context.Context, evt *event.Event) error {
	elem := evt.Element()
	if !evt.IsEndTag() || elem == nil || l.client == nil {
		return nil
	}
	l.setBlocking(false)

	// verify server additional data
	if txt := elem.Text(); l.more && len(txt) > 0 && txt != "=" {
		data, err := base64.StdEncoding.DecodeString(txt)
		if err != nil {
			return err
		}
		if _, _, err := l.client.Step(data); err != nil {
			reportAuthentication(l.mechanism, false)
			return errors.Wrap(ErrAuthenticationFailed, err.Error())
		}
	}
	reportAuthentication(l.mechanism, true)
	level.Info(l.conn.Logger()).Log("msg", "authenticated", "mechanism", l.mechanism, "username", l.username)

	l.conn.SetAuthenticated(true)
	return l.conn.RestartStream(ctx)
}

func (l *Authentication) onFailure(_ context.Context, evt *event.Event) error {
	elem := evt.Element()
	if !evt.IsEndTag() || elem == nil {
		return nil
	}
	l.setBlocking(false)
	reportAuthentication(l.mechanism, false)

	authErr := &AuthError{}
	for _, child := range elem.AllChildren() {
		if name := localName(child.Name()); name == "text" {
			authErr.Text = child.Text()
		} else if len(authErr.Condition) == 0 {
			authErr.Condition = name
		}
	}
	return authErr
}

func (l *Authentication) onStreamError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.setBlocking(false)
	}
	return nil
}

func selectMechanism(preferred []sasl.Mechanism, remote []string) (sasl.Mechanism, bool) {
	for _, m := range preferred {
		for _, name := range remote {
			if name == m.Name {
				return m, true
			}
		}
	}
	return sasl.Mechanism{}, false
}

func encodeSASLPayload(b []byte) string {
	if len(b) == 0 {
		return "="
	}
	return base64.StdEncoding.EncodeToString(b)
}
