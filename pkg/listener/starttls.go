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
	"sync"

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/event"
	"github.com/pkg/errors"
)

// TLSState represents STARTTLS negotiation state.
type TLSState uint8

const (
	// TLSIdle represents the state in which no negotiation is running.
	TLSIdle TLSState = iota

	// TLSRequesting represents the state in which the upgrade request was sent
	// and the server decision is awaited.
	TLSRequesting

	// TLSUpgrading represents the state in which the transport is being secured.
	TLSUpgrading

	// TLSFailed represents the terminal failure state.
	TLSFailed
)

// String returns TLSState string representation.
func (s TLSState) String() string {
	switch s {
	case TLSIdle:
		return "idle"
	case TLSRequesting:
		return "requesting"
	case TLSUpgrading:
		return "upgrading"
	case TLSFailed:
		return "failed"
	}
	return ""
}

// DefaultTLSVersions contains the TLS versions tried by default, in preference order.
var DefaultTLSVersions = []uint16{tls.VersionTLS13, tls.VersionTLS12}

var (
	startTLSName = event.Name(tlsNamespace, "starttls")
	proceedName  = event.Name(tlsNamespace, "proceed")
	failureName  = event.Name(tlsNamespace, "failure")
)

// StartTLS negotiates the upgrade of the stream to a TLS channel.
type StartTLS struct {
	blocker
	conn     Conn
	tlsCfg   *tls.Config
	versions []uint16

	mu    sync.RWMutex
	state TLSState
}

// NewStartTLS returns a new StartTLS listener.
// versions lists the TLS versions to try in order. If empty DefaultTLSVersions is used.
func NewStartTLS(tlsCfg *tls.Config, versions []uint16) *StartTLS {
	if tlsCfg == nil {
		tlsCfg = &tls.Config{}
	}
	if len(versions) == 0 {
		versions = DefaultTLSVersions
	}
	return &StartTLS{
		tlsCfg:   tlsCfg,
		versions: versions,
	}
}

// Attach satisfies Listener interface.
func (l *StartTLS) Attach(c Conn) {
	l.conn = c

	c.InboundBus().Attach(startTLSName, l.onStartTLS)
	c.InboundBus().Attach(proceedName, l.onProceed)
	c.InboundBus().Attach(failureName, l.onFailure)
	c.InboundBus().Attach(streamErrorName, l.onStreamError)
}

// State returns current negotiation state.
func (l *StartTLS) State() TLSState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *StartTLS) onStartTLS(ctx context.Context, evt *event.Event) error {
	if evt.IsStartTag() || l.conn.IsAuthenticated() || l.State() != TLSIdle {
		return nil
	}
	l.setBlocking(true)
	l.setState(TLSRequesting)

	l.conn.SetReady(false)
	return l.conn.Issue(ctx, command.NewStartTLS())
}

func (l *StartTLS) onProceed(ctx context.Context, evt *event.Event) error {
	if evt.IsStartTag() || l.State() != TLSRequesting {
		return nil
	}
	l.setBlocking(false)
	l.setState(TLSUpgrading)

	var secured bool
	for _, version := range l.versions {
		cfg := l.tlsCfg.Clone()
		cfg.MinVersion = version
		cfg.MaxVersion = version

		err := l.conn.ActivateEncryption(ctx, cfg)
		if err == nil {
			secured = true
			reportTLSUpgrade(version, true)
			level.Info(l.conn.Logger()).Log("msg", "secure connection established", "version", tlsVersionName(version))
			break
		}
		reportTLSUpgrade(version, false)
		level.Warn(l.conn.Logger()).Log("msg", "failed to activate secure connection", "version", tlsVersionName(version), "err", err)
	}
	if !secured {
		l.setState(TLSFailed)
		return errors.Wrapf(ErrTransportSecurity, "unable to activate secure connection to %s", l.conn.Address())
	}
	l.setState(TLSIdle)
	return l.conn.RestartStream(ctx)
}

func (l *StartTLS) onFailure(_ context.Context, evt *event.Event) error {
	if evt.IsStartTag() {
		return nil
	}
	l.setBlocking(false)
	l.setState(TLSFailed)

	return newStreamError(evt.Element(), ErrTransportSecurity)
}

func (l *StartTLS) onStreamError(_ context.Context, evt *event.Event) error {
	if evt.IsEndTag() {
		l.setBlocking(false)
	}
	return nil
}

func (l *StartTLS) setState(state TLSState) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()
}

func tlsVersionName(version uint16) string {
	switch version {
	case tls.VersionTLS10:
		return "TLS 1.0"
	case tls.VersionTLS11:
		return "TLS 1.1"
	case tls.VersionTLS12:
		return "TLS 1.2"
	case tls.VersionTLS13:
		return "TLS 1.3"
	}
	return "unknown"
}
