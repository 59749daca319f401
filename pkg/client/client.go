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

package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"os"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/connection"
	"github.com/jackal-xmpp/xmppc/pkg/listener"
	"github.com/jackal-xmpp/xmppc/pkg/transport"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"mellium.im/sasl"
)

var (
	// ErrNotConnected is returned when operating over a disconnected client.
	ErrNotConnected = errors.New("client: not connected")

	// ErrAlreadyConnected is returned by Connect when a connection is already established.
	ErrAlreadyConnected = errors.New("client: already connected")

	// ErrNotReady is returned by Connect when stream negotiation did not complete.
	ErrNotReady = errors.New("client: stream negotiation did not complete")
)

// Client is an XMPP client session.
type Client struct {
	cfg    Config
	jd     *jid.JID
	mechs  []sasl.Mechanism
	dialer dialer
	logger kitlog.Logger

	mu   sync.RWMutex
	conn *connection.Connection
}

// New returns a new Client instance configured with cfg.
func New(cfg Config, logger kitlog.Logger) (*Client, error) {
	jd, err := jid.NewWithString(cfg.JID, false)
	if err != nil {
		return nil, errors.Wrapf(err, "client: invalid jid %s", cfg.JID)
	}
	if len(jd.Node()) == 0 {
		return nil, errors.Errorf("client: jid %s has no local part", cfg.JID)
	}
	var mechs []sasl.Mechanism
	for _, name := range cfg.Mechanisms {
		m, ok := listener.MechanismByName(name)
		if !ok {
			return nil, errors.Errorf("client: unsupported SASL mechanism %s", name)
		}
		mechs = append(mechs, m)
	}
	return &Client{
		cfg:    cfg,
		jd:     jd,
		mechs:  mechs,
		dialer: transport.NewDialer(cfg.ConnectTimeout, cfg.ReadTimeout),
		logger: kitlog.With(logger, "jid", jd.String()),
	}, nil
}

// Connect dials the server and negotiates the stream up to a bound resource.
func (c *Client) Connect(ctx context.Context) error {
	if c.Connection() != nil {
		return ErrAlreadyConnected
	}
	tlsCfg, err := c.tlsConfig()
	if err != nil {
		return err
	}
	tr, err := c.dialer.Dial(ctx, c.jd.Domain(), c.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "client: failed to dial %s", c.jd.Domain())
	}
	if c.cfg.RateLimit.Limit > 0 {
		tr.SetReadRateLimiter(rate.NewLimiter(rate.Limit(c.cfg.RateLimit.Limit), c.cfg.RateLimit.Burst))
	}
	conn := connection.New(tr, connection.Config{
		Domain:        c.jd.Domain(),
		From:          c.jd.ToBareJID().String(),
		Lang:          c.cfg.Lang,
		MaxStanzaSize: c.cfg.MaxStanzaSize,
		LingerTimeout: c.cfg.LingerTimeout,
	}, c.logger)

	conn.AddListener(listener.NewStream())
	conn.AddListener(listener.NewStartTLS(tlsCfg, nil))
	conn.AddListener(listener.NewAuthentication(c.jd.Node(), c.cfg.Password, c.mechs, !c.cfg.AllowInsecure))
	conn.AddListener(listener.NewBind(c.jd.Resource()))
	conn.AddListener(listener.NewDisco())
	conn.AddListener(listener.NewPresence())
	conn.AddListener(listener.NewRoster())
	conn.AddListener(listener.NewStreamErrorListener()) // must be the last one

	if err := conn.Connect(ctx); err != nil {
		_ = conn.Close(ctx)
		return err
	}
	if !conn.IsReady() {
		_ = conn.Close(ctx)
		return ErrNotReady
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	level.Info(c.logger).Log("msg", "connected", "bound_jid", conn.JID(), "address", conn.Address(), "secured", conn.IsSecured())
	return nil
}

// Send issues cmd and waits until its reply has been processed.
func (c *Client) Send(ctx context.Context, cmd command.Command) error {
	conn := c.Connection()
	if conn == nil {
		return ErrNotConnected
	}
	return conn.Request(ctx, cmd)
}

// Disconnect closes the underlying connection.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}
	level.Info(c.logger).Log("msg", "disconnecting")
	return conn.Close(ctx)
}

// Domain returns the service domain of the configured jid.
func (c *Client) Domain() string { return c.jd.Domain() }

// Connection returns the established connection, or nil if the client is not connected.
func (c *Client) Connection() *connection.Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}

func (c *Client) tlsConfig() (*tls.Config, error) {
	cfg := &tls.Config{
		ServerName:         c.jd.Domain(),
		InsecureSkipVerify: c.cfg.TLS.InsecureSkipVerify,
	}
	if len(c.cfg.TLS.CACertFile) == 0 {
		return cfg, nil
	}
	pemBytes, err := os.ReadFile(c.cfg.TLS.CACertFile)
	if err != nil {
		return nil, errors.Wrap(err, "client: failed to read CA certificate")
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemBytes) {
		return nil, errors.Errorf("client: no certificates found in %s", c.cfg.TLS.CACertFile)
	}
	cfg.RootCAs = pool
	return cfg, nil
}
