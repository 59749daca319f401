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
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"
	streamerror "github.com/jackal-xmpp/stravaganza/v2/errors/stream"
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/jackal-xmpp/xmppc/pkg/event"
	"github.com/jackal-xmpp/xmppc/pkg/eventbus"
	"github.com/jackal-xmpp/xmppc/pkg/listener"
	xmppparser "github.com/jackal-xmpp/xmppc/pkg/parser"
	"github.com/jackal-xmpp/xmppc/pkg/transport"
	"github.com/pkg/errors"
)

const envLogStanzas = "XMPPC_LOG_STANZAS"

var logStanzas bool

func init() {
	logStanzas = os.Getenv(envLogStanzas) == "on"
}

const (
	jabberClientNamespace = "jabber:client"
	streamNamespace       = "http://etherx.jabber.org/streams"
)

var streamName = event.Name(streamNamespace, "stream")

var _ listener.Conn = (*Connection)(nil)

// Connection represents a client stream running over a single transport.
type Connection struct {
	id     string
	tr     transport.Transport
	cfg    Config
	inBus  *eventbus.Bus
	outBus *eventbus.Bus
	reg    *command.Registry
	logger kitlog.Logger

	mu            sync.RWMutex
	pr            *xmppparser.Parser
	listeners     []listener.Listener
	blockers      []listener.Blocking
	ready         bool
	authenticated bool
	jid           string
	streamID      string
	closed        bool

	upgrading int32
}

// New returns a new Connection running over tr.
func New(tr transport.Transport, cfg Config, logger kitlog.Logger) *Connection {
	if cfg.MaxStanzaSize <= 0 {
		cfg.MaxStanzaSize = defaultMaxStanzaSize
	}
	id := uuid.New().String()
	return &Connection{
		id:     id,
		tr:     tr,
		cfg:    cfg,
		inBus:  eventbus.New(eventbus.Inbound),
		outBus: eventbus.New(eventbus.Outbound),
		reg:    command.NewRegistry(),
		pr:     xmppparser.New(tr, cfg.MaxStanzaSize),
		logger: kitlog.With(logger, "conn_id", id, "domain", cfg.Domain),
	}
}

// ID returns connection identifier.
func (c *Connection) ID() string { return c.id }

// InboundBus returns the bus carrying events parsed from the remote peer.
func (c *Connection) InboundBus() *eventbus.Bus { return c.inBus }

// OutboundBus returns the bus carrying events of locally issued traffic.
func (c *Connection) OutboundBus() *eventbus.Bus { return c.outBus }

// Registry returns the connection sent-command registry.
func (c *Connection) Registry() *command.Registry { return c.reg }

// Logger returns connection logger.
func (c *Connection) Logger() kitlog.Logger { return c.logger }

// Address returns remote peer address.
func (c *Connection) Address() string { return c.tr.Address() }

// AddListener attaches l to the connection event buses.
func (c *Connection) AddListener(l listener.Listener) {
	l.Attach(c)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
	if b, ok := l.(listener.Blocking); ok {
		c.blockers = append(c.blockers, b)
	}
}

// OpenStream sends the initial stream header.
func (c *Connection) OpenStream(ctx context.Context) error {
	b := stravaganza.NewBuilder("stream:stream").
		WithAttribute(stravaganza.Namespace, jabberClientNamespace).
		WithAttribute(stravaganza.StreamNamespace, streamNamespace).
		WithAttribute(stravaganza.Version, "1.0").
		WithAttribute(stravaganza.To, c.cfg.Domain)
	if len(c.cfg.From) > 0 {
		b = b.WithAttribute(stravaganza.From, c.cfg.From)
	}
	if len(c.cfg.Lang) > 0 {
		b = b.WithAttribute(stravaganza.Language, c.cfg.Lang)
	}
	elem := b.Build()

	if _, err := c.outBus.Dispatch(ctx, event.New(event.Start, streamName, elem)); err != nil {
		return err
	}
	buf := &strings.Builder{}
	buf.WriteString(`<?xml version="1.0"?>`)
	if err := elem.ToXML(buf, false); err != nil {
		return err
	}
	return c.sendString(buf.String())
}

// Connect opens the stream and negotiates it until no listener is left blocking.
func (c *Connection) Connect(ctx context.Context) error {
	if err := c.OpenStream(ctx); err != nil {
		return err
	}
	return c.Await(ctx)
}

// Send runs elem through the outbound bus and writes it to the transport.
func (c *Connection) Send(ctx context.Context, elem stravaganza.Element) error {
	if c.isClosed() {
		return ErrClosed
	}
	if err := c.dispatchOutbound(ctx, elem); err != nil {
		return err
	}
	if logStanzas {
		level.Debug(c.logger).Log("msg", fmt.Sprintf("SND(%s): %v", c.id, elem))
	}
	if err := elem.ToXML(c.tr, true); err != nil {
		return err
	}
	return c.tr.Flush()
}

// Issue registers cmd as the last command of its kind and sends it.
func (c *Connection) Issue(ctx context.Context, cmd command.Command) error {
	c.reg.Put(cmd)
	return c.Send(ctx, cmd.Element())
}

// Request issues cmd and waits until every listener stops blocking.
func (c *Connection) Request(ctx context.Context, cmd command.Command) error {
	if err := c.Issue(ctx, cmd); err != nil {
		return err
	}
	return c.Await(ctx)
}

// Await reads and dispatches inbound events until no listener is blocking.
// Reads are bounded by ctx deadline. When every blocking listener is lingering
// they are also bounded by the configured linger timeout, after which those
// listeners are released.
func (c *Connection) Await(ctx context.Context) error {
	defer func() { _ = c.tr.SetReadDeadline(time.Time{}) }()

	for c.isBlocking() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lingering := c.isLingering()
		if err := c.tr.SetReadDeadline(c.readDeadline(ctx, lingering)); err != nil {
			return err
		}
		pr := c.parser()

		evt, err := pr.Next()
		if err != nil {
			if isTimeout(err) {
				if d, ok := ctx.Deadline(); ok && !time.Now().Before(d) {
					return context.DeadlineExceeded
				}
				if lingering {
					c.releaseLingering()
					continue
				}
			}
			return c.handleReadError(ctx, err)
		}
		if logStanzas && evt.IsEndTag() && pr.Depth() == 0 {
			level.Debug(c.logger).Log("msg", fmt.Sprintf("RCV(%s): %v", c.id, evt.Element()))
		}
		if _, err := c.inBus.Dispatch(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

// ResetStreams discards parser state and starts parsing from the current transport position.
func (c *Connection) ResetStreams() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pr = xmppparser.New(c.tr, c.cfg.MaxStanzaSize)
	c.streamID = ""
}

// RestartStream resets parser state and sends a new stream header over the same transport.
func (c *Connection) RestartStream(ctx context.Context) error {
	c.ResetStreams()

	level.Debug(c.logger).Log("msg", "restarting stream")
	return c.OpenStream(ctx)
}

// ActivateEncryption secures the underlying transport using cfg.
// The connection is not ready while the upgrade runs.
func (c *Connection) ActivateEncryption(ctx context.Context, cfg *tls.Config) error {
	if !atomic.CompareAndSwapInt32(&c.upgrading, 0, 1) {
		return ErrUpgradeInProgress
	}
	defer atomic.StoreInt32(&c.upgrading, 0)

	c.SetReady(false)
	if err := c.tr.StartTLS(ctx, cfg); err != nil {
		return errors.Wrap(err, "connection: failed to start TLS")
	}
	return nil
}

// ConnectionState returns transport TLS connection state.
func (c *Connection) ConnectionState() (tls.ConnectionState, bool) {
	return c.tr.ConnectionState()
}

// IsSecured tells whether the transport is encrypted.
func (c *Connection) IsSecured() bool {
	return c.tr.IsSecured()
}

// IsReady tells whether the connection can be used to exchange stanzas.
func (c *Connection) IsReady() bool {
	if atomic.LoadInt32(&c.upgrading) == 1 || c.isBlocking() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready && !c.closed
}

// SetReady sets connection readiness state.
func (c *Connection) SetReady(ready bool) {
	c.mu.Lock()
	c.ready = ready
	c.mu.Unlock()
}

// IsAuthenticated tells whether the stream has been authenticated.
func (c *Connection) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

// SetAuthenticated sets stream authentication state.
func (c *Connection) SetAuthenticated(authenticated bool) {
	c.mu.Lock()
	c.authenticated = authenticated
	c.mu.Unlock()
}

// JID returns the full jid bound to the connection.
func (c *Connection) JID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jid
}

// SetJID sets the full jid bound to the connection.
func (c *Connection) SetJID(jid string) {
	c.mu.Lock()
	c.jid = jid
	c.mu.Unlock()
}

// StreamID returns the identifier assigned by the server to the current stream.
func (c *Connection) StreamID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.streamID
}

// SetStreamID sets the identifier assigned by the server to the current stream.
func (c *Connection) SetStreamID(id string) {
	c.mu.Lock()
	c.streamID = id
	c.mu.Unlock()
}

// Close closes the stream and the underlying transport.
func (c *Connection) Close(_ context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.closed = true
	c.ready = false
	c.mu.Unlock()

	_ = c.sendString("</stream:stream>")
	return c.tr.Close()
}

func (c *Connection) handleReadError(ctx context.Context, err error) error {
	mappedErr := mapReadError(err)

	var se *streamerror.Error
	if errors.As(mappedErr, &se) && !c.isClosed() {
		_ = c.Send(ctx, se.Element())
	}
	if !c.isClosed() {
		_ = c.Close(ctx)
	}
	level.Warn(c.logger).Log("msg", "failed to read inbound event", "err", err)
	return mappedErr
}

func (c *Connection) dispatchOutbound(ctx context.Context, elem stravaganza.Element) error {
	scope := event.NewScope(map[string]string{
		"":       jabberClientNamespace,
		"stream": streamNamespace,
	})
	return c.walk(ctx, elem, scope)
}

func (c *Connection) walk(ctx context.Context, elem stravaganza.Element, scope *event.Scope) error {
	attrs := elem.AllAttributes()
	scope.Push(attrs)
	defer scope.Pop()

	name := scope.Resolve(elem.Name())
	startElem := stravaganza.NewBuilder(elem.Name()).WithAttributes(attrs...).Build()
	if _, err := c.outBus.Dispatch(ctx, event.New(event.Start, name, startElem)); err != nil {
		return err
	}
	for _, child := range elem.AllChildren() {
		if err := c.walk(ctx, child, scope); err != nil {
			return err
		}
	}
	_, err := c.outBus.Dispatch(ctx, event.New(event.End, name, elem))
	return err
}

func (c *Connection) sendString(str string) error {
	if logStanzas {
		level.Debug(c.logger).Log("msg", fmt.Sprintf("SND(%s): %s", c.id, str))
	}
	if _, err := c.tr.WriteString(str); err != nil {
		return err
	}
	return c.tr.Flush()
}

func (c *Connection) parser() *xmppparser.Parser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pr
}

func (c *Connection) isBlocking() bool {
	c.mu.RLock()
	blockers := c.blockers
	c.mu.RUnlock()

	for _, b := range blockers {
		if b.IsBlocking() {
			return true
		}
	}
	return false
}

func (c *Connection) isLingering() bool {
	c.mu.RLock()
	blockers := c.blockers
	c.mu.RUnlock()

	var lingering bool
	for _, b := range blockers {
		if !b.IsBlocking() {
			continue
		}
		l, ok := b.(listener.Lingering)
		if !ok || !l.IsLingering() {
			return false
		}
		lingering = true
	}
	return lingering
}

func (c *Connection) releaseLingering() {
	c.mu.RLock()
	blockers := c.blockers
	c.mu.RUnlock()

	for _, b := range blockers {
		if l, ok := b.(listener.Lingering); ok && l.IsLingering() {
			level.Debug(c.logger).Log("msg", "released lingering listener")
			l.Release()
		}
	}
}

func (c *Connection) readDeadline(ctx context.Context, lingering bool) time.Time {
	deadline, _ := ctx.Deadline()
	if !lingering || c.cfg.LingerTimeout <= 0 {
		return deadline
	}
	lingerDeadline := time.Now().Add(c.cfg.LingerTimeout)
	if deadline.IsZero() || lingerDeadline.Before(deadline) {
		return lingerDeadline
	}
	return deadline
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Connection) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
