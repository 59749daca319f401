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

package transport

import (
	"bufio"
	"context"
	"crypto/tls"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const writeBuffSize = 4096

type readWriter struct {
	io.Reader
	io.Writer
}

type socketTransport struct {
	mu   sync.RWMutex
	dc   *deadlineConn
	conn net.Conn
	lr   *limitedReader
	bw   *bufio.Writer
	rw   io.ReadWriter
}

// NewSocketTransport creates a socket class transport.
// A non-zero readTimeout bounds every single read operation.
func NewSocketTransport(conn net.Conn, readTimeout time.Duration) Transport {
	s := &socketTransport{dc: newDeadlineConn(conn, readTimeout)}
	s.setConn(s.dc, nil)
	return s
}

func (s *socketTransport) Read(p []byte) (n int, err error) {
	s.mu.RLock()
	rw := s.rw
	s.mu.RUnlock()
	return rw.Read(p)
}

func (s *socketTransport) Write(p []byte) (n int, err error) {
	s.mu.RLock()
	rw := s.rw
	s.mu.RUnlock()
	return rw.Write(p)
}

func (s *socketTransport) WriteString(str string) (int, error) {
	n, err := io.Copy(s, strings.NewReader(str))
	return int(n), err
}

func (s *socketTransport) Close() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn.Close()
}

func (s *socketTransport) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bw.Flush()
}

func (s *socketTransport) SetReadRateLimiter(rLim *rate.Limiter) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.lr.SetReadRateLimiter(rLim)
}

func (s *socketTransport) SetReadDeadline(t time.Time) error {
	return s.dc.SetReadDeadline(t)
}

func (s *socketTransport) StartTLS(ctx context.Context, cfg *tls.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conn.(*tls.Conn); ok {
		return nil // already secured
	}
	if err := s.bw.Flush(); err != nil {
		return err
	}
	tlsConn := tls.Client(s.conn, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		return err
	}
	s.setConn(tlsConn, s.lr.ReadRateLimiter())
	return nil
}

func (s *socketTransport) IsSecured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.conn.(*tls.Conn)
	return ok
}

func (s *socketTransport) ConnectionState() (tls.ConnectionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tlsConn, ok := s.conn.(*tls.Conn)
	if !ok {
		return tls.ConnectionState{}, false
	}
	return tlsConn.ConnectionState(), true
}

func (s *socketTransport) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if addr := s.conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}

func (s *socketTransport) setConn(conn net.Conn, rLim *rate.Limiter) {
	lr := newLimitedReader(conn)
	if rLim != nil {
		lr.SetReadRateLimiter(rLim)
	}
	s.conn = conn
	s.lr = lr
	s.bw = bufio.NewWriterSize(conn, writeBuffSize)
	s.rw = &readWriter{s.lr, s.bw}
}
