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
	"context"
	"crypto/tls"
	"io"
	"time"

	"golang.org/x/time/rate"
)

// Transport represents the byte channel a client stream runs over.
type Transport interface {
	io.ReadWriteCloser

	// WriteString writes a raw string to the transport.
	WriteString(s string) (n int, err error)

	// Flush writes any buffered data to the underlying io.Writer.
	Flush() error

	// SetReadDeadline bounds pending and future reads by an absolute deadline,
	// in addition to the per-read timeout. A zero value removes the bound.
	SetReadDeadline(t time.Time) error

	// SetReadRateLimiter sets transport read rate limiter.
	SetReadRateLimiter(rLim *rate.Limiter)

	// StartTLS upgrades the transport in place to a TLS client channel.
	// The handshake is performed before returning; on failure the transport
	// keeps its previous channel.
	StartTLS(ctx context.Context, cfg *tls.Config) error

	// IsSecured tells whether the transport runs over TLS.
	IsSecured() bool

	// ConnectionState returns TLS connection state.
	// ok is false if the transport is not secured.
	ConnectionState() (st tls.ConnectionState, ok bool)

	// Address returns remote peer address.
	Address() string
}
