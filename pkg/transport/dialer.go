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
	"errors"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	c2sService     = "xmpp-client"
	c2sDefaultPort = "5222"

	dialKeepAlive = time.Second * 15
)

type srvResolveFunc func(ctx context.Context, service, proto, name string) (cname string, addrs []*net.SRV, err error)
type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Dialer establishes client socket transports.
type Dialer struct {
	srvResolve  srvResolveFunc
	dialCtx     dialFunc
	readTimeout time.Duration
}

// NewDialer returns a Dialer instance.
func NewDialer(connectTimeout, readTimeout time.Duration) *Dialer {
	d := net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: dialKeepAlive,
	}
	return &Dialer{
		srvResolve:  net.DefaultResolver.LookupSRV,
		dialCtx:     d.DialContext,
		readTimeout: readTimeout,
	}
}

// Dial connects to the XMPP service of domain.
// If address is not empty it is dialed directly, otherwise the domain SRV records are
// tried in order, falling back to the domain default client port.
func (d *Dialer) Dial(ctx context.Context, domain, address string) (Transport, error) {
	if len(address) > 0 {
		conn, err := d.dialCtx(ctx, "tcp", address)
		if err != nil {
			return nil, err
		}
		return NewSocketTransport(conn, d.readTimeout), nil
	}
	conn, err := d.dialSRV(ctx, domain)
	if err != nil {
		conn, err = d.dialCtx(ctx, "tcp", net.JoinHostPort(domain, c2sDefaultPort))
		if err != nil {
			return nil, err
		}
	}
	return NewSocketTransport(conn, d.readTimeout), nil
}

func (d *Dialer) dialSRV(ctx context.Context, domain string) (net.Conn, error) {
	_, addrs, err := d.srvResolve(ctx, c2sService, "tcp", domain)
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		if addr.Target == "." {
			continue
		}
		host := strings.TrimSuffix(addr.Target, ".")
		port := strconv.Itoa(int(addr.Port))

		conn, err := d.dialCtx(ctx, "tcp", net.JoinHostPort(host, port))
		if err == nil {
			return conn, nil
		}
	}
	return nil, errors.New("transport: failed to dial SRV")
}
