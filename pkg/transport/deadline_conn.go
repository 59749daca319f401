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
	"net"
	"sync"
	"time"
)

// deadlineConn bounds every read by the per-read timeout and by an optional
// absolute deadline, whichever comes first.
type deadlineConn struct {
	net.Conn
	rdTimeout time.Duration

	mu       sync.Mutex
	deadline time.Time
}

func newDeadlineConn(conn net.Conn, readTimeout time.Duration) *deadlineConn {
	return &deadlineConn{
		Conn:      conn,
		rdTimeout: readTimeout,
	}
}

func (c *deadlineConn) Read(b []byte) (n int, err error) {
	if err := c.Conn.SetReadDeadline(c.nextDeadline()); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

// SetReadDeadline sets the absolute read deadline. A zero value leaves only the per-read timeout.
func (c *deadlineConn) SetReadDeadline(t time.Time) error {
	c.mu.Lock()
	c.deadline = t
	c.mu.Unlock()
	return c.Conn.SetReadDeadline(c.nextDeadline())
}

func (c *deadlineConn) nextDeadline() time.Time {
	c.mu.Lock()
	deadline := c.deadline
	c.mu.Unlock()

	if c.rdTimeout <= 0 {
		return deadline
	}
	rdDeadline := time.Now().Add(c.rdTimeout)
	if deadline.IsZero() || rdDeadline.Before(deadline) {
		return rdDeadline
	}
	return deadline
}
