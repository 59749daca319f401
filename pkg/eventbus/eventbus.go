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

package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackal-xmpp/xmppc/pkg/event"
)

// Direction identifies the traffic direction a bus routes.
type Direction uint8

const (
	// Inbound represents the bus carrying events parsed from the remote peer.
	Inbound Direction = iota + 1

	// Outbound represents the bus carrying events of locally issued traffic.
	Outbound
)

// String returns Direction string representation.
func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	}
	return ""
}

// Handler defines an event handler function.
type Handler func(ctx context.Context, evt *event.Event) error

// ErrStopped error is returned by a handler to halt event dispatching.
var ErrStopped = errors.New("eventbus: dispatch stopped")

// HandlerID identifies a single handler attachment.
type HandlerID uint64

type entry struct {
	id  HandlerID
	hnd Handler
}

// Bus routes events to the handlers attached under the event qualified name.
type Bus struct {
	dir Direction

	mu       sync.RWMutex
	lastID   HandlerID
	handlers map[event.QName][]entry
}

// New returns a new initialized Bus instance.
func New(dir Direction) *Bus {
	return &Bus{
		dir:      dir,
		handlers: make(map[event.QName][]entry),
	}
}

// Direction returns bus traffic direction.
func (b *Bus) Direction() Direction {
	return b.dir
}

// Attach appends hnd to the list of handlers attached under name and returns
// the identifier to be used to detach it.
// A handler attached while a dispatch is in progress is invoked starting from the next dispatch.
func (b *Bus) Attach(name event.QName, hnd Handler) HandlerID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastID++
	id := b.lastID

	handlers := b.handlers[name]
	newHandlers := make([]entry, len(handlers), len(handlers)+1)
	copy(newHandlers, handlers)

	b.handlers[name] = append(newHandlers, entry{id: id, hnd: hnd})
	return id
}

// Detach removes the handler attached under name with identifier id.
func (b *Bus) Detach(name event.QName, id HandlerID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[name]
	for i, h := range handlers {
		if h.id != id {
			continue
		}
		newHandlers := make([]entry, 0, len(handlers)-1)
		newHandlers = append(newHandlers, handlers[:i]...)
		newHandlers = append(newHandlers, handlers[i+1:]...)
		if len(newHandlers) == 0 {
			delete(b.handlers, name)
		} else {
			b.handlers[name] = newHandlers
		}
		return
	}
}

// HandlerCount returns the number of handlers attached under name.
func (b *Bus) HandlerCount(name event.QName) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

// Dispatch invokes all handlers attached under the event name in attachment order.
// The first handler error aborts the dispatch and is returned to the caller.
// If halted return value is true a handler returned ErrStopped and no more handlers were invoked.
func (b *Bus) Dispatch(ctx context.Context, evt *event.Event) (halted bool, err error) {
	b.mu.RLock()
	handlers := b.handlers[evt.Name()]
	b.mu.RUnlock()

	t0 := time.Now()
	defer func() {
		reportDispatchedEvent(b.dir, evt, len(handlers) > 0, err, time.Since(t0).Seconds())
	}()

	for _, h := range handlers {
		err := h.hnd(ctx, evt)
		switch {
		case err == nil:
			break
		case errors.Is(err, ErrStopped):
			return true, nil
		default:
			return false, err
		}
	}
	return false, nil
}
