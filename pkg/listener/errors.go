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
	"errors"
	"fmt"
	"strings"

	"github.com/jackal-xmpp/stravaganza/v2"
)

var (
	// ErrTransportSecurity is returned when a secure channel could not be established.
	ErrTransportSecurity = errors.New("listener: transport security failure")

	// ErrAuthenticationFailed is returned when the server rejects the provided credentials.
	ErrAuthenticationFailed = errors.New("listener: authentication failed")

	// ErrResourceBinding is returned when the server refuses to bind a resource.
	ErrResourceBinding = errors.New("listener: resource binding failed")

	// ErrNoMechanism is returned when no configured SASL mechanism is offered by the server.
	ErrNoMechanism = errors.New("listener: no matching SASL mechanism")
)

// StreamError represents a fatal stream level condition reported by the server.
type StreamError struct {
	// Condition is the reported error condition.
	Condition string

	// Text is the optional human readable description.
	Text string

	// Element is the element the error was derived from.
	Element stravaganza.Element

	err error
}

func newStreamError(elem stravaganza.Element, cause error) *StreamError {
	if elem == nil {
		return &StreamError{Condition: "undefined-condition", err: cause}
	}
	se := &StreamError{
		Condition: localName(elem.Name()),
		Element:   elem,
		err:       cause,
	}
	var hasCondition bool
	for _, child := range elem.AllChildren() {
		name := localName(child.Name())
		switch {
		case name == "text":
			se.Text = child.Text()
		case !hasCondition:
			se.Condition = name
			hasCondition = true
		}
	}
	return se
}

// Error satisfies error interface.
func (e *StreamError) Error() string {
	if len(e.Text) > 0 {
		return fmt.Sprintf("listener: stream error: %s (%s)", e.Condition, e.Text)
	}
	return fmt.Sprintf("listener: stream error: %s", e.Condition)
}

// Unwrap returns the underlying cause.
func (e *StreamError) Unwrap() error { return e.err }

// AuthError represents a SASL failure reported by the server.
type AuthError struct {
	Condition string
	Text      string
}

// Error satisfies error interface.
func (e *AuthError) Error() string {
	if len(e.Text) > 0 {
		return fmt.Sprintf("listener: sasl failure: %s (%s)", e.Condition, e.Text)
	}
	return fmt.Sprintf("listener: sasl failure: %s", e.Condition)
}

// Unwrap returns ErrAuthenticationFailed.
func (e *AuthError) Unwrap() error { return ErrAuthenticationFailed }

func localName(name string) string {
	return name[strings.LastIndexByte(name, ':')+1:]
}
