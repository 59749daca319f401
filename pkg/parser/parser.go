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

package xmppparser

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/xmppc/pkg/event"
)

// StreamNamespace is the XMPP streams namespace.
const StreamNamespace = "http://etherx.jabber.org/streams"

// StreamName is the qualified name of the stream root element.
var StreamName = event.Name(StreamNamespace, "stream")

// ErrTooLargeStanza will be returned by Next when the size of the incoming stanza is too large.
var ErrTooLargeStanza = errors.New("parser: too large stanza")

// ErrStreamClosedByPeer will be returned by Next when stream closed element is parsed.
var ErrStreamClosedByPeer = errors.New("parser: stream closed by peer")

type frame struct {
	name    string
	builder *stravaganza.Builder
	text    strings.Builder
}

// Parser turns an XML byte stream into a sequence of start and end tag events.
type Parser struct {
	br            *bufio.Reader
	dec           *xml.Decoder
	scope         *event.Scope
	stack         []*frame
	inStream      bool
	stanzaOffset  int64
	maxStanzaSize int64
}

// New creates a Parser instance reading from r.
func New(r io.Reader, maxStanzaSize int) *Parser {
	br := bufio.NewReader(r)
	return &Parser{
		br:            br,
		dec:           xml.NewDecoder(br),
		scope:         event.NewScope(nil),
		maxStanzaSize: int64(maxStanzaSize),
	}
}

// Next returns the next start or end tag event read from the underlying reader.
// A start event carries an element holding only the tag attributes, while an end event
// carries the fully built element.
//
// A read error returned while waiting for a new token, such as a deadline expiration,
// leaves the parser usable.
func (p *Parser) Next() (*event.Event, error) {
	for {
		if p.br.Buffered() == 0 {
			// the decoder keeps any read error, so wait for input outside of it
			if _, err := p.br.Peek(1); err != nil {
				return nil, err
			}
		}
		t, err := p.dec.RawToken()
		if err != nil {
			return nil, err
		}
		if len(p.stack) > 0 && p.maxStanzaSize > 0 && p.dec.InputOffset()-p.stanzaOffset > p.maxStanzaSize {
			return nil, ErrTooLargeStanza
		}
		switch t1 := t.(type) {
		case xml.CharData:
			if len(p.stack) > 0 {
				p.stack[len(p.stack)-1].text.Write(t1)
			}

		case xml.StartElement:
			return p.startElement(t1), nil

		case xml.EndElement:
			return p.endElement(t1)
		}
	}
}

// Depth returns the number of open elements below the stream root.
func (p *Parser) Depth() int {
	return len(p.stack)
}

func (p *Parser) startElement(t xml.StartElement) *event.Event {
	name := xmlName(t.Name.Space, t.Name.Local)

	attrs := make([]stravaganza.Attribute, 0, len(t.Attr))
	for _, a := range t.Attr {
		attrs = append(attrs, stravaganza.Attribute{
			Label: xmlName(a.Name.Space, a.Name.Local),
			Value: a.Value,
		})
	}
	p.scope.Push(attrs)
	qName := p.scope.Resolve(name)

	startElem := stravaganza.NewBuilder(name).WithAttributes(attrs...).Build()
	if qName == StreamName && len(p.stack) == 0 {
		p.inStream = true
		return event.New(event.Start, qName, startElem)
	}
	if len(p.stack) == 0 {
		p.stanzaOffset = p.dec.InputOffset()
	}
	p.stack = append(p.stack, &frame{
		name:    name,
		builder: stravaganza.NewBuilder(name).WithAttributes(attrs...),
	})
	return event.New(event.Start, qName, startElem)
}

func (p *Parser) endElement(t xml.EndElement) (*event.Event, error) {
	name := xmlName(t.Name.Space, t.Name.Local)
	qName := p.scope.Resolve(name)
	p.scope.Pop()

	if len(p.stack) == 0 {
		if p.inStream && qName == StreamName {
			p.inStream = false
			return nil, ErrStreamClosedByPeer
		}
		return nil, errUnexpectedEnd(name)
	}
	fr := p.stack[len(p.stack)-1]
	if fr.name != name {
		return nil, errUnexpectedEnd(name)
	}
	p.stack = p.stack[:len(p.stack)-1]

	if fr.text.Len() > 0 {
		fr.builder = fr.builder.WithText(fr.text.String())
	}
	elem := fr.builder.Build()
	if len(p.stack) > 0 {
		parent := p.stack[len(p.stack)-1]
		parent.builder = parent.builder.WithChild(elem)
	} else {
		p.stanzaOffset = 0
	}
	return event.New(event.End, qName, elem), nil
}

func xmlName(space, local string) string {
	if len(space) > 0 {
		return fmt.Sprintf("%s:%s", space, local)
	}
	return local
}

func errUnexpectedEnd(name string) error {
	return fmt.Errorf("xmppparser: unexpected end element </%s>", name)
}
