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

import "time"

const defaultMaxStanzaSize = 131072

// Config contains connection configuration parameters.
type Config struct {
	// Domain is the XMPP service domain the stream is opened to.
	Domain string

	// From is the optional bare jid announced in the stream header.
	From string

	// Lang is the default stream language.
	Lang string

	// MaxStanzaSize bounds the size of a single incoming stanza.
	MaxStanzaSize int

	// LingerTimeout bounds the wait on listeners whose request may never be answered,
	// such as a directed presence. Zero leaves the wait to the read timeout.
	LingerTimeout time.Duration
}
