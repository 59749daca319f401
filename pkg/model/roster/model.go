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

package rostermodel

import "github.com/jackal-xmpp/stravaganza/v2"

// Subscription values as defined in RFC 6121.
const (
	None   = "none"
	From   = "from"
	To     = "to"
	Both   = "both"
	Remove = "remove"
)

// Item represents a roster item.
type Item struct {
	Jid          string
	Name         string
	Subscription string
	Ask          bool
	Groups       []string
}

// ItemFromElement returns the roster item described by an item element.
func ItemFromElement(elem stravaganza.Element) Item {
	ri := Item{
		Jid:          elem.Attribute("jid"),
		Name:         elem.Attribute("name"),
		Subscription: elem.Attribute("subscription"),
		Ask:          elem.Attribute("ask") == "subscribe",
	}
	if len(ri.Subscription) == 0 {
		ri.Subscription = None
	}
	for _, group := range elem.Children("group") {
		ri.Groups = append(ri.Groups, group.Text())
	}
	return ri
}
