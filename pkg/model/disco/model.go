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

package discomodel

import "github.com/jackal-xmpp/stravaganza/v2"

const (
	itemElementName     = "item"
	featureElementName  = "feature"
	identityElementName = "identity"
)

// Feature represents a disco feature.
type Feature = string

// Identity represents a disco entity identity.
type Identity struct {
	Category string
	Name     string
	Type     string
	Lang     string
}

// Item represents a disco entity item.
type Item struct {
	Jid  string
	Name string
	Node string
}

// IsItem tells whether elem is a disco item element.
func IsItem(elem stravaganza.Element) bool { return elem.Name() == itemElementName }

// IsFeature tells whether elem is a disco feature element.
func IsFeature(elem stravaganza.Element) bool { return elem.Name() == featureElementName }

// IsIdentity tells whether elem is a disco identity element.
func IsIdentity(elem stravaganza.Element) bool { return elem.Name() == identityElementName }

// ItemFromElement returns the item described by an item element.
// Missing attributes are left empty.
func ItemFromElement(elem stravaganza.Element) Item {
	return Item{
		Jid:  elem.Attribute("jid"),
		Name: elem.Attribute("name"),
		Node: elem.Attribute("node"),
	}
}

// IdentityFromElement returns the identity described by an identity element.
func IdentityFromElement(elem stravaganza.Element) Identity {
	return Identity{
		Category: elem.Attribute("category"),
		Name:     elem.Attribute("name"),
		Type:     elem.Attribute("type"),
		Lang:     elem.Attribute(stravaganza.Language),
	}
}

// FeatureFromElement returns the feature var carried by a feature element.
func FeatureFromElement(elem stravaganza.Element) Feature {
	return elem.Attribute("var")
}
