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

package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/jackal-xmpp/xmppc/pkg/command"
)

type printer interface {
	Disco(*command.Disco)
	Roster(*command.Roster)
	Presence(*command.Presence)
	Message(*command.Message, string)
}

type simplePrinter struct {
	w io.Writer
}

func (p *simplePrinter) Disco(cmd *command.Disco) {
	if identity := cmd.Identity(); identity != nil {
		fmt.Fprintf(p.w, "identity: %s/%s %s\n", identity.Category, identity.Type, identity.Name)
	}
	for _, feature := range cmd.Features() {
		fmt.Fprintf(p.w, "feature: %s\n", feature)
	}
	for _, item := range cmd.Items() {
		line := "item: " + item.Jid
		if len(item.Node) > 0 {
			line += " node=" + item.Node
		}
		if len(item.Name) > 0 {
			line += " (" + item.Name + ")"
		}
		fmt.Fprintln(p.w, line)
	}
}

func (p *simplePrinter) Roster(cmd *command.Roster) {
	if ver := cmd.Version(); len(ver) > 0 {
		fmt.Fprintf(p.w, "version: %s\n", ver)
	}
	for _, item := range cmd.Items() {
		fmt.Fprintf(p.w, "%s\t%s\t%s", item.Jid, item.Subscription, item.Name)
		if len(item.Groups) > 0 {
			fmt.Fprintf(p.w, "\t[%s]", strings.Join(item.Groups, ", "))
		}
		fmt.Fprintln(p.w)
	}
}

func (p *simplePrinter) Presence(cmd *command.Presence) {
	if result, ok := cmd.Result(); ok {
		fmt.Fprintf(p.w, "Presence rejected: %s\n", result)
		return
	}
	fmt.Fprintln(p.w, "Presence sent")
}

func (p *simplePrinter) Message(_ *command.Message, to string) {
	fmt.Fprintf(p.w, "Message sent to %s\n", to)
}
