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
	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/spf13/cobra"
)

var (
	presenceTo       string
	presenceType     string
	presenceShow     string
	presenceStatus   string
	presencePriority int8
)

// NewPresenceCommand returns the cobra command for "presence".
func NewPresenceCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "presence [options]",
		Short: "Sends a presence stanza",
		Run:   presenceCommandFunc,
	}

	cmd.Flags().StringVar(&presenceTo, "to", "", "Directed presence recipient")
	cmd.Flags().StringVar(&presenceType, "type", "", "Presence type (unavailable, subscribe, ...)")
	cmd.Flags().StringVar(&presenceShow, "show", "", "Availability sub-state (away, chat, dnd, xa)")
	cmd.Flags().StringVar(&presenceStatus, "status", "", "Status description")
	cmd.Flags().Int8Var(&presencePriority, "priority", 0, "Resource priority")

	return &cmd
}

// presenceCommandFunc executes the "presence" command.
func presenceCommandFunc(cmd *cobra.Command, _ []string) {
	cl, ctx, cancel := mustClientFromCmd(cmd)
	defer cancel()

	presence := command.NewPresence().
		WithTo(presenceTo).
		WithType(presenceType).
		WithShow(presenceShow).
		WithStatus(presenceStatus).
		WithPriority(presencePriority)
	if err := cl.Send(ctx, presence); err != nil {
		ExitWithError(ExitError, err)
	}
	disconnect(ctx, cl)

	display.Presence(presence)
}
