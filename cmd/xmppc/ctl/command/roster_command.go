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

// NewRosterCommand returns the cobra command for "roster".
func NewRosterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Lists roster items",
		Run:   rosterCommandFunc,
	}
}

// rosterCommandFunc executes the "roster" command.
func rosterCommandFunc(cmd *cobra.Command, _ []string) {
	cl, ctx, cancel := mustClientFromCmd(cmd)
	defer cancel()

	roster := command.NewRoster()
	if err := cl.Send(ctx, roster); err != nil {
		ExitWithError(ExitError, err)
	}
	disconnect(ctx, cl)

	display.Roster(roster)
}
