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

	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/spf13/cobra"
)

var (
	discoInfo bool
	discoNode string
)

// NewDiscoCommand returns the cobra command for "disco".
func NewDiscoCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "disco [jid] [options]",
		Short: "Discovers items or features of an entity",
		Long:  "Discovers items or features of an entity. The configured service domain is queried when no jid is given.",
		Run:   discoCommandFunc,
	}

	cmd.Flags().BoolVar(&discoInfo, "info", false, "Query entity identity and features instead of its items")
	cmd.Flags().StringVar(&discoNode, "node", "", "Node to be queried")

	return &cmd
}

// discoCommandFunc executes the "disco" command.
func discoCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) > 1 {
		ExitWithError(ExitBadArgs, fmt.Errorf("disco command accepts at most one entity jid"))
	}
	typ := command.DiscoItems
	if discoInfo {
		typ = command.DiscoInfo
	}
	cl, ctx, cancel := mustClientFromCmd(cmd)
	defer cancel()

	disco := command.NewDisco(discoTarget(args, cl.Domain()), typ).WithNode(discoNode)
	if err := cl.Send(ctx, disco); err != nil {
		ExitWithError(ExitError, err)
	}
	disconnect(ctx, cl)

	display.Disco(disco)
}

func discoTarget(args []string, domain string) string {
	if len(args) == 0 {
		return domain
	}
	return args[0]
}
