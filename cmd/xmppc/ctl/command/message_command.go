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
	"strings"

	"github.com/jackal-xmpp/xmppc/pkg/command"
	"github.com/spf13/cobra"
)

var (
	messageType    string
	messageSubject string
)

// NewMessageCommand returns the cobra command for "message".
func NewMessageCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "message <jid> <body> [options]",
		Short: "Sends a message",
		Run:   messageCommandFunc,
	}

	cmd.Flags().StringVar(&messageType, "type", command.ChatType, "Message type")
	cmd.Flags().StringVar(&messageSubject, "subject", "", "Message subject")

	return &cmd
}

// messageCommandFunc executes the "message" command.
func messageCommandFunc(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		ExitWithError(ExitBadArgs, fmt.Errorf("message command requires recipient jid and body as its arguments"))
	}
	to := args[0]
	body := strings.Join(args[1:], " ")

	cl, ctx, cancel := mustClientFromCmd(cmd)
	defer cancel()

	msg := command.NewMessage(to, body).
		WithType(messageType).
		WithSubject(messageSubject)
	if err := cl.Send(ctx, msg); err != nil {
		ExitWithError(ExitError, err)
	}
	disconnect(ctx, cl)

	display.Message(msg, to)
}
