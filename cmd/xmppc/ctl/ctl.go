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

package ctl

import (
	"time"

	"github.com/jackal-xmpp/xmppc/cmd/xmppc/ctl/command"
	"github.com/spf13/cobra"
)

const (
	cliName        = "xmppc"
	cliDescription = "A command line XMPP client."

	defaultCommandTimeOut = 15 * time.Second
)

var (
	globalFlags = command.GlobalFlags{}
)

var (
	rootCmd = &cobra.Command{
		Use:        cliName,
		Short:      cliDescription,
		SuggestFor: []string{"xmppc"},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigFile, "config", "", "configuration file path (defaults to $XMPPC_CONFIG_FILE or config.yaml)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "log level overriding the configured one")
	rootCmd.PersistentFlags().StringVar(&globalFlags.MetricsAddr, "metrics-addr", "", "address where prometheus metrics are exposed")

	rootCmd.PersistentFlags().DurationVar(&globalFlags.CommandTimeOut, "command-timeout", defaultCommandTimeOut, "timeout for running command")

	rootCmd.AddCommand(
		command.NewDiscoCommand(),
		command.NewRosterCommand(),
		command.NewPresenceCommand(),
		command.NewMessageCommand(),
		command.NewVersionCommand(),
	)
}

// Start runs the command line client.
func Start() error {
	return rootCmd.Execute()
}

// MustStart is like Start but exiting in case an error occurs.
func MustStart() {
	if err := Start(); err != nil {
		command.ExitWithError(command.ExitError, err)
	}
}

func init() {
	cobra.EnablePrefixMatching = true
}
